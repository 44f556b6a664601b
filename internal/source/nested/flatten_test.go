package nested

import "testing"

const sampleDocument = `{
  "teams": [{"id": 1, "name": "Russia", "fifaCode": "RUS"}, {"id": 2, "name": "Saudi Arabia"}],
  "stadiums": [{"id": 1, "name": "Luzhniki Stadium", "city": "Moscow"}],
  "tvchannels": [{"id": 4, "name": "Channel A"}],
  "groups": {
    "b": {"name": "Group B", "winner": null, "runnerup": null, "matches": [
      {"name": 3, "type": "group", "home_team": 2, "away_team": 1, "home_result": null, "away_result": null,
       "date": "2018-06-15T18:00:00+03:00", "stadium": 1, "channels": [], "finished": false, "matchday": 1}
    ]},
    "a": {"name": "Group A", "winner": 1, "runnerup": 2, "matches": [
      {"name": 1, "type": "group", "home_team": 1, "away_team": 2, "home_result": 5, "away_result": 0,
       "date": "2018-06-14T18:00:00+03:00", "stadium": 1, "channels": [4, 6], "finished": true, "matchday": 1}
    ]}
  },
  "knockout": {
    "round_2": {"name": "Final", "matches": [
      {"name": 64, "type": "qualified", "home_team": "winner_61", "away_team": 2, "home_result": 4, "away_result": 2,
       "home_penalty": null, "away_penalty": 3, "winner": 1, "date": "2018-07-15T18:00:00+03:00", "stadium": 99,
       "channels": [4], "finished": true, "matchday": 7}
    ]}
  }
}`

func TestDecodeAndFlatten(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rel := Flatten(doc)

	if len(rel.Teams) != 2 || rel.Teams[0].ID != "1" || rel.Teams[0].FifaCode != "RUS" {
		t.Fatalf("unexpected teams: %+v", rel.Teams)
	}
	if len(rel.Matches) != 3 {
		t.Fatalf("expected 3 matches from both containers, got %d", len(rel.Matches))
	}

	first := rel.Matches[0]
	if first.MatchID != "1" || first.Stage != StageGroup || first.GroupID != "a" || first.RoundID != "" {
		t.Fatalf("unexpected first match: %+v", first)
	}
	if first.HomeResult == nil || *first.HomeResult != 5 {
		t.Fatalf("unexpected home result: %v", first.HomeResult)
	}
	if rel.Matches[1].GroupID != "b" || rel.Matches[1].HomeResult != nil {
		t.Fatalf("group b match should keep null result: %+v", rel.Matches[1])
	}

	final := rel.Matches[2]
	if final.Stage != StageKnockout || final.RoundID != "round_2" || final.GroupID != "" {
		t.Fatalf("unexpected knockout match: %+v", final)
	}
	if final.HomeTeamID != "winner_61" {
		t.Fatalf("string team reference should be preserved, got %q", final.HomeTeamID)
	}
	if final.AwayPenalty == nil || *final.AwayPenalty != 3 {
		t.Fatalf("knockout penalties should be kept: %+v", final)
	}

	if len(rel.Groups) != 2 || rel.Groups[0].GroupID != "a" || rel.Groups[0].WinnerTeamID != "1" || rel.Groups[1].WinnerTeamID != "" {
		t.Fatalf("unexpected groups: %+v", rel.Groups)
	}
	if len(rel.Rounds) != 1 || rel.Rounds[0].Name != "Final" {
		t.Fatalf("unexpected rounds: %+v", rel.Rounds)
	}
	if len(rel.MatchChannels) != 3 || rel.MatchChannels[2].MatchID != "64" {
		t.Fatalf("unexpected bridge rows: %+v", rel.MatchChannels)
	}
}

func TestDecodeScoresLeniently(t *testing.T) {
	const doc = `{"groups": {"a": {"name": "Group A", "matches": [
	  {"name": 1, "home_result": "2", "away_result": "x", "home_penalty": 4.0, "away_penalty": "3 (p)", "date": "2018-06-14T18:00:00+03:00"},
	  {"name": 2, "home_result": true, "away_result": null, "date": "2018-06-15T18:00:00+03:00"}
	]}}}`

	decoded, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("unreadable scores must not fail decoding: %v", err)
	}
	rel := Flatten(decoded)
	if len(rel.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(rel.Matches))
	}

	first := rel.Matches[0]
	if first.HomeResult == nil || *first.HomeResult != 2 {
		t.Fatalf("numeric string score: %v", first.HomeResult)
	}
	if first.AwayResult != nil {
		t.Fatalf("junk score must be null, got %d", *first.AwayResult)
	}
	if first.HomePenalty == nil || *first.HomePenalty != 4 {
		t.Fatalf("float score: %v", first.HomePenalty)
	}
	if first.AwayPenalty == nil || *first.AwayPenalty != 3 {
		t.Fatalf("leading digits score: %v", first.AwayPenalty)
	}

	second := rel.Matches[1]
	if second.HomeResult != nil || second.AwayResult != nil {
		t.Fatalf("bool and null scores must be null: %+v", second)
	}
}

func TestDecodeRejectsMalformedDocument(t *testing.T) {
	if _, err := Decode([]byte(`{"groups": [`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFlattenEmptyDocument(t *testing.T) {
	rel := Flatten(Document{})
	if len(rel.Matches) != 0 || len(rel.Groups) != 0 || len(rel.Rounds) != 0 {
		t.Fatalf("expected empty relations, got %+v", rel)
	}
}
