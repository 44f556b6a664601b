package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestReader() *Reader {
	return NewReader(logging.NewNop())
}

func TestReadTabularSniffsDelimiter(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{name: "comma.csv", content: "\ufeffteam1, team2,score\nFrance,Brazil,1-0\nSpain,,0-1\n"},
		{name: "semicolon.csv", content: "team1;team2;score\nFrance;Brazil;1-0\nSpain;;0-1\n"},
		{name: "pipe.csv", content: "team1|team2|score\nFrance|Brazil|1-0\nSpain||0-1\n"},
		{name: "tab.csv", content: "team1\tteam2\tscore\nFrance\tBrazil\t1-0\nSpain\t\t0-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestReader().ReadTabular(writeFile(t, dir, tt.name, tt.content))
			if err != nil {
				t.Fatalf("ReadTabular returned error: %v", err)
			}
			if diff := cmp.Diff([]string{"team1", "team2", "score"}, got.Columns()); diff != "" {
				t.Fatalf("unexpected header (-want +got):\n%s", diff)
			}
			if got.Len() != 2 {
				t.Fatalf("expected 2 rows, got %d", got.Len())
			}
			away := got.Column("team2")
			if away[0] == nil || *away[0] != "Brazil" {
				t.Fatalf("unexpected first away team: %v", away[0])
			}
			if away[1] != nil {
				t.Fatalf("empty cell must be null, got %q", *away[1])
			}
		})
	}
}

func TestReadTabularKeepsBareQuotesAndShortRows(t *testing.T) {
	dir := t.TempDir()
	content := "Year,Home Team Name,Away Team Name,City\n" +
		"2014,Argentina,rn\">Bosnia and Herzegovina,Rio De Janeiro\n" +
		"2014,Iran,Nigeria\n"

	got, err := newTestReader().ReadTabular(writeFile(t, dir, "wc2014.csv", content))
	if err != nil {
		t.Fatalf("ReadTabular returned error: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("expected both rows to survive, got %d", got.Len())
	}

	away := got.Column("Away Team Name")
	if away[0] == nil || *away[0] != `rn">Bosnia and Herzegovina` {
		t.Fatalf("bare quote must be kept verbatim, got %v", away[0])
	}
	city := got.Column("City")
	if city[0] == nil || *city[0] != "Rio De Janeiro" {
		t.Fatalf("unexpected city: %v", city[0])
	}
	if city[1] != nil {
		t.Fatalf("missing trailing cell must be null, got %q", *city[1])
	}
}

func TestReadTabularSoftFailures(t *testing.T) {
	dir := t.TempDir()

	missing, err := newTestReader().ReadTabular(filepath.Join(dir, "absent.csv"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if !missing.IsEmpty() {
		t.Fatalf("missing file must give an empty table")
	}

	single, err := newTestReader().ReadTabular(writeFile(t, dir, "single.csv", "onlyone\nvalue\n"))
	if err != nil {
		t.Fatalf("single column file must not error: %v", err)
	}
	if !single.IsEmpty() {
		t.Fatalf("single column file must give an empty table, got columns %v", single.Columns())
	}
}

const nestedFixture = `{
  "teams": [{"id": 1, "name": "Russia"}, {"id": 2, "name": "Saudi Arabia"}],
  "stadiums": [{"id": 1, "name": "Luzhniki Stadium", "city": "Moscow"}],
  "tvchannels": [{"id": 1, "name": "Channel 1"}],
  "groups": {"a": {"name": "Group A", "winner": 1, "runnerup": 2, "matches": [
    {"name": 1, "type": "group", "home_team": 1, "away_team": 2, "home_result": 5, "away_result": 0,
     "date": "2018-06-14T18:00:00+03:00", "stadium": 1, "channels": [1], "finished": true, "matchday": 1}
  ]}},
  "knockout": {"round_16": {"name": "Round of 16", "matches": []}}
}`

func TestReadNested(t *testing.T) {
	dir := t.TempDir()

	rel, err := newTestReader().ReadNested(writeFile(t, dir, "data.json", nestedFixture))
	if err != nil {
		t.Fatalf("ReadNested returned error: %v", err)
	}
	if len(rel.Matches) != 1 || len(rel.Teams) != 2 || len(rel.MatchChannels) != 1 || len(rel.Rounds) != 1 {
		t.Fatalf("unexpected relations: %+v", rel)
	}

	_, err = newTestReader().ReadNested(filepath.Join(dir, "absent.json"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestReadAll(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		WC2010: writeFile(t, dir, "2010.csv", "date,home_team\n2010,France (FR)\n"),
		WC2014: filepath.Join(dir, "missing-2014.csv"),
		WC2018: writeFile(t, dir, "2018.json", nestedFixture),
		WC2022: writeFile(t, dir, "2022.csv", "team1;team2\nQatar;Ecuador\nEngland;Iran\n"),
	}

	sources, err := newTestReader().ReadAll(context.Background(), paths)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if sources.WC2010.Len() != 1 || sources.WC2014.Len() != 0 || len(sources.WC2018.Matches) != 1 || sources.WC2022.Len() != 2 {
		t.Fatalf("unexpected sources: 2010=%d 2014=%d 2018=%d 2022=%d",
			sources.WC2010.Len(), sources.WC2014.Len(), len(sources.WC2018.Matches), sources.WC2022.Len())
	}
}

func TestReadAllFailsOnMissingNestedSource(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		WC2010: filepath.Join(dir, "a.csv"),
		WC2014: filepath.Join(dir, "b.csv"),
		WC2018: filepath.Join(dir, "c.json"),
		WC2022: filepath.Join(dir, "d.csv"),
	}

	_, err := newTestReader().ReadAll(context.Background(), paths)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}
