package nested

import "sort"

const (
	StageGroup    = "group"
	StageKnockout = "knockout"
)

type Group struct {
	GroupID        string
	Name           string
	WinnerTeamID   ID
	RunnerUpTeamID ID
}

type Round struct {
	RoundID string
	Name    string
}

// Match is one match lifted out of either container, tagged with where it came from.
type Match struct {
	MatchID     ID
	Type        string
	Stage       string
	GroupID     string
	RoundID     string
	Date        string
	StadiumID   ID
	HomeTeamID  ID
	AwayTeamID  ID
	HomeResult  *int
	AwayResult  *int
	HomePenalty *int
	AwayPenalty *int
	WinnerID    ID
	Finished    bool
	Matchday    *int
}

type MatchChannel struct {
	MatchID   ID
	ChannelID ID
}

// Relations is the document resolved into flat relations.
type Relations struct {
	Teams         []Team
	Stadiums      []Stadium
	TVChannels    []TVChannel
	Groups        []Group
	Rounds        []Round
	Matches       []Match
	MatchChannels []MatchChannel
}

// Flatten walks the group container, then the knockout container. Keys are
// visited in sorted order so repeated runs produce identical relations.
func Flatten(doc Document) Relations {
	rel := Relations{
		Teams:      append([]Team(nil), doc.Teams...),
		Stadiums:   append([]Stadium(nil), doc.Stadiums...),
		TVChannels: append([]TVChannel(nil), doc.TVChannels...),
	}

	for _, groupID := range sortedKeys(doc.Groups) {
		node := doc.Groups[groupID]
		rel.Groups = append(rel.Groups, Group{
			GroupID:        groupID,
			Name:           node.Name,
			WinnerTeamID:   node.Winner,
			RunnerUpTeamID: node.RunnerUp,
		})
		for _, raw := range node.Matches {
			m := fromRaw(raw)
			m.Stage = StageGroup
			m.GroupID = groupID
			m.HomePenalty, m.AwayPenalty = nil, nil
			rel.add(m, raw.Channels)
		}
	}

	for _, roundID := range sortedKeys(doc.Knockout) {
		node := doc.Knockout[roundID]
		rel.Rounds = append(rel.Rounds, Round{RoundID: roundID, Name: node.Name})
		for _, raw := range node.Matches {
			m := fromRaw(raw)
			m.Stage = StageKnockout
			m.RoundID = roundID
			rel.add(m, raw.Channels)
		}
	}

	return rel
}

func (r *Relations) add(m Match, channels []ID) {
	r.Matches = append(r.Matches, m)
	for _, ch := range channels {
		r.MatchChannels = append(r.MatchChannels, MatchChannel{MatchID: m.MatchID, ChannelID: ch})
	}
}

func fromRaw(raw RawMatch) Match {
	return Match{
		MatchID:     raw.Name,
		Type:        raw.Type,
		Date:        raw.Date,
		StadiumID:   raw.Stadium,
		HomeTeamID:  raw.HomeTeam,
		AwayTeamID:  raw.AwayTeam,
		HomeResult:  raw.HomeResult.Int(),
		AwayResult:  raw.AwayResult.Int(),
		HomePenalty: raw.HomePenalty.Int(),
		AwayPenalty: raw.AwayPenalty.Int(),
		WinnerID:    raw.Winner,
		Finished:    raw.Finished,
		Matchday:    raw.Matchday,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
