package transform

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/platform/normalize"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
	"github.com/riskibarqy/worldcup-etl/internal/source/nested"
)

// StageNotDefined is the stage of a match that belongs to neither a group nor a round.
const StageNotDefined = "notdefined"

// Columns of the joined 2018 relation, before keep and rename.
const (
	Joined2018MatchID    = "match_id"
	Joined2018Date       = "match_formatted_date"
	Joined2018HomeTeam   = "team_home_name"
	Joined2018AwayTeam   = "team_away_name"
	Joined2018HomeResult = "match_home_result"
	Joined2018AwayResult = "match_away_result"
	Joined2018StageName  = "match_stage_name"
	Joined2018Edition    = "match_edition"
	Joined2018City       = "stadium_city"
	Joined2018Stadium    = "stadium_name"
	Joined2018GroupName  = "group_name"
	Joined2018RoundName  = "round_name"
	Joined2018Kind       = "match_stage"
)

var joined2018Columns = []string{
	Joined2018MatchID,
	Joined2018Date,
	Joined2018HomeTeam,
	Joined2018AwayTeam,
	Joined2018HomeResult,
	Joined2018AwayResult,
	Joined2018StageName,
	Joined2018Edition,
	Joined2018City,
	Joined2018Stadium,
	Joined2018GroupName,
	Joined2018RoundName,
	Joined2018Kind,
}

// WC2018 resolves the flattened relations with left joins so no match is lost
// to a dangling team, stadium, group or round reference.
func (tr *Transformer) WC2018(rel nested.Relations, rules ruleset.Bundle) ([]match.Match, error) {
	if len(rel.Matches) == 0 {
		return []match.Match{}, nil
	}

	joined := join2018(rel)
	t, err := keepAndRename(joined, rules)
	if err != nil {
		return nil, err
	}

	t = mapVocabulary(t, match.ColumnStage, rules.StageMapping)
	t = tr.correctTeams(ruleset.SourceWC2018, t, rules)

	matches, err := toMatches(t, rules)
	if err != nil {
		return nil, err
	}
	tr.logger.Info("source transformed", "source", ruleset.SourceWC2018, "rows", len(matches))
	return number(matches), nil
}

func join2018(rel nested.Relations) *table.Table {
	teams := make(map[nested.ID]nested.Team, len(rel.Teams))
	for _, team := range rel.Teams {
		if team.ID == "" {
			continue
		}
		teams[team.ID] = team
	}
	stadiums := make(map[nested.ID]nested.Stadium, len(rel.Stadiums))
	for _, s := range rel.Stadiums {
		if s.ID == "" {
			continue
		}
		stadiums[s.ID] = s
	}
	groups := make(map[string]nested.Group, len(rel.Groups))
	for _, g := range rel.Groups {
		groups[g.GroupID] = g
	}
	rounds := make(map[string]nested.Round, len(rel.Rounds))
	for _, r := range rel.Rounds {
		rounds[r.RoundID] = r
	}

	rows := make([]table.Row, 0, len(rel.Matches))
	for _, m := range rel.Matches {
		date := normalize.ISOToCompact(m.Date)
		row := table.Row{
			Joined2018MatchID:    optional(string(m.MatchID)),
			Joined2018Date:       table.Value(date),
			Joined2018HomeResult: formatInt(m.HomeResult),
			Joined2018AwayResult: formatInt(m.AwayResult),
			Joined2018StageName:  table.Value(stageName(m)),
			Joined2018Kind:       optional(m.Stage),
		}
		if year, ok := normalize.CompactYear(date); ok {
			row[Joined2018Edition] = table.Value(strconv.Itoa(year))
		}
		if team, ok := teams[m.HomeTeamID]; ok {
			row[Joined2018HomeTeam] = optional(teamName(team.Name))
		}
		if team, ok := teams[m.AwayTeamID]; ok {
			row[Joined2018AwayTeam] = optional(teamName(team.Name))
		}
		if s, ok := stadiums[m.StadiumID]; ok {
			row[Joined2018City] = optional(normalize.NFC(normalize.StripTrailingPeriod(s.City)))
			row[Joined2018Stadium] = optional(normalize.NFC(strings.TrimSpace(s.Name)))
		}
		if g, ok := groups[m.GroupID]; ok {
			row[Joined2018GroupName] = optional(g.Name)
		}
		if r, ok := rounds[m.RoundID]; ok {
			row[Joined2018RoundName] = optional(r.Name)
		}
		rows = append(rows, row)
	}
	return table.New(joined2018Columns, rows)
}

// stageName is the lower-cased group id for group matches and the round id
// for knockout matches. Anything else is StageNotDefined.
func stageName(m nested.Match) string {
	var name string
	switch strings.ToLower(strings.TrimSpace(m.Stage)) {
	case nested.StageGroup:
		name = strings.ToLower(strings.TrimSpace(m.GroupID))
	case nested.StageKnockout:
		name = strings.TrimSpace(m.RoundID)
	}
	if name == "" {
		return StageNotDefined
	}
	return name
}

func teamName(name string) string {
	return normalize.NFC(normalize.Capitalize(name))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
