package transform

import (
	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/platform/normalize"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
)

const columnHour = "hour"

// WC2022 handles the 2022 edition, where the day ("02 Jan 2022") and the
// kick-off time ("17 : 00") arrive as separate fields and there is no venue.
func (tr *Transformer) WC2022(raw *table.Table, rules ruleset.Bundle) ([]match.Match, error) {
	if raw.Len() == 0 {
		return []match.Match{}, nil
	}

	t, err := keepAndRename(raw, rules)
	if err != nil {
		return nil, err
	}
	if err := t.Require(match.ColumnDate, columnHour, match.ColumnHomeTeam, match.ColumnAwayTeam); err != nil {
		return nil, err
	}

	t = t.MapColumn(columnHour, mapString(normalize.RemoveSpaces))
	t = t.WithColumn(match.ColumnDate, func(row table.Row) *string {
		day, hour := row[match.ColumnDate], row[columnHour]
		if day == nil || hour == nil {
			return nil
		}
		return normalizeDate(table.Value(*day + " " + *hour))
	})

	t = normalize.CapitalizeColumns(t, match.ColumnHomeTeam, match.ColumnAwayTeam)
	t = t.WithColumn(match.ColumnCity, func(table.Row) *string { return nil })
	t = t.WithColumn(match.ColumnEdition, func(table.Row) *string { return nil })

	t = mapVocabulary(t, match.ColumnStage, rules.StageMapping)
	t = tr.correctTeams(ruleset.SourceWC2022, t, rules)

	matches, err := toMatches(t, rules)
	if err != nil {
		return nil, err
	}
	tr.logger.Info("source transformed", "source", ruleset.SourceWC2022, "rows", len(matches))
	return number(matches), nil
}
