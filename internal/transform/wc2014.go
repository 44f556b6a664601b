package transform

import (
	"strings"

	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
)

const columnDatetime = "datetime"

// WC2014 handles the 2014 edition. Kept columns are lower-cased and
// snake-cased before the rename map applies.
func (tr *Transformer) WC2014(raw *table.Table, rules ruleset.Bundle) ([]match.Match, error) {
	if raw.Len() == 0 {
		return []match.Match{}, nil
	}

	projected, err := raw.Project(rules.Keep)
	if err != nil {
		return nil, err
	}
	t := projected.RenameColumns(snakeCase).Rename(rules.Rename)

	dateSource := columnDatetime
	if !t.Has(dateSource) {
		dateSource = match.ColumnDate
	}
	if err := t.Require(dateSource); err != nil {
		return nil, err
	}
	t = t.WithColumn(match.ColumnDate, func(row table.Row) *string {
		return normalizeDate(row[dateSource])
	})

	t = mapVocabulary(t, match.ColumnStage, rules.StageMapping)
	t = tr.correctTeams(ruleset.SourceWC2014, t, rules)

	matches, err := toMatches(t, rules)
	if err != nil {
		return nil, err
	}
	tr.logger.Info("source transformed", "source", ruleset.SourceWC2014, "rows", len(matches))
	return number(matches), nil
}

func snakeCase(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), " ", "_")
}
