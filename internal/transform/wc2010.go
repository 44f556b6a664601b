package transform

import (
	"strings"

	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/platform/normalize"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
)

const columnScore = "score"

// WC2010 handles the 2010 edition: year-only dates, "France (FR)" team names,
// a combined "1-0" score and cities with a trailing period.
func (tr *Transformer) WC2010(raw *table.Table, rules ruleset.Bundle) ([]match.Match, error) {
	if raw.Len() == 0 {
		return []match.Match{}, nil
	}

	t, err := keepAndRename(raw, rules)
	if err != nil {
		return nil, err
	}
	if err := t.Require(match.ColumnDate, match.ColumnHomeTeam, match.ColumnAwayTeam, columnScore, match.ColumnStage, match.ColumnCity); err != nil {
		return nil, err
	}

	t = t.MapColumn(match.ColumnHomeTeam, mapString(beforeParenthesis))
	t = t.MapColumn(match.ColumnAwayTeam, mapString(beforeParenthesis))

	t = t.WithColumn(match.ColumnHomeResult, func(row table.Row) *string {
		home, _ := splitScore(row[columnScore])
		return formatInt(home)
	})
	t = t.WithColumn(match.ColumnAwayResult, func(row table.Row) *string {
		_, away := splitScore(row[columnScore])
		return formatInt(away)
	})

	// The date column only carries the tournament year.
	t = t.WithColumn(match.ColumnEdition, func(row table.Row) *string {
		return row[match.ColumnDate]
	})
	t = t.MapColumn(match.ColumnDate, normalizeDate)
	t = t.MapColumn(match.ColumnCity, mapString(normalize.StripTrailingPeriod))

	t = mapVocabulary(t, match.ColumnStage, rules.StageMapping)
	t = tr.correctTeams(ruleset.SourceWC2010, t, rules)

	matches, err := toMatches(t, rules)
	if err != nil {
		return nil, err
	}
	tr.logger.Info("source transformed", "source", ruleset.SourceWC2010, "rows", len(matches))
	return number(matches), nil
}

func beforeParenthesis(s string) string {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// splitScore cuts "2-1 (a.e.t.)" down to "2-1" and reads the leading digits of each side.
func splitScore(v *string) (*int, *int) {
	if v == nil {
		return nil, nil
	}
	score := strings.TrimSpace(*v)
	if i := strings.IndexFunc(score, func(r rune) bool { return r == '(' || r == ' ' || r == '\t' }); i >= 0 {
		score = score[:i]
	}

	parts := strings.SplitN(score, "-", 2)
	home := leadingInt(parts[0])
	if len(parts) < 2 {
		return home, nil
	}
	return home, leadingInt(parts[1])
}

func leadingInt(s string) *int {
	n, ok := normalize.LeadingDigits(s)
	if !ok {
		return nil
	}
	return &n
}

func normalizeDate(v *string) *string {
	if v == nil {
		return nil
	}
	compact, ok := normalize.NormalizeDateTime(*v)
	if !ok {
		return nil
	}
	return &compact
}

// mapString lifts a string function over nullable cells; blank results become null.
func mapString(fn func(string) string) func(*string) *string {
	return func(v *string) *string {
		if v == nil {
			return nil
		}
		out := fn(*v)
		if out == "" {
			return nil
		}
		return &out
	}
}

