package transform

import (
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"github.com/riskibarqy/worldcup-etl/internal/platform/normalize"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
)

// ErrMissingColumn is returned when a source lacks a column its rules require.
var ErrMissingColumn = table.ErrMissingColumn

// Transformer turns raw source editions into canonical match records.
// It holds no state between calls.
type Transformer struct {
	logger *logging.Logger
}

func New(logger *logging.Logger) *Transformer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Transformer{logger: logger.Named("transform")}
}

// canonicalInputs are the columns every source must provide before conversion.
var canonicalInputs = []string{
	match.ColumnDate,
	match.ColumnHomeTeam,
	match.ColumnAwayTeam,
	match.ColumnHomeResult,
	match.ColumnAwayResult,
	match.ColumnStage,
	match.ColumnEdition,
	match.ColumnCity,
}

func keepAndRename(raw *table.Table, rules ruleset.Bundle) (*table.Table, error) {
	projected, err := raw.Project(rules.Keep)
	if err != nil {
		return nil, err
	}
	return projected.Rename(rules.Rename), nil
}

func mapVocabulary(t *table.Table, column string, mapping map[string]string) *table.Table {
	if len(mapping) == 0 {
		return t
	}
	return t.MapColumn(column, func(v *string) *string {
		return normalize.MapValue(v, mapping)
	})
}

// correctTeams optionally logs the anomaly scan for both team columns, then
// applies the spelling corrections.
func (tr *Transformer) correctTeams(source string, t *table.Table, rules ruleset.Bundle) *table.Table {
	for _, column := range []string{match.ColumnHomeTeam, match.ColumnAwayTeam} {
		if rules.ScanTeams {
			report := normalize.ScanAnomalies(t.Column(column))
			tr.logger.Info("team anomaly scan",
				"source", source,
				"column", column,
				string(normalize.NotCapitalized), report[normalize.NotCapitalized],
				string(normalize.ExtraSpaces), report[normalize.ExtraSpaces],
				string(normalize.SpecialChars), report[normalize.SpecialChars],
			)
		}
		t = mapVocabulary(t, column, rules.TeamMapping)
	}
	return t
}

// toMatches converts a table already carrying canonical column names.
func toMatches(t *table.Table, rules ruleset.Bundle) ([]match.Match, error) {
	if err := t.Require(canonicalInputs...); err != nil {
		return nil, err
	}

	rows := t.Rows()
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			Date:       nonBlank(row[match.ColumnDate]),
			HomeTeam:   row[match.ColumnHomeTeam],
			AwayTeam:   row[match.ColumnAwayTeam],
			HomeResult: parseResult(row[match.ColumnHomeResult]),
			AwayResult: parseResult(row[match.ColumnAwayResult]),
			Stage:      deref(row[match.ColumnStage]),
			Edition:    parseEdition(row[match.ColumnEdition], rules.Edition),
			City:       trimmed(row[match.ColumnCity]),
		})
	}
	return out, nil
}

// parseResult keeps the first run of digits; anything without digits is null.
func parseResult(v *string) *int {
	if v == nil {
		return nil
	}
	n, ok := normalize.LeadingDigits(*v)
	if !ok {
		return nil
	}
	return &n
}

func parseEdition(v *string, fallback int) int {
	if v == nil {
		return fallback
	}
	year, ok := normalize.LeadingDigits(*v)
	if !ok || year < 1000 || year > 9999 {
		return fallback
	}
	return year
}

func formatInt(v *int) *string {
	if v == nil {
		return nil
	}
	return table.Value(strconv.Itoa(*v))
}

func nonBlank(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

// trimmed drops surrounding whitespace; blank values become null.
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// dateRank orders compact dates first (the sentinel sorts after every real
// date on its own), then any other text, then nulls.
func dateRank(m match.Match) (int, string) {
	key, ok := m.DateKey()
	switch {
	case !ok:
		return 2, ""
	case normalize.IsCompactDate(key):
		return 0, key
	default:
		return 1, key
	}
}

func sortByDate(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		ri, ki := dateRank(matches[i])
		rj, kj := dateRank(matches[j])
		if ri != rj {
			return ri < rj
		}
		return ki < kj
	})
}

// number sorts by date and assigns match_id 1..n.
func number(matches []match.Match) []match.Match {
	sortByDate(matches)
	for i := range matches {
		matches[i].MatchID = i + 1
	}
	return matches
}

// ScanTeams runs the anomaly scan over home and away team names together.
func ScanTeams(matches []match.Match) normalize.AnomalyReport {
	values := make([]*string, 0, len(matches)*2)
	for _, m := range matches {
		values = append(values, m.HomeTeam, m.AwayTeam)
	}
	return normalize.ScanAnomalies(values)
}
