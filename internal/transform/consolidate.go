package transform

import "github.com/riskibarqy/worldcup-etl/internal/domain/match"

// Consolidate concatenates the per-source sets in argument order, discards
// their provisional ids and renumbers 1..N by date. Ties keep input order.
func Consolidate(sets ...[]match.Match) []match.Match {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	out := make([]match.Match, 0, total)
	for _, set := range sets {
		for _, m := range set {
			m.MatchID = 0
			out = append(out, m)
		}
	}
	return number(out)
}
