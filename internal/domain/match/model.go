package match

import "strings"

const (
	ColumnMatchID    = "match_id"
	ColumnDate       = "date"
	ColumnHomeTeam   = "home_team"
	ColumnAwayTeam   = "away_team"
	ColumnHomeResult = "home_result"
	ColumnAwayResult = "away_result"
	ColumnStage      = "stage"
	ColumnEdition    = "edition"
	ColumnCity       = "city"
)

// Columns is the canonical column order.
var Columns = []string{
	ColumnMatchID,
	ColumnDate,
	ColumnHomeTeam,
	ColumnAwayTeam,
	ColumnHomeResult,
	ColumnAwayResult,
	ColumnStage,
	ColumnEdition,
	ColumnCity,
}

// Match is one canonical World Cup match record.
type Match struct {
	MatchID    int
	Date       *string
	HomeTeam   *string
	AwayTeam   *string
	HomeResult *int
	AwayResult *int
	Stage      string
	Edition    int
	City       *string
}

// Values returns the record in canonical column order.
func (m Match) Values() []any {
	return []any{
		m.MatchID,
		nullableString(m.Date),
		nullableString(m.HomeTeam),
		nullableString(m.AwayTeam),
		nullableInt(m.HomeResult),
		nullableInt(m.AwayResult),
		m.Stage,
		m.Edition,
		nullableString(m.City),
	}
}

// DateKey is the value used for chronological ordering; ok is false for null dates.
func (m Match) DateKey() (string, bool) {
	if m.Date == nil || strings.TrimSpace(*m.Date) == "" {
		return "", false
	}
	return *m.Date, true
}

func nullableString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
