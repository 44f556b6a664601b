package postgres

import (
	"database/sql"

	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	qb "github.com/riskibarqy/worldcup-etl/internal/platform/querybuilder"
)

type matchTableRow struct {
	MatchID    int            `db:"match_id"`
	Date       sql.NullString `db:"date"`
	HomeTeam   sql.NullString `db:"home_team"`
	AwayTeam   sql.NullString `db:"away_team"`
	HomeResult sql.NullInt64  `db:"home_result"`
	AwayResult sql.NullInt64  `db:"away_result"`
	Stage      sql.NullString `db:"stage"`
	Edition    sql.NullInt64  `db:"edition"`
	City       sql.NullString `db:"city"`
}

func (r matchTableRow) toDomain() match.Match {
	return match.Match{
		MatchID:    r.MatchID,
		Date:       nullString(r.Date),
		HomeTeam:   nullString(r.HomeTeam),
		AwayTeam:   nullString(r.AwayTeam),
		HomeResult: nullInt(r.HomeResult),
		AwayResult: nullInt(r.AwayResult),
		Stage:      r.Stage.String,
		Edition:    int(r.Edition.Int64),
		City:       nullString(r.City),
	}
}

// matchTableColumns is the destination DDL in canonical column order.
var matchTableColumns = []qb.ColumnDef{
	{Name: match.ColumnMatchID, Type: "INTEGER", Constraints: "PRIMARY KEY"},
	{Name: match.ColumnDate, Type: "TEXT"},
	{Name: match.ColumnHomeTeam, Type: "TEXT"},
	{Name: match.ColumnAwayTeam, Type: "TEXT"},
	{Name: match.ColumnHomeResult, Type: "INTEGER"},
	{Name: match.ColumnAwayResult, Type: "INTEGER"},
	{Name: match.ColumnStage, Type: "TEXT"},
	{Name: match.ColumnEdition, Type: "INTEGER"},
	{Name: match.ColumnCity, Type: "TEXT"},
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
