package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("match_id", "date").
		From(Ident("public", "world_cup_matches")).
		Where(Eq("edition", 2014)).
		OrderBy("match_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := `SELECT match_id, date FROM "public"."world_cup_matches" WHERE edition = $1 ORDER BY match_id LIMIT 10`
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != 2014 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("etl_runs").
		Columns("id", "status").
		Values("r1", "SUCCEEDED").
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO etl_runs (id, status) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "r1" || args[1] != "SUCCEEDED" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("etl_runs").Columns("id", "status").Values("r1").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID        string    `db:"id"`
		Status    string    `db:"status,omitempty"`
		StartedAt time.Time `db:"started_at"`
		Skipped   string    `db:"-"`
		internal  string
	}
	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := InsertModel("etl_runs", row{ID: "r1", Status: "DRY_RUN", StartedAt: started, internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	wantQuery := "INSERT INTO etl_runs (id, status, started_at) VALUES ($1, $2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != started {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("etl_runs", (*row)(nil), ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestCreateTable(t *testing.T) {
	query, err := CreateTable(Ident("stats", "matches")).
		IfNotExists(true).
		Column("match_id", "INTEGER", "NOT NULL").
		Column("home team", "TEXT", "").
		ToSQL()
	if err != nil {
		t.Fatalf("build create table: %v", err)
	}

	wantQuery := `CREATE TABLE IF NOT EXISTS "stats"."matches" ("match_id" INTEGER NOT NULL, "home team" TEXT)`
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}

	if _, err := CreateTable("t").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
}

func TestDropTableAndSchema(t *testing.T) {
	drop, err := DropTable(Ident("matches"), true)
	if err != nil || drop != `DROP TABLE IF EXISTS "matches"` {
		t.Fatalf("unexpected drop: %q err=%v", drop, err)
	}
	schema, err := CreateSchema(`we"ird`)
	if err != nil || schema != `CREATE SCHEMA IF NOT EXISTS "we""ird"` {
		t.Fatalf("unexpected schema: %q err=%v", schema, err)
	}
	if got := Ident("", "matches"); got != `"matches"` {
		t.Fatalf("unexpected ident: %q", got)
	}
}
