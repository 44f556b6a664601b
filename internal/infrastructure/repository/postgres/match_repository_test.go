package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/worldcup-etl/internal/domain/etlrun"
	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
)

func TestMatchTableStatements(t *testing.T) {
	t.Run("replace drops and recreates", func(t *testing.T) {
		got, err := matchTableStatements("public", `"public"."world_cup_matches"`, match.ModeReplace)
		if err != nil {
			t.Fatalf("build statements: %v", err)
		}
		want := []string{
			`CREATE SCHEMA IF NOT EXISTS "public"`,
			`DROP TABLE IF EXISTS "public"."world_cup_matches"`,
			`CREATE TABLE "public"."world_cup_matches" ("match_id" INTEGER PRIMARY KEY, "date" TEXT, "home_team" TEXT, "away_team" TEXT, "home_result" INTEGER, "away_result" INTEGER, "stage" TEXT, "edition" INTEGER, "city" TEXT)`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected statements (-want +got):\n%s", diff)
		}
	})

	t.Run("append keeps existing table", func(t *testing.T) {
		got, err := matchTableStatements("", `"world_cup_matches"`, match.ModeAppend)
		if err != nil {
			t.Fatalf("build statements: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected a single create statement, got %v", got)
		}
		if !strings.HasPrefix(got[0], `CREATE TABLE IF NOT EXISTS "world_cup_matches" (`) {
			t.Fatalf("unexpected create statement: %q", got[0])
		}
	})
}

func TestCopyInStatement(t *testing.T) {
	got := copyInStatement(match.Destination{Table: "world_cup_matches"})
	if !strings.HasPrefix(got, `COPY "world_cup_matches" ("match_id", "date",`) {
		t.Fatalf("unexpected copy statement: %q", got)
	}

	got = copyInStatement(match.Destination{Schema: "etl", Table: "world_cup_matches"})
	if !strings.HasPrefix(got, `COPY "etl"."world_cup_matches" (`) {
		t.Fatalf("unexpected schema copy statement: %q", got)
	}
}

func TestBuildRunInsert(t *testing.T) {
	started := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	run := etlrun.Run{
		ID:          "run-1",
		StartedAt:   started,
		FinishedAt:  started.Add(1500 * time.Millisecond),
		Status:      etlrun.StatusSucceeded,
		Destination: "public.world_cup_matches",
		TotalRows:   2,
		Sources:     []etlrun.SourceStat{{Source: "2010", RawRows: 1, Rows: 1}},
	}

	query, args, err := buildRunInsert(run)
	if err != nil {
		t.Fatalf("build run insert: %v", err)
	}
	wantQuery := "INSERT INTO etl_runs (id, status, destination, total_rows, sources, error_message, started_at, finished_at, duration_ms) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\n%s", query)
	}
	if got := args[4].(string); got != `[{"source":"2010","raw_rows":1,"rows":1,"null_dates":0}]` {
		t.Fatalf("unexpected sources json: %s", got)
	}
	if args[5].(*string) != nil {
		t.Fatalf("expected null error message")
	}
	if args[8].(int64) != 1500 {
		t.Fatalf("unexpected duration: %v", args[8])
	}

	if _, _, err := buildRunInsert(etlrun.Run{}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}
