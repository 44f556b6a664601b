package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/worldcup-etl/internal/domain/etlrun"
	qb "github.com/riskibarqy/worldcup-etl/internal/platform/querybuilder"
)

const runsTable = "etl_runs"

type RunRepository struct {
	db *sqlx.DB
}

func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(ctx context.Context, run etlrun.Run) error {
	query, args, err := buildRunInsert(run)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert etl run id=%s: %w", run.ID, err)
	}
	return nil
}

func buildRunInsert(run etlrun.Run) (string, []any, error) {
	if strings.TrimSpace(run.ID) == "" {
		return "", nil, fmt.Errorf("run id is required")
	}

	sources := run.Sources
	if sources == nil {
		sources = []etlrun.SourceStat{}
	}
	sourcesJSON, err := encodeJSON(sources)
	if err != nil {
		return "", nil, fmt.Errorf("marshal etl run sources: %w", err)
	}

	model := runInsertModel{
		ID:           run.ID,
		Status:       run.Status,
		Destination:  run.Destination,
		TotalRows:    run.TotalRows,
		Sources:      sourcesJSON,
		ErrorMessage: optionalString(run.ErrorMessage),
		StartedAt:    run.StartedAt.UTC(),
		FinishedAt:   run.FinishedAt.UTC(),
		DurationMs:   run.Duration().Milliseconds(),
	}

	query, args, err := qb.InsertModel(runsTable, model, "")
	if err != nil {
		return "", nil, fmt.Errorf("build insert etl run query: %w", err)
	}
	return query, args, nil
}
