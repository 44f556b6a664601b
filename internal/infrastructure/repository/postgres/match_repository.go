package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	qb "github.com/riskibarqy/worldcup-etl/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// ListFilter narrows List. Zero values mean no filter.
type ListFilter struct {
	Edition int
	Limit   int
}

// WriteTable lands the consolidated matches in one transaction. Replace drops
// and recreates the table; append creates it when missing and continues the
// match_id sequence after the highest stored id. Any failure rolls the whole
// write back.
func (r *MatchRepository) WriteTable(ctx context.Context, matches []match.Match, dest match.Destination) error {
	if strings.TrimSpace(dest.Table) == "" {
		return fmt.Errorf("destination table is required")
	}
	mode := dest.Mode
	if mode == "" {
		mode = match.ModeReplace
	}
	if mode != match.ModeReplace && mode != match.ModeAppend {
		return fmt.Errorf("unsupported write mode %q", mode)
	}

	target := qb.Ident(dest.Schema, dest.Table)
	statements, err := matchTableStatements(dest.Schema, target, mode)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx write %s: %w", target, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("prepare %s: %w", target, err)
		}
	}

	offset := 0
	if mode == match.ModeAppend {
		if err := tx.GetContext(ctx, &offset, "SELECT COALESCE(MAX("+qb.Ident(match.ColumnMatchID)+"), 0) FROM "+target); err != nil {
			return fmt.Errorf("read last match_id of %s: %w", target, err)
		}
	}

	copyStmt, err := tx.PreparexContext(ctx, copyInStatement(dest))
	if err != nil {
		return fmt.Errorf("prepare copy into %s: %w", target, err)
	}
	for _, m := range matches {
		m.MatchID += offset
		if _, err := copyStmt.ExecContext(ctx, m.Values()...); err != nil {
			_ = copyStmt.Close()
			return fmt.Errorf("copy match_id=%d into %s: %w", m.MatchID, target, err)
		}
	}
	if _, err := copyStmt.ExecContext(ctx); err != nil {
		_ = copyStmt.Close()
		return fmt.Errorf("flush copy into %s: %w", target, err)
	}
	if err := copyStmt.Close(); err != nil {
		return fmt.Errorf("close copy into %s: %w", target, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write %s: %w", target, err)
	}
	return nil
}

// List reads the destination table back in match_id order. A destination that
// does not exist yet lists as empty.
func (r *MatchRepository) List(ctx context.Context, dest match.Destination, filter ListFilter) ([]match.Match, error) {
	target := qb.Ident(dest.Schema, dest.Table)
	columns := make([]string, 0, len(match.Columns))
	for _, c := range match.Columns {
		columns = append(columns, qb.Ident(c))
	}
	builder := qb.Select(columns...).
		From(target).
		OrderBy(qb.Ident(match.ColumnMatchID)).
		Limit(filter.Limit)
	if filter.Edition > 0 {
		builder = builder.Where(qb.Eq(qb.Ident(match.ColumnEdition), filter.Edition))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUndefinedRelation(err) {
			return []match.Match{}, nil
		}
		return nil, fmt.Errorf("list matches from %s: %w", target, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func matchTableStatements(schema, target string, mode match.Mode) ([]string, error) {
	var statements []string
	if strings.TrimSpace(schema) != "" {
		stmt, err := qb.CreateSchema(schema)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if mode == match.ModeReplace {
		stmt, err := qb.DropTable(target, true)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	create := qb.CreateTable(target).IfNotExists(mode == match.ModeAppend)
	for _, c := range matchTableColumns {
		create = create.Column(c.Name, c.Type, c.Constraints)
	}
	stmt, err := create.ToSQL()
	if err != nil {
		return nil, err
	}
	return append(statements, stmt), nil
}

func copyInStatement(dest match.Destination) string {
	if strings.TrimSpace(dest.Schema) == "" {
		return pq.CopyIn(dest.Table, match.Columns...)
	}
	return pq.CopyInSchema(dest.Schema, dest.Table, match.Columns...)
}
