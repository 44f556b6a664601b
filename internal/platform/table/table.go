package table

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// ErrMissingColumn is returned when an operation references a column the table does not have.
var ErrMissingColumn = crerr.New("missing column")

// Row maps a column name to a nullable cell value.
type Row map[string]*string

// Table is an ordered set of columns and rows. Operations never mutate the receiver.
type Table struct {
	columns []string
	rows    []Row
}

func New(columns []string, rows []Row) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		rows:    make([]Row, 0, len(rows)),
	}
	for _, row := range rows {
		t.rows = append(t.rows, cloneRow(row, t.columns))
	}
	return t
}

func Empty() *Table {
	return &Table{}
}

func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.columns...)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// IsEmpty reports whether the table has neither columns nor rows.
func (t *Table) IsEmpty() bool {
	return t == nil || (len(t.columns) == 0 && len(t.rows) == 0)
}

func (t *Table) Has(column string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.columns {
		if c == column {
			return true
		}
	}
	return false
}

// Rows returns copies of every row.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, cloneRow(row, t.columns))
	}
	return out
}

func (t *Table) Column(column string) []*string {
	if t == nil {
		return nil
	}
	out := make([]*string, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, copyValue(row[column]))
	}
	return out
}

// Require returns ErrMissingColumn naming every absent column.
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return crerr.Wrapf(ErrMissingColumn, "%s", strings.Join(missing, ", "))
}

// Project keeps only the given columns, in the given order.
func (t *Table) Project(columns []string) (*Table, error) {
	if err := t.Require(columns...); err != nil {
		return nil, err
	}
	out := &Table{
		columns: dedupe(columns),
		rows:    make([]Row, 0, t.Len()),
	}
	for _, row := range t.rows {
		out.rows = append(out.rows, cloneRow(row, out.columns))
	}
	return out, nil
}

// Rename applies old->new column names. Unknown keys are ignored.
func (t *Table) Rename(mapping map[string]string) *Table {
	return t.RenameColumns(func(column string) string {
		if renamed, ok := mapping[column]; ok && renamed != "" {
			return renamed
		}
		return column
	})
}

func (t *Table) RenameColumns(fn func(string) string) *Table {
	if t == nil {
		return Empty()
	}
	names := make(map[string]string, len(t.columns))
	columns := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		renamed := fn(c)
		names[c] = renamed
		columns = append(columns, renamed)
	}

	out := &Table{columns: dedupe(columns), rows: make([]Row, 0, len(t.rows))}
	for _, row := range t.rows {
		next := make(Row, len(row))
		for _, c := range t.columns {
			next[names[c]] = copyValue(row[c])
		}
		out.rows = append(out.rows, next)
	}
	return out
}

// MapColumn rewrites one column cell by cell. A missing column returns the table unchanged.
func (t *Table) MapColumn(column string, fn func(*string) *string) *Table {
	if !t.Has(column) {
		return t
	}
	out := &Table{columns: t.Columns(), rows: make([]Row, 0, len(t.rows))}
	for _, row := range t.rows {
		next := cloneRow(row, t.columns)
		next[column] = fn(copyValue(row[column]))
		out.rows = append(out.rows, next)
	}
	return out
}

// WithColumn adds or replaces a column computed from each row.
func (t *Table) WithColumn(column string, fn func(Row) *string) *Table {
	if t == nil {
		return Empty()
	}
	columns := t.Columns()
	if !t.Has(column) {
		columns = append(columns, column)
	}
	out := &Table{columns: columns, rows: make([]Row, 0, len(t.rows))}
	for _, row := range t.rows {
		next := cloneRow(row, t.columns)
		next[column] = fn(cloneRow(row, t.columns))
		out.rows = append(out.rows, next)
	}
	return out
}

// Distinct returns distinct non-null values of a column in first-seen order.
func (t *Table) Distinct(column string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range t.Column(column) {
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	return out
}

func Value(s string) *string {
	return &s
}

func cloneRow(row Row, columns []string) Row {
	out := make(Row, len(columns))
	for _, c := range columns {
		out[c] = copyValue(row[c])
	}
	return out
}

func copyValue(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func dedupe(columns []string) []string {
	seen := make(map[string]struct{}, len(columns))
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
