package postgres

import "time"

type runInsertModel struct {
	ID           string    `db:"id"`
	Status       string    `db:"status"`
	Destination  string    `db:"destination"`
	TotalRows    int       `db:"total_rows"`
	Sources      string    `db:"sources"`
	ErrorMessage *string   `db:"error_message"`
	StartedAt    time.Time `db:"started_at"`
	FinishedAt   time.Time `db:"finished_at"`
	DurationMs   int64     `db:"duration_ms"`
}
