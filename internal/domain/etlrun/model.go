package etlrun

import "time"

const (
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusDryRun    = "DRY_RUN"
)

// SourceStat summarises one source edition inside a run.
type SourceStat struct {
	Source    string         `json:"source"`
	RawRows   int            `json:"raw_rows"`
	Rows      int            `json:"rows"`
	NullDates int            `json:"null_dates"`
	Anomalies map[string]int `json:"anomalies,omitempty"`
}

// Run is the audit record of one pipeline execution.
type Run struct {
	ID           string
	StartedAt    time.Time
	FinishedAt   time.Time
	Status       string
	Destination  string
	TotalRows    int
	Sources      []SourceStat
	ErrorMessage string
}

func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
