package etlrun

import "context"

// Repository stores pipeline run audit records.
type Repository interface {
	Create(ctx context.Context, run Run) error
}
