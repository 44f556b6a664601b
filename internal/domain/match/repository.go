package match

import (
	"context"
	"strings"
)

type Mode string

const (
	ModeReplace Mode = "replace"
	ModeAppend  Mode = "append"
)

// Destination names the relational table the consolidated matches land in.
type Destination struct {
	Schema string
	Table  string
	Mode   Mode
}

func (d Destination) QualifiedName() string {
	if strings.TrimSpace(d.Schema) == "" {
		return d.Table
	}
	return d.Schema + "." + d.Table
}

// Writer persists a consolidated table. Implementations own DDL and commit/rollback.
type Writer interface {
	WriteTable(ctx context.Context, matches []Match, dest Destination) error
}
