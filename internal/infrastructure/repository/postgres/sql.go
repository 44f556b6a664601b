package postgres

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
)

const (
	pqUndefinedTable  = "42P01"
	pqUndefinedSchema = "3F000"
)

// isUndefinedRelation reports whether err is postgres complaining about a
// table or schema that does not exist.
func isUndefinedRelation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUndefinedTable || pqErr.Code == pqUndefinedSchema
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func encodeJSON(v any) (string, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
