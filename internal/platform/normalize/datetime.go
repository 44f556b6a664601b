package normalize

import (
	"strconv"
	"strings"
	"time"
)

// CompactLayout renders dates as fixed-width YYYYMMDDhhmmss.
const CompactLayout = "20060102150405"

// SentinelDate replaces unparseable ISO timestamps so those rows sort after every real date.
const SentinelDate = "99999999999999"

// Day-first wherever day and month are both numeric. Month-first layouts are never tried.
var dayFirstLayouts = []string{
	"2 Jan 2006 - 15:04",
	"2 Jan 2006 - 15:04:05",
	"2 Jan 2006 15:04",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006",
	"2 January 2006 - 15:04",
	"2 January 2006 15:04",
	"2 January 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"2-1-2006 15:04",
	"2-1-2006",
	"2.1.2006 15:04",
	"2.1.2006",
	"2006",
}

var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeDateTime parses a locale-ambiguous date or date-time, day first, and
// returns it as YYYYMMDDhhmmss in its own wall clock. ok is false when nothing matches.
func NormalizeDateTime(raw string) (string, bool) {
	value := CollapseSpaces(raw)
	if value == "" {
		return "", false
	}

	for _, layout := range dayFirstLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return parsed.Format(CompactLayout), true
	}
	return "", false
}

// ISOToCompact converts an ISO-8601 timestamp to YYYYMMDDhhmmss in UTC.
// Anything unparseable becomes SentinelDate.
func ISOToCompact(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return SentinelDate
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC().Format(CompactLayout)
	}
	for _, layout := range isoLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC().Format(CompactLayout)
		}
	}
	return SentinelDate
}

// IsCompactDate reports whether s has the fixed YYYYMMDDhhmmss width and only digits.
func IsCompactDate(s string) bool {
	if len(s) != len(CompactLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CompactYear returns the year of a real compact date. The sentinel has no year.
func CompactYear(s string) (int, bool) {
	if !IsCompactDate(s) || s == SentinelDate {
		return 0, false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
