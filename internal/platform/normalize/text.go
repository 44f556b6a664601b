package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
	"golang.org/x/text/unicode/norm"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Capitalize trims and upper-cases the first letter, lower-casing the rest.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// CollapseSpaces trims and squeezes internal whitespace runs to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveSpaces drops every whitespace character, e.g. "17 : 00" -> "17:00".
func RemoveSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func StripTrailingPeriod(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), "."))
}

// NFC composes accents so "São" and "São" compare equal.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// LeadingDigits extracts the first run of digits. ok is false when there is none.
func LeadingDigits(raw string) (int, bool) {
	match := digitRun.FindString(raw)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MapValue looks v up in a vocabulary table. Misses and nulls pass through unchanged.
func MapValue(v *string, mapping map[string]string) *string {
	if v == nil {
		return nil
	}
	if mapped, ok := mapping[*v]; ok {
		return &mapped
	}
	out := *v
	return &out
}

func CapitalizeColumns(t *table.Table, columns ...string) *table.Table {
	return applyToColumns(t, "capitalize", Capitalize, columns)
}

func UpperColumns(t *table.Table, columns ...string) *table.Table {
	return applyToColumns(t, "upper", func(s string) string {
		return strings.ToUpper(strings.TrimSpace(s))
	}, columns)
}

func LowerColumns(t *table.Table, columns ...string) *table.Table {
	return applyToColumns(t, "lower", func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}, columns)
}

func applyToColumns(t *table.Table, name string, fn func(string) string, columns []string) *table.Table {
	if len(columns) == 0 {
		logging.Default().Info("no columns given, table left unchanged", "normalizer", name)
		return t
	}

	out := t
	for _, column := range columns {
		out = out.MapColumn(column, func(v *string) *string {
			if v == nil {
				return nil
			}
			s := fn(*v)
			return &s
		})
	}
	return out
}
