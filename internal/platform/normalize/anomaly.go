package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type AnomalyCategory string

const (
	NotCapitalized AnomalyCategory = "not_capitalized"
	ExtraSpaces    AnomalyCategory = "extra_spaces"
	SpecialChars   AnomalyCategory = "special_chars"
)

// AnomalyReport lists the original offending values per category.
type AnomalyReport map[AnomalyCategory][]string

func (r AnomalyReport) Total() int {
	n := 0
	for _, values := range r {
		n += len(values)
	}
	return n
}

// Latin letters (accented included), whitespace and hyphen are allowed.
var specialCharPattern = regexp.MustCompile(`[^A-Za-zÀ-ÖØ-öø-ÿ\s\-]`)

// ScanAnomalies classifies each distinct non-null value. It never changes the data.
func ScanAnomalies(values []*string) AnomalyReport {
	report := AnomalyReport{
		NotCapitalized: []string{},
		ExtraSpaces:    []string{},
		SpecialChars:   []string{},
	}

	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		value := *v
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}

		stripped := strings.TrimSpace(value)
		if first, _ := utf8.DecodeRuneInString(stripped); stripped == "" || !unicode.IsUpper(first) {
			report[NotCapitalized] = append(report[NotCapitalized], value)
		}
		if value != stripped || strings.Contains(value, "  ") {
			report[ExtraSpaces] = append(report[ExtraSpaces], value)
		}
		if specialCharPattern.MatchString(stripped) || strings.ContainsAny(value, `"'`) {
			report[SpecialChars] = append(report[SpecialChars], value)
		}
	}

	return report
}
