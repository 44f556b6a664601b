package nested

import (
	"bytes"
	"strconv"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/worldcup-etl/internal/platform/normalize"
)

// ID is a reference that the document writes either as a number or as a string.
// Null and absent references decode to "".
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		*id = ""
	case raw[0] == '"':
		s, err := strconv.Unquote(string(raw))
		if err != nil {
			return crerr.Wrapf(err, "decode id %s", raw)
		}
		*id = ID(s)
	default:
		*id = ID(raw)
	}
	return nil
}

// Score is a goal count written as a number, a numeric string or null.
// Values without leading digits decode to null instead of failing the document.
type Score struct {
	value *int
}

func (s *Score) UnmarshalJSON(b []byte) error {
	s.value = nil
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 {
		return nil
	}

	text := string(raw)
	switch {
	case raw[0] == '"':
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return nil
		}
		text = unquoted
	case raw[0] >= '0' && raw[0] <= '9':
	default:
		return nil
	}

	if n, ok := normalize.LeadingDigits(text); ok {
		s.value = &n
	}
	return nil
}

// Int returns the decoded count, nil when absent or unreadable.
func (s Score) Int() *int {
	if s.value == nil {
		return nil
	}
	n := *s.value
	return &n
}

// Document mirrors the nested tournament file: flat entity lists plus two
// hierarchical containers that hold the matches.
type Document struct {
	Teams      []Team               `json:"teams"`
	Stadiums   []Stadium            `json:"stadiums"`
	TVChannels []TVChannel          `json:"tvchannels"`
	Groups     map[string]GroupNode `json:"groups"`
	Knockout   map[string]RoundNode `json:"knockout"`
}

type Team struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	FifaCode string `json:"fifaCode"`
	ISO2     string `json:"iso2"`
}

type Stadium struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type TVChannel struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	ISO2    string `json:"iso2"`
}

type GroupNode struct {
	Name     string     `json:"name"`
	Winner   ID         `json:"winner"`
	RunnerUp ID         `json:"runnerup"`
	Matches  []RawMatch `json:"matches"`
}

type RoundNode struct {
	Name    string     `json:"name"`
	Matches []RawMatch `json:"matches"`
}

type RawMatch struct {
	Name        ID     `json:"name"`
	Type        string `json:"type"`
	HomeTeam    ID     `json:"home_team"`
	AwayTeam    ID     `json:"away_team"`
	HomeResult  Score  `json:"home_result"`
	AwayResult  Score  `json:"away_result"`
	HomePenalty Score  `json:"home_penalty"`
	AwayPenalty Score  `json:"away_penalty"`
	Winner      ID     `json:"winner"`
	Date        string `json:"date"`
	Stadium     ID     `json:"stadium"`
	Channels    []ID   `json:"channels"`
	Finished    bool   `json:"finished"`
	Matchday    *int   `json:"matchday"`
}

// Decode parses a nested tournament document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return Document{}, crerr.Wrap(err, "decode nested document")
	}
	return doc, nil
}
