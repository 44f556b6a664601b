package extract

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"unicode"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
	"github.com/valyala/bytebufferpool"
)

// ErrSourceNotFound is returned by hard reads when the source file does not exist.
var ErrSourceNotFound = crerr.New("source file not found")

// Delimiters are tried in this order; the first one that yields more than one column wins.
var Delimiters = []rune{',', ';', '|', '\t'}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Reader struct {
	logger *logging.Logger
}

func NewReader(logger *logging.Logger) *Reader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Reader{logger: logger.Named("extract")}
}

// ReadTabular loads a delimited text file. A missing file or an undetectable
// delimiter is a soft failure: it is logged and an empty table is returned.
func (r *Reader) ReadTabular(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Warn("tabular source not found, using empty table", "path", path)
			return table.Empty(), nil
		}
		return nil, crerr.Wrapf(err, "open tabular source %s", path)
	}
	defer f.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, crerr.Wrapf(err, "read tabular source %s", path)
	}
	data := bytes.TrimPrefix(buf.B, utf8BOM)

	for _, delim := range Delimiters {
		records, ok := parseDelimited(data, delim)
		if !ok || len(records) == 0 || len(records[0]) <= 1 {
			continue
		}
		r.logger.Debug("tabular source parsed", "path", path, "delimiter", string(delim), "rows", len(records)-1)
		return toTable(records), nil
	}

	r.logger.Warn("no delimiter produced more than one column, using empty table", "path", path)
	return table.Empty(), nil
}

func parseDelimited(data []byte, delim rune) ([][]string, bool) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.TrimLeadingSpace = !unicode.IsSpace(delim)
	// Stray quotes inside bare fields and short rows are kept; toTable pads missing cells with null.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, false
	}
	return records, true
}

func toTable(records [][]string) *table.Table {
	header := make([]string, 0, len(records[0]))
	for _, h := range records[0] {
		header = append(header, strings.TrimSpace(h))
	}

	rows := make([]table.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(table.Row, len(header))
		for i, col := range header {
			if i >= len(rec) || rec[i] == "" {
				row[col] = nil
				continue
			}
			row[col] = table.Value(rec[i])
		}
		rows = append(rows, row)
	}
	return table.New(header, rows)
}
