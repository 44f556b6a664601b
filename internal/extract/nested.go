package extract

import (
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/worldcup-etl/internal/source/nested"
)

// ReadNested loads the hierarchical tournament document and resolves it into
// teams, stadiums, tv channels, groups, rounds, matches and the match-channel bridge.
func (r *Reader) ReadNested(path string) (nested.Relations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nested.Relations{}, crerr.Wrapf(ErrSourceNotFound, "%s", path)
		}
		return nested.Relations{}, crerr.Wrapf(err, "read nested source %s", path)
	}

	doc, err := nested.Decode(data)
	if err != nil {
		return nested.Relations{}, crerr.Wrapf(err, "nested source %s", path)
	}

	rel := nested.Flatten(doc)
	r.logger.Debug("nested source parsed",
		"path", path,
		"matches", len(rel.Matches),
		"teams", len(rel.Teams),
		"stadiums", len(rel.Stadiums),
	)
	return rel, nil
}
