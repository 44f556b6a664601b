package extract

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
	"github.com/riskibarqy/worldcup-etl/internal/source/nested"
	"github.com/sourcegraph/conc/pool"
)

// Paths locates the four source editions.
type Paths struct {
	WC2010 string `yaml:"wc2010" validate:"required"`
	WC2014 string `yaml:"wc2014" validate:"required"`
	WC2018 string `yaml:"wc2018" validate:"required"`
	WC2022 string `yaml:"wc2022" validate:"required"`
}

// Sources holds the raw, untransformed editions.
type Sources struct {
	WC2010 *table.Table
	WC2014 *table.Table
	WC2018 nested.Relations
	WC2022 *table.Table
}

// ReadAll reads the four editions concurrently. Each read fills its own slot,
// so the result does not depend on completion order.
func (r *Reader) ReadAll(ctx context.Context, paths Paths) (Sources, error) {
	var out Sources

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(context.Context) error {
		t, err := r.ReadTabular(paths.WC2010)
		out.WC2010 = t
		return crerr.Wrap(err, "wc2010")
	})
	p.Go(func(context.Context) error {
		t, err := r.ReadTabular(paths.WC2014)
		out.WC2014 = t
		return crerr.Wrap(err, "wc2014")
	})
	p.Go(func(context.Context) error {
		rel, err := r.ReadNested(paths.WC2018)
		out.WC2018 = rel
		return crerr.Wrap(err, "wc2018")
	})
	p.Go(func(context.Context) error {
		t, err := r.ReadTabular(paths.WC2022)
		out.WC2022 = t
		return crerr.Wrap(err, "wc2022")
	})

	if err := p.Wait(); err != nil {
		return Sources{}, err
	}
	return out, nil
}
