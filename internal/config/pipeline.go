package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/extract"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the pipeline file does not exist.
var ErrConfigNotFound = crerr.New("pipeline config not found")

// Pipeline is the declarative description of one ETL run: where the four
// editions live, where the consolidated table goes, and the rules per source.
type Pipeline struct {
	Sources     extract.Paths `yaml:"sources" validate:"required"`
	Destination Destination   `yaml:"destination" validate:"required"`
	Rules       ruleset.Set   `yaml:"rules" validate:"required"`
}

type Destination struct {
	Schema string `yaml:"schema"`
	Table  string `yaml:"table" validate:"required"`
	Mode   string `yaml:"mode" validate:"omitempty,oneof=replace append"`
}

// Match converts the destination to the persistence form, defaulting to replace.
func (d Destination) Match() match.Destination {
	mode := match.Mode(d.Mode)
	if mode == "" {
		mode = match.ModeReplace
	}
	return match.Destination{Schema: d.Schema, Table: d.Table, Mode: mode}
}

// LoadPipeline reads and validates the pipeline file. Unknown keys are rejected.
func LoadPipeline(path string) (Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Pipeline{}, crerr.Wrapf(ErrConfigNotFound, "%s", path)
		}
		return Pipeline{}, crerr.Wrapf(err, "read pipeline config %s", path)
	}
	return ParsePipeline(data)
}

func ParsePipeline(data []byte) (Pipeline, error) {
	var p Pipeline
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Pipeline{}, crerr.New("pipeline config is empty")
		}
		return Pipeline{}, crerr.Wrap(err, "decode pipeline config")
	}

	if err := validator.New().Struct(p); err != nil {
		return Pipeline{}, crerr.Wrap(err, "validate pipeline config")
	}
	return p, nil
}
