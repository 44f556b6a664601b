package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/worldcup-etl/internal/domain/etlrun"
	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/domain/ruleset"
	"github.com/riskibarqy/worldcup-etl/internal/extract"
	"github.com/riskibarqy/worldcup-etl/internal/platform/id"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"github.com/riskibarqy/worldcup-etl/internal/platform/normalize"
	"github.com/riskibarqy/worldcup-etl/internal/transform"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SourceReader materialises the four raw editions.
type SourceReader interface {
	ReadAll(ctx context.Context, paths extract.Paths) (extract.Sources, error)
}

// PipelineSettings is the loaded pipeline file, threaded in once at construction.
type PipelineSettings struct {
	Sources     extract.Paths
	Destination match.Destination
	Rules       ruleset.Set
}

type RunInput struct {
	// DryRun stops after consolidation: nothing is written to the destination.
	DryRun bool
}

type RunResult struct {
	RunID    string
	Status   string
	Matches  []match.Match
	Sources  []etlrun.SourceStat
	Duration time.Duration
}

// SourceAnomalies is the team-name scan of one edition, taken before spelling corrections.
type SourceAnomalies struct {
	Source string
	Report normalize.AnomalyReport
}

type PipelineService struct {
	reader      SourceReader
	transformer *transform.Transformer
	writer      match.Writer
	runs        etlrun.Repository
	ids         id.Generator
	settings    PipelineSettings
	logger      *logging.Logger
	now         func() time.Time
}

// NewPipelineService wires the pipeline. writer and runs may be nil for
// dry-run-only use; a nil runs repository disables the audit trail.
func NewPipelineService(
	reader SourceReader,
	transformer *transform.Transformer,
	writer match.Writer,
	runs etlrun.Repository,
	ids id.Generator,
	settings PipelineSettings,
	logger *logging.Logger,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if transformer == nil {
		transformer = transform.New(logger)
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &PipelineService{
		reader:      reader,
		transformer: transformer,
		writer:      writer,
		runs:        runs,
		ids:         ids,
		settings:    settings,
		logger:      logger.Named("pipeline"),
		now:         time.Now,
	}
}

// Run extracts, transforms each edition in order, consolidates and, unless
// DryRun is set, replaces or appends the destination table.
func (s *PipelineService) Run(ctx context.Context, input RunInput) (RunResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run",
		attribute.Bool("dry_run", input.DryRun),
		attribute.String("destination", s.settings.Destination.QualifiedName()),
	)
	defer span.End()

	if !input.DryRun && s.writer == nil {
		return RunResult{}, fmt.Errorf("%w: a writer is required unless dry run is set", ErrInvalidInput)
	}
	if s.settings.Destination.Table == "" && !input.DryRun {
		return RunResult{}, fmt.Errorf("%w: destination table is required", ErrInvalidInput)
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return RunResult{}, fmt.Errorf("generate run id: %w", err)
	}
	run := etlrun.Run{
		ID:          runID,
		StartedAt:   s.now().UTC(),
		Destination: s.settings.Destination.QualifiedName(),
	}
	logger := s.logger.With("run_id", runID)
	logger.InfoContext(ctx, "pipeline run started", "dry_run", input.DryRun, "destination", run.Destination)

	matches, stats, err := s.buildTable(ctx)
	run.Sources = stats
	if err != nil {
		return s.fail(ctx, logger, run, err)
	}
	run.TotalRows = len(matches)

	if input.DryRun {
		run.Status = etlrun.StatusDryRun
	} else {
		if err := s.writer.WriteTable(ctx, matches, s.settings.Destination); err != nil {
			return s.fail(ctx, logger, run, fmt.Errorf("%w: write %s: %w", ErrPersistence, run.Destination, err))
		}
		run.Status = etlrun.StatusSucceeded
	}

	run.FinishedAt = s.now().UTC()
	s.record(ctx, logger, run)
	logger.InfoContext(ctx, "pipeline run finished",
		"status", run.Status,
		"rows", run.TotalRows,
		"duration_ms", run.Duration().Milliseconds(),
	)

	return RunResult{
		RunID:    run.ID,
		Status:   run.Status,
		Matches:  matches,
		Sources:  run.Sources,
		Duration: run.Duration(),
	}, nil
}

// Anomalies scans the team names of every edition as the transformers see
// them, before any spelling correction. Nothing is written.
func (s *PipelineService) Anomalies(ctx context.Context) ([]SourceAnomalies, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Anomalies")
	defer span.End()

	sources, err := s.reader.ReadAll(ctx, s.settings.Sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	out := make([]SourceAnomalies, 0, len(ruleset.Sources))
	for _, source := range ruleset.Sources {
		rules, _ := s.settings.Rules.For(source)
		rules.TeamMapping = nil
		rules.ScanTeams = false

		matches, err := s.transformSource(source, sources, rules)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTransform, source, err)
		}
		report := transform.ScanTeams(matches)
		s.logger.InfoContext(ctx, "team anomalies", "source", source, "total", report.Total())
		out = append(out, SourceAnomalies{Source: source, Report: report})
	}
	return out, nil
}

func (s *PipelineService) buildTable(ctx context.Context) ([]match.Match, []etlrun.SourceStat, error) {
	sources, err := s.reader.ReadAll(ctx, s.settings.Sources)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	sets := make([][]match.Match, 0, len(ruleset.Sources))
	stats := make([]etlrun.SourceStat, 0, len(ruleset.Sources))
	for _, source := range ruleset.Sources {
		rules, _ := s.settings.Rules.For(source)
		matches, err := s.transformSource(source, sources, rules)
		if err != nil {
			return nil, stats, fmt.Errorf("%w: %s: %w", ErrTransform, source, err)
		}
		sets = append(sets, matches)
		stats = append(stats, sourceStat(source, rawRows(source, sources), matches))
	}

	return transform.Consolidate(sets...), stats, nil
}

func (s *PipelineService) transformSource(source string, sources extract.Sources, rules ruleset.Bundle) ([]match.Match, error) {
	switch source {
	case ruleset.SourceWC2010:
		return s.transformer.WC2010(sources.WC2010, rules)
	case ruleset.SourceWC2014:
		return s.transformer.WC2014(sources.WC2014, rules)
	case ruleset.SourceWC2018:
		return s.transformer.WC2018(sources.WC2018, rules)
	case ruleset.SourceWC2022:
		return s.transformer.WC2022(sources.WC2022, rules)
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, source)
	}
}

func (s *PipelineService) fail(ctx context.Context, logger *logging.Logger, run etlrun.Run, cause error) (RunResult, error) {
	run.Status = etlrun.StatusFailed
	run.FinishedAt = s.now().UTC()
	run.ErrorMessage = cause.Error()
	s.record(ctx, logger, run)

	span := trace.SpanFromContext(ctx)
	span.RecordError(cause)
	span.SetStatus(codes.Error, "pipeline run failed")
	logger.ErrorContext(ctx, "pipeline run failed", "error", cause)
	return RunResult{RunID: run.ID, Status: run.Status, Sources: run.Sources, Duration: run.Duration()}, cause
}

// record stores the audit row. A failing audit write is logged and never
// changes the outcome of the run itself.
func (s *PipelineService) record(ctx context.Context, logger *logging.Logger, run etlrun.Run) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Create(ctx, run); err != nil {
		logger.ErrorContext(ctx, "record pipeline run", "error", err)
	}
}

func rawRows(source string, sources extract.Sources) int {
	switch source {
	case ruleset.SourceWC2010:
		return sources.WC2010.Len()
	case ruleset.SourceWC2014:
		return sources.WC2014.Len()
	case ruleset.SourceWC2018:
		return len(sources.WC2018.Matches)
	case ruleset.SourceWC2022:
		return sources.WC2022.Len()
	default:
		return 0
	}
}

func sourceStat(source string, raw int, matches []match.Match) etlrun.SourceStat {
	stat := etlrun.SourceStat{
		Source:    source,
		RawRows:   raw,
		Rows:      len(matches),
		Anomalies: map[string]int{},
	}
	for _, m := range matches {
		if _, ok := m.DateKey(); !ok {
			stat.NullDates++
		}
	}
	for category, values := range transform.ScanTeams(matches) {
		stat.Anomalies[string(category)] = len(values)
	}
	return stat
}
