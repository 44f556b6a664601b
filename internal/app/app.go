package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/worldcup-etl/internal/config"
	"github.com/riskibarqy/worldcup-etl/internal/domain/etlrun"
	"github.com/riskibarqy/worldcup-etl/internal/domain/match"
	"github.com/riskibarqy/worldcup-etl/internal/extract"
	"github.com/riskibarqy/worldcup-etl/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/worldcup-etl/internal/observability"
	idgen "github.com/riskibarqy/worldcup-etl/internal/platform/id"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"github.com/riskibarqy/worldcup-etl/internal/transform"
	"github.com/riskibarqy/worldcup-etl/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// Options select which parts of the process get wired.
type Options struct {
	// Offline skips the database entirely. The pipeline can then only dry-run.
	Offline bool
}

// App holds the wired pipeline and the resources it owns.
type App struct {
	Config      config.Config
	Pipeline    *usecase.PipelineService
	Matches     *postgres.MatchRepository
	Destination match.Destination
	Logger      *logging.Logger

	db       *sqlx.DB
	shutdown func(context.Context) error
}

// New loads the pipeline file and wires every layer. Close must be called
// once the returned App is no longer needed.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	pipeline, err := config.LoadPipeline(cfg.PipelineConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load pipeline config: %w", err)
	}

	shutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	a := &App{
		Config:      cfg,
		Destination: pipeline.Destination.Match(),
		Logger:      logger,
		shutdown:    shutdown,
	}

	var (
		writer match.Writer
		runs   etlrun.Repository
	)
	if !opts.Offline {
		db, err := openDB(ctx, cfg, logger)
		if err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
		a.db = db
		a.Matches = postgres.NewMatchRepository(db)
		writer = a.Matches
		runs = postgres.NewRunRepository(db)
	}

	a.Pipeline = usecase.NewPipelineService(
		extract.NewReader(logger),
		transform.New(logger),
		writer,
		runs,
		idgen.NewUUIDGenerator(),
		usecase.PipelineSettings{
			Sources:     pipeline.Sources,
			Destination: a.Destination,
			Rules:       pipeline.Rules,
		},
		logger,
	)

	return a, nil
}

// Close releases the database pool and flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
		}
	}
	return errors.Join(errs...)
}

func openDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	if cfg.DBAutoMigrate {
		if err := migrateUp(dbURL, cfg.MigrationsDir, logger); err != nil {
			return nil, err
		}
	}

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	logger.Info("database connected", "db_name", dbNameFromURL(dbURL), "auto_migrate", cfg.DBAutoMigrate)
	return db, nil
}
