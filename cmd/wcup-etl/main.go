package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/worldcup-etl/internal/app"
	"github.com/riskibarqy/worldcup-etl/internal/config"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
	"github.com/spf13/cobra"
)

var (
	pipelineConfigPath string
	consoleLogs        bool
)

var rootCmd = &cobra.Command{
	Use:           "wcup-etl",
	Short:         "Consolidate four World Cup editions into one match table",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pipelineConfigPath, "config", "", "pipeline file (overrides PIPELINE_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&consoleLogs, "console", false, "human readable logs instead of JSON")

	rootCmd.AddCommand(runCmd, anomaliesCmd, matchesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Default().Error("command failed", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads the environment and wires the app for one command.
func bootstrap(ctx context.Context, opts app.Options) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if pipelineConfigPath != "" {
		cfg.PipelineConfigPath = pipelineConfigPath
	}

	logger := logging.NewJSON(cfg.LogLevel)
	if consoleLogs {
		logger = logging.NewConsole(cfg.LogLevel)
	}
	logger = logger.With("service", cfg.ServiceName, "environment", cfg.AppEnv)
	logging.SetDefault(logger)

	return app.New(ctx, cfg, logger, opts)
}

func closeApp(ctx context.Context, a *app.App) {
	if err := a.Close(context.WithoutCancel(ctx)); err != nil {
		a.Logger.Warn("shutdown failed", "error", err)
	}
	_ = a.Logger.Sync()
}
