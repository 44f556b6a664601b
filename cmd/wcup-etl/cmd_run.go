package main

import (
	"github.com/bytedance/sonic"
	"github.com/riskibarqy/worldcup-etl/internal/app"
	"github.com/riskibarqy/worldcup-etl/internal/domain/etlrun"
	"github.com/riskibarqy/worldcup-etl/internal/usecase"
	"github.com/spf13/cobra"
)

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract, transform and load the consolidated match table",
	Args:  cobra.NoArgs,
	RunE:  runPipeline,
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "consolidate without touching the database")
}

type runSummary struct {
	RunID      string              `json:"run_id"`
	Status     string              `json:"status"`
	Rows       int                 `json:"rows"`
	DurationMs int64               `json:"duration_ms"`
	Sources    []etlrun.SourceStat `json:"sources"`
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx, app.Options{Offline: runDryRun})
	if err != nil {
		return err
	}
	defer closeApp(ctx, a)

	result, err := a.Pipeline.Run(ctx, usecase.RunInput{DryRun: runDryRun})
	if err != nil {
		return err
	}

	enc := sonic.ConfigStd.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(runSummary{
		RunID:      result.RunID,
		Status:     result.Status,
		Rows:       len(result.Matches),
		DurationMs: result.Duration.Milliseconds(),
		Sources:    result.Sources,
	})
}
