package main

import (
	"github.com/bytedance/sonic"
	"github.com/riskibarqy/worldcup-etl/internal/app"
	"github.com/spf13/cobra"
)

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies",
	Short: "Report suspicious team names per edition before spelling fixes",
	Args:  cobra.NoArgs,
	RunE:  runAnomalies,
}

func runAnomalies(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx, app.Options{Offline: true})
	if err != nil {
		return err
	}
	defer closeApp(ctx, a)

	reports, err := a.Pipeline.Anomalies(ctx)
	if err != nil {
		return err
	}

	out := make(map[string]any, len(reports))
	for _, r := range reports {
		out[r.Source] = r.Report
	}

	enc := sonic.ConfigStd.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
