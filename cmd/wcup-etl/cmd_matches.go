package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/riskibarqy/worldcup-etl/internal/app"
	"github.com/riskibarqy/worldcup-etl/internal/infrastructure/repository/postgres"
	"github.com/spf13/cobra"
)

var (
	matchesEdition int
	matchesLimit   int
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Print the loaded match table",
	Args:  cobra.NoArgs,
	RunE:  runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&matchesEdition, "edition", 0, "only this edition year")
	matchesCmd.Flags().IntVar(&matchesLimit, "limit", 0, "maximum rows, 0 for all")
}

func runMatches(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx, app.Options{})
	if err != nil {
		return err
	}
	defer closeApp(ctx, a)

	matches, err := a.Matches.List(ctx, a.Destination, postgres.ListFilter{
		Edition: matchesEdition,
		Limit:   matchesLimit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATCH\tDATE\tHOME\tAWAY\tSCORE\tSTAGE\tEDITION\tCITY")
	for _, m := range matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s-%s\t%s\t%d\t%s\n",
			m.MatchID,
			orDash(m.Date),
			orDash(m.HomeTeam),
			orDash(m.AwayTeam),
			intOrDash(m.HomeResult),
			intOrDash(m.AwayResult),
			m.Stage,
			m.Edition,
			orDash(m.City),
		)
	}
	return w.Flush()
}

func orDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func intOrDash(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

