package cli

import (
	"fmt"

	"github.com/Flyrell/mealbook/internal/chart"
	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/Flyrell/mealbook/internal/view"
	"github.com/spf13/cobra"
)

const defaultChartWidth = 40

var analyzeCmd = LeafCommand{
	Use:   "analyze",
	Short: "Show statistics, extremes and charts",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "no-charts", Usage: "skip the terminal charts"},
	},
	IntFlags: []IntFlag{
		{Name: "width", Usage: "maximum bar width of the charts", Default: defaultChartWidth},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		noCharts, _ := cmd.Flags().GetBool("no-charts")
		width, _ := cmd.Flags().GetInt("width")
		return runAnalyze(cmd, store, !noCharts, width)
	},
}.Build()

func runAnalyze(cmd *cobra.Command, store *meal.Store, charts bool, width int) error {
	records, err := loadRecords(cmd, store)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n\nBasic Statistics:\n%s\n", Title("-: MEAL DATA ANALYSIS :-"), view.FormatDescription(stats.Describe(records)))

	highest, lowest, err := stats.Extremes(records)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	_, _ = fmt.Fprint(w, view.FormatExtremes(highest, lowest))

	if !charts {
		return nil
	}

	_, _ = fmt.Fprintf(w, "\n%s\n%s\n%s",
		chart.Distribution(stats.DescriptionCounts(records), width),
		chart.Trend(records, width),
		chart.Totals(records, width),
	)
	return nil
}
