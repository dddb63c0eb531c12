package cli

import (
	"fmt"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/Flyrell/mealbook/internal/view"
	"github.com/spf13/cobra"
)

const promptPeriod = "Generate summary for"

var periodOptions = []string{"Monthly", "Weekly"}

var summaryCmd = LeafCommand{
	Use:   "summary",
	Short: "Summarize meal costs by month or ISO week",
	Example: `  mealbook summary --period month
  mealbook summary --period week`,
	Args: cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "period", Shorthand: "p", Usage: "summary period: month or week (prompted if omitted)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		period, _ := cmd.Flags().GetString("period")
		return runSummary(cmd, store, period, NewPromptKit())
	},
}.Build()

func runSummary(cmd *cobra.Command, store *meal.Store, periodFlag string, pk PromptKit) error {
	g, err := resolveGranularity(periodFlag, pk)
	if err != nil {
		return err
	}

	// Rows are parsed here rather than through LoadAll so a bad date is
	// reported as an invalid date for the summary.
	rows, err := store.LoadRaw()
	if err != nil {
		return err
	}

	summaries, err := stats.SummarizeRaw(rows, g)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(out, "no meal records found")
		return nil
	}

	title := "Monthly Summary:"
	if g == stats.Week {
		title = "Weekly Summary:"
	}
	_, err = fmt.Fprint(out, view.FormatSummary(title, summaries))
	return err
}

func resolveGranularity(periodFlag string, pk PromptKit) (stats.Granularity, error) {
	if periodFlag != "" {
		return stats.ParseGranularity(periodFlag)
	}
	idx, err := pk.Select(promptPeriod, periodOptions)
	if err != nil {
		return stats.Month, err
	}
	if idx == 1 {
		return stats.Week, nil
	}
	return stats.Month, nil
}
