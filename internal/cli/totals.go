package cli

import (
	"fmt"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/Flyrell/mealbook/internal/view"
	"github.com/spf13/cobra"
)

var totalsCmd = LeafCommand{
	Use:   "totals",
	Short: "Show total day, night and overall meal costs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runTotals(cmd, store)
	},
}.Build()

func runTotals(cmd *cobra.Command, store *meal.Store) error {
	records, err := loadRecords(cmd, store)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), view.FormatTotals(stats.SumTotals(records)))
	return err
}
