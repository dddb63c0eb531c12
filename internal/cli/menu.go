package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/spf13/cobra"
)

const menuTitle = "-: MEAL MANAGEMENT SYSTEM MENU :-"

// menuItem is one entry of the interactive menu. A nil run exits the loop.
type menuItem struct {
	label string
	run   func(cmd *cobra.Command, store *meal.Store, pk PromptKit, nowFn func() time.Time) error
}

var menuItems = []menuItem{
	{"Add Meal Record", func(cmd *cobra.Command, store *meal.Store, pk PromptKit, nowFn func() time.Time) error {
		return runAdd(cmd, store, addInput{}, pk, nowFn)
	}},
	{"View Meal Records", func(cmd *cobra.Command, store *meal.Store, _ PromptKit, _ func() time.Time) error {
		return runList(cmd, store, true)
	}},
	{"Analyze Data", func(cmd *cobra.Command, store *meal.Store, _ PromptKit, _ func() time.Time) error {
		return runAnalyze(cmd, store, true, defaultChartWidth)
	}},
	{"Show Total Costs", func(cmd *cobra.Command, store *meal.Store, _ PromptKit, _ func() time.Time) error {
		return runTotals(cmd, store)
	}},
	{"Export Data", func(cmd *cobra.Command, store *meal.Store, pk PromptKit, _ func() time.Time) error {
		return runExport(cmd, store, "", "", pk)
	}},
	{"Generate Summaries", func(cmd *cobra.Command, store *meal.Store, pk PromptKit, _ func() time.Time) error {
		return runSummary(cmd, store, "", pk)
	}},
	{"Exit", nil},
}

var menuCmd = LeafCommand{
	Use:   "menu",
	Short: "Open the interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runMenu(cmd, store, NewPromptKit(), time.Now)
	},
}.Build()

// runMenu loops until the user picks Exit or aborts the menu prompt. Errors
// from individual actions are printed and the loop continues.
func runMenu(cmd *cobra.Command, store *meal.Store, pk PromptKit, nowFn func() time.Time) error {
	labels := make([]string, len(menuItems))
	for i, item := range menuItems {
		labels[i] = item.label
	}

	out := cmd.OutOrStdout()
	log := loggerFrom(cmd)

	for {
		idx, err := pk.Select(menuTitle, labels)
		if isAborted(err) {
			_, _ = fmt.Fprintln(out, "Exiting... Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(menuItems) {
			_, _ = fmt.Fprintln(out, Warning("Invalid choice. Please try again."))
			continue
		}

		item := menuItems[idx]
		if item.run == nil {
			_, _ = fmt.Fprintln(out, "Exiting... Goodbye!")
			return nil
		}

		if err := item.run(cmd, store, pk, nowFn); err != nil {
			if isAborted(err) {
				continue
			}
			log.Warn("menu action failed", "action", item.label, "err", err)
			_, _ = fmt.Fprintf(out, "%s %v\n", Error("Error:"), err)
		}
		_, _ = fmt.Fprintln(out)
	}
}
