package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/spf13/cobra"
)

const (
	promptDate        = "Enter date (YYYY-MM-DD or 'today')"
	promptDayMeal     = "Enter day meal amount"
	promptNightMeal   = "Enter night meal amount"
	promptDescription = "Enter description (if any)"
)

// addInput holds raw values for a new record; empty fields are prompted for.
type addInput struct {
	date        string
	day         string
	night       string
	description string
	// descGiven distinguishes an intentionally empty description from a
	// missing one.
	descGiven bool
}

var addCmd = LeafCommand{
	Use:   "add [description]",
	Short: "Add a meal record",
	Example: `  mealbook add --date today --day 50 --night 70 office
  mealbook add`,
	Args: cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "date of the meals (YYYY-MM-DD or 'today')"},
		{Name: "day", Usage: "day meal amount"},
		{Name: "night", Usage: "night meal amount"},
		{Name: "description", Usage: "free-text label"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		in := addInput{}
		in.date, _ = cmd.Flags().GetString("date")
		in.day, _ = cmd.Flags().GetString("day")
		in.night, _ = cmd.Flags().GetString("night")
		in.description, _ = cmd.Flags().GetString("description")
		in.descGiven = cmd.Flags().Changed("description")
		if len(args) > 0 {
			in.description = args[0]
			in.descGiven = true
		}

		return runAdd(cmd, store, in, NewPromptKit(), time.Now)
	},
}.Build()

func runAdd(cmd *cobra.Command, store *meal.Store, in addInput, pk PromptKit, nowFn func() time.Time) error {
	var err error
	if in.date == "" {
		if in.date, err = pk.Prompt(promptDate); err != nil {
			return err
		}
	}
	if in.day == "" {
		if in.day, err = pk.Prompt(promptDayMeal); err != nil {
			return err
		}
	}
	if in.night == "" {
		if in.night, err = pk.Prompt(promptNightMeal); err != nil {
			return err
		}
	}
	if !in.descGiven {
		if in.description, err = pk.Prompt(promptDescription); err != nil {
			return err
		}
	}

	r, err := meal.ParseInput(in.date, in.day, in.night, in.description, nowFn())
	if err != nil {
		return err
	}

	if err := store.Append(r); err != nil {
		return err
	}
	loggerFrom(cmd).Debug("appended meal record", "path", store.Path(), "date", r.DateString())

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s: day %s, night %s, total %s\n",
		Primary(r.DateString()),
		Text(fmt.Sprint(r.DayMeal)),
		Text(fmt.Sprint(r.NightMeal)),
		Primary(fmt.Sprint(r.Total())),
	)
	return nil
}
