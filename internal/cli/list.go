package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const statementsTitle = "-: MEAL STATEMENTS :-"

var listCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls", "view"},
	Short:   "List all meal records",
	Args:    cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "static", Usage: "print a plain table even on a terminal"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		static, _ := cmd.Flags().GetBool("static")
		return runList(cmd, store, static)
	},
}.Build()

func runList(cmd *cobra.Command, store *meal.Store, static bool) error {
	records, err := loadRecords(cmd, store)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, "no meal records found")
		return nil
	}

	if static || !isTerminal(out) {
		return printStaticList(out, records)
	}

	m := newListModel(records)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

func printStaticList(w io.Writer, records []meal.Record) error {
	_, err := fmt.Fprintf(w, "%s\n%s", Title(statementsTitle), view.FormatTable(records))
	return err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
