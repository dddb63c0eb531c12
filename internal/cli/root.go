package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mealbook",
	Short: "A personal meal-expense tracker",
	Long: `mealbook records what you spend on day and night meals in a CSV file,
lists and analyzes the records, summarizes them by month or ISO week and
exports them to CSV, Excel, PDF or SQLite.

Run without a command to open the interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), verbose)))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return menuCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("store", "s", "", "path to the meal store CSV (default: $MEALBOOK_STORE, ~/.mealbook/config.yaml or ~/.mealbook/database.csv)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	registerFlagCompletions()
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln(Error("error:"), err)
	}
	return err
}
