package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Flyrell/mealbook/internal/config"
	"github.com/spf13/cobra"
)

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the resolved meal store path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runConfigShow(cmd, cfg)
	},
}.Build()

var configSetStoreCmd = LeafCommand{
	Use:   "set-store <path>",
	Short: "Save the default meal store path to ~/.mealbook/config.yaml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSetStore(cmd, homeDir, args[0])
	},
}.Build()

var configCmd = GroupCommand{
	Use:         "config",
	Short:       "Inspect or change where meal records are stored",
	Subcommands: []*cobra.Command{configShowCmd, configSetStoreCmd},
}.Build()

func runConfigShow(cmd *cobra.Command, cfg config.Config) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "store: %s %s\n", Primary(cfg.StorePath), Silent("("+string(cfg.Source)+")"))
	return err
}

func runConfigSetStore(cmd *cobra.Command, homeDir, path string) error {
	if !filepath.IsAbs(path) && path != "~" && !hasHomePrefix(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		path = abs
	}

	f, err := config.ReadFile(homeDir)
	if err != nil {
		return err
	}
	f.Store = path
	if err := config.WriteFile(homeDir, f); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "default store set to %s\n", Primary(path))
	return nil
}

func hasHomePrefix(p string) bool {
	return len(p) >= 2 && p[:2] == "~/"
}
