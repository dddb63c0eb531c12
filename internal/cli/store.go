package cli

import (
	"os"

	"github.com/Flyrell/mealbook/internal/config"
	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/spf13/cobra"
)

// getContextPaths returns the user's home directory and the current working directory.
func getContextPaths() (homeDir, workDir string, err error) {
	homeDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}
	workDir, err = os.Getwd()
	if err != nil {
		return "", "", err
	}
	return homeDir, workDir, nil
}

// resolveConfig loads .env from the working directory and resolves the
// store path from the --store flag, environment, config file or default.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	homeDir, workDir, err := getContextPaths()
	if err != nil {
		return config.Config{}, err
	}
	if err := config.LoadDotEnv(workDir); err != nil {
		return config.Config{}, err
	}

	storeFlag, _ := cmd.Flags().GetString("store")
	cfg, err := config.Resolve(homeDir, storeFlag)
	if err != nil {
		return config.Config{}, err
	}

	loggerFrom(cmd).Debug("resolved meal store", "path", cfg.StorePath, "source", string(cfg.Source))
	return cfg, nil
}

// openStore returns the meal store selected by the resolved configuration.
func openStore(cmd *cobra.Command) (*meal.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return meal.NewStore(cfg.StorePath), nil
}

// loadRecords loads all records and logs how many were read.
func loadRecords(cmd *cobra.Command, store *meal.Store) ([]meal.Record, error) {
	records, err := store.LoadAll()
	if err != nil {
		return nil, err
	}
	loggerFrom(cmd).Debug("loaded meal records", "path", store.Path(), "count", len(records))
	return records, nil
}
