// Package config resolves the meal store location.
//
// The store path is taken from, in order: the --store flag, the
// MEALBOOK_STORE environment variable (a .env file in the working directory
// is loaded first), the "store" key of ~/.mealbook/config.yaml, and finally
// ~/.mealbook/database.csv.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvStore is the environment variable that overrides the store path.
const EnvStore = "MEALBOOK_STORE"

// Source names where the resolved store path came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "config file"
	SourceDefault Source = "default"
)

// Config is the resolved runtime configuration.
type Config struct {
	StorePath string
	Source    Source
}

// File is the on-disk YAML configuration.
type File struct {
	Store string `yaml:"store"`
}

// Dir returns the mealbook directory under homeDir.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".mealbook")
}

// FilePath returns the path of the YAML configuration file.
func FilePath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.yaml")
}

// DefaultStorePath returns the store path used when nothing else is set.
func DefaultStorePath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "database.csv")
}

// ReadFile reads the YAML configuration. A missing file yields a zero File.
func ReadFile(homeDir string) (File, error) {
	data, err := os.ReadFile(FilePath(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return File{}, nil
	}
	if err != nil {
		return File{}, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse %s: %w", FilePath(homeDir), err)
	}
	return f, nil
}

// WriteFile writes the YAML configuration, creating the directory if needed.
func WriteFile(homeDir string, f File) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(FilePath(homeDir), data, 0644)
}

// LoadDotEnv loads a .env file from dir into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Resolve determines the store path. flagValue is the --store flag and
// takes precedence when non-empty.
func Resolve(homeDir, flagValue string) (Config, error) {
	if p := strings.TrimSpace(flagValue); p != "" {
		return Config{StorePath: expandHome(p, homeDir), Source: SourceFlag}, nil
	}

	if p := strings.TrimSpace(os.Getenv(EnvStore)); p != "" {
		return Config{StorePath: expandHome(p, homeDir), Source: SourceEnv}, nil
	}

	f, err := ReadFile(homeDir)
	if err != nil {
		return Config{}, err
	}
	if p := strings.TrimSpace(f.Store); p != "" {
		return Config{StorePath: expandHome(p, homeDir), Source: SourceFile}, nil
	}

	return Config{StorePath: DefaultStorePath(homeDir), Source: SourceDefault}, nil
}

func expandHome(p, homeDir string) string {
	if p == "~" {
		return homeDir
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir, p[2:])
	}
	return p
}
