package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefault(t *testing.T) {
	t.Setenv(EnvStore, "")
	home := t.TempDir()

	cfg, err := Resolve(home, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".mealbook", "database.csv"), cfg.StorePath)
	assert.Equal(t, SourceDefault, cfg.Source)
}

func TestResolveFlagWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvStore, "/from/env.csv")
	require.NoError(t, WriteFile(home, File{Store: "/from/file.csv"}))

	cfg, err := Resolve(home, "/from/flag.csv")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.csv", cfg.StorePath)
	assert.Equal(t, SourceFlag, cfg.Source)
}

func TestResolveEnvOverFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvStore, "/from/env.csv")
	require.NoError(t, WriteFile(home, File{Store: "/from/file.csv"}))

	cfg, err := Resolve(home, "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.csv", cfg.StorePath)
	assert.Equal(t, SourceEnv, cfg.Source)
}

func TestResolveFile(t *testing.T) {
	t.Setenv(EnvStore, "")
	home := t.TempDir()
	require.NoError(t, WriteFile(home, File{Store: "~/meals/db.csv"}))

	cfg, err := Resolve(home, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "meals", "db.csv"), cfg.StorePath)
	assert.Equal(t, SourceFile, cfg.Source)
}

func TestResolveMalformedFile(t *testing.T) {
	t.Setenv(EnvStore, "")
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(FilePath(home), []byte("store: [unterminated"), 0644))

	_, err := Resolve(home, "")
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	f, err := ReadFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv(EnvStore, "")
	require.NoError(t, os.Unsetenv(EnvStore))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvStore+"=/dotenv/meals.csv\n"), 0644))

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "/dotenv/meals.csv", os.Getenv(EnvStore))
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(t.TempDir()))
}
