package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) *meal.Store {
	t.Helper()
	return meal.NewStore(filepath.Join(t.TempDir(), "database.csv"))
}

func seedStore(t *testing.T, store *meal.Store, rows ...[4]string) {
	t.Helper()
	for _, r := range rows {
		rec, err := meal.ParseInput(r[0], r[1], r[2], r[3], fixedNow())
		require.NoError(t, err)
		require.NoError(t, store.Append(rec))
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	return cmd, stdout
}

// promptAnswers returns a PromptFunc that answers by prompt text and fails
// the test on unexpected prompts.
func promptAnswers(t *testing.T, answers map[string]string) PromptFunc {
	return func(prompt string) (string, error) {
		v, ok := answers[prompt]
		if !ok {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		return v, nil
	}
}

// scriptedSelect returns a SelectFunc that replays choices in order.
func scriptedSelect(t *testing.T, choices ...int) SelectFunc {
	i := 0
	return func(title string, options []string) (int, error) {
		if i >= len(choices) {
			t.Fatalf("unexpected select %q", title)
		}
		c := choices[i]
		i++
		return c, nil
	}
}

// appendRaw writes text directly to the end of the store file.
func appendRaw(t *testing.T, store *meal.Store, text string) {
	t.Helper()
	f, err := os.OpenFile(store.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString(text)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

// testStoreDir pairs a seeded store with a scratch directory for output files.
type testStoreDir struct {
	store *meal.Store
	dir   string
}
