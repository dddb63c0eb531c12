package cli

import (
	"errors"
	"testing"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWithFlags(t *testing.T) {
	store := newTestStore(t)
	cmd, stdout := newTestCmd()

	in := addInput{date: "2024-01-01", day: "50", night: "70", description: "office", descGiven: true}
	err := runAdd(cmd, store, in, PromptKit{}, fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "added 2024-01-01")
	assert.Contains(t, stdout.String(), "total 120")

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 120, records[0].Total())
	assert.Equal(t, "office", records[0].Description)
}

func TestAddTodayResolvesToCurrentDate(t *testing.T) {
	store := newTestStore(t)
	cmd, _ := newTestCmd()

	in := addInput{date: "today", day: "1", night: "2", descGiven: true}
	require.NoError(t, runAdd(cmd, store, in, PromptKit{}, fixedNow))

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-06-15", records[0].DateString())
}

func TestAddPromptsForMissingValues(t *testing.T) {
	store := newTestStore(t)
	cmd, _ := newTestCmd()

	pk := PromptKit{Prompt: promptAnswers(t, map[string]string{
		promptDate:        "2024-02-29",
		promptDayMeal:     "30",
		promptNightMeal:   "45",
		promptDescription: "canteen",
	})}

	require.NoError(t, runAdd(cmd, store, addInput{}, pk, fixedNow))

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-02-29", records[0].DateString())
	assert.Equal(t, 30, records[0].DayMeal)
	assert.Equal(t, 45, records[0].NightMeal)
	assert.Equal(t, "canteen", records[0].Description)
}

func TestAddEmptyDescriptionGivenSkipsPrompt(t *testing.T) {
	store := newTestStore(t)
	cmd, _ := newTestCmd()

	in := addInput{date: "2024-01-01", day: "1", night: "1", descGiven: true}
	require.NoError(t, runAdd(cmd, store, in, PromptKit{Prompt: promptAnswers(t, nil)}, fixedNow))

	records, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "", records[0].Description)
}

func TestAddInvalidAmountWritesNothing(t *testing.T) {
	store := newTestStore(t)
	cmd, _ := newTestCmd()

	in := addInput{date: "2024-01-01", day: "lots", night: "1", descGiven: true}
	err := runAdd(cmd, store, in, PromptKit{}, fixedNow)

	var fe *meal.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, meal.ColumnDayMeal, fe.Field)

	ok, err := store.Exists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddInvalidDate(t *testing.T) {
	store := newTestStore(t)
	cmd, _ := newTestCmd()

	in := addInput{date: "yesterday", day: "1", night: "1", descGiven: true}
	err := runAdd(cmd, store, in, PromptKit{}, fixedNow)

	assert.ErrorIs(t, err, meal.ErrInvalidDate)
}

func TestAddPromptError(t *testing.T) {
	store := newTestStore(t)
	cmd, _ := newTestCmd()

	boom := errors.New("boom")
	pk := PromptKit{Prompt: func(string) (string, error) { return "", boom }}

	err := runAdd(cmd, store, addInput{}, pk, fixedNow)
	assert.ErrorIs(t, err, boom)
}

func TestAddCommandFlags(t *testing.T) {
	for _, name := range []string{"date", "day", "night", "description"} {
		assert.NotNil(t, addCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "d", addCmd.Flags().Lookup("date").Shorthand)
}
