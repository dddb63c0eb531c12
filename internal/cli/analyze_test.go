package cli

import (
	"testing"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store,
		[4]string{"2024-01-01", "50", "70", "office"},
		[4]string{"2024-01-15", "40", "60", "home"},
		[4]string{"2024-01-20", "5", "5", "office"},
	)
	cmd, stdout := newTestCmd()

	require.NoError(t, runAnalyze(cmd, store, true, 10))

	out := stdout.String()
	assert.Contains(t, out, "Basic Statistics:")
	assert.Contains(t, out, "Total_Meal")
	assert.Contains(t, out, "Day with Maximum Total Meal Cost: 2024-01-01 - 120")
	assert.Contains(t, out, "Day with Minimum Total Meal Cost: 2024-01-20 - 10")
	assert.Contains(t, out, "Meal Description Distribution")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "Day Meal vs Night Meal Trends")
	assert.Contains(t, out, "Total Meals per Day")
}

func TestAnalyzeWithoutCharts(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store, [4]string{"2024-01-01", "50", "70", "office"})
	cmd, stdout := newTestCmd()

	require.NoError(t, runAnalyze(cmd, store, false, 10))

	out := stdout.String()
	assert.Contains(t, out, "Day with Maximum Total Meal Cost")
	assert.NotContains(t, out, "Meal Description Distribution")
}

func TestAnalyzeEmptyStore(t *testing.T) {
	store := newTestStore(t)
	cmd, stdout := newTestCmd()

	err := runAnalyze(cmd, store, true, 10)

	assert.ErrorIs(t, err, meal.ErrEmptyInput)
	assert.Contains(t, stdout.String(), "count")
}
