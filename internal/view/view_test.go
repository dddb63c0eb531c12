package view

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(date string, day, night int, desc string) meal.Record {
	d, _ := time.Parse(meal.DateLayout, date)
	return meal.Record{Date: d, DayMeal: day, NightMeal: night, Description: desc}
}

func TestFormatTable(t *testing.T) {
	out := FormatTable([]meal.Record{
		rec("2024-01-01", 50, 70, "office"),
		rec("2024-01-15", 40, 60, ""),
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Date")
	assert.Contains(t, lines[0], "Day_Meal")
	assert.Contains(t, lines[0], "Night_Meal")
	assert.Contains(t, lines[0], "Description")
	assert.True(t, strings.HasPrefix(lines[1], "---"))

	fields := strings.Fields(lines[2])
	assert.Equal(t, []string{"2024-01-01", "50", "70", "120", "office"}, fields)
	assert.Equal(t, []string{"2024-01-15", "40", "60", "100"}, strings.Fields(lines[3]))
}

func TestFormatTableAligned(t *testing.T) {
	out := FormatTable([]meal.Record{
		rec("2024-01-01", 5, 1000, "a"),
		rec("2024-01-02", 12345, 7, "b"),
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, strings.Index(lines[2], "a"), strings.Index(lines[3], "b"))
}

func TestFormatTableEmpty(t *testing.T) {
	out := FormatTable(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestFormatSummary(t *testing.T) {
	out := FormatSummary("Monthly Summary:", []stats.PeriodSummary{
		{Key: "2024-01", DayMeal: 90, NightMeal: 130, Total: 220},
		{Key: "2024-02", DayMeal: 1, NightMeal: 2, Total: 3},
	})

	assert.Contains(t, out, "Monthly Summary:")
	assert.Contains(t, out, "Period")
	assert.Contains(t, out, "Total_Meal")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"2024-01", "90", "130", "220"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2024-02", "1", "2", "3"}, strings.Fields(lines[4]))
}

func TestFormatTotals(t *testing.T) {
	out := FormatTotals(stats.Totals{Day: 90, Night: 130, Grand: 220})

	assert.Contains(t, out, "Total Day Meal Cost: 90")
	assert.Contains(t, out, "Total Night Meal Cost: 130")
	assert.Contains(t, out, "Total Meal Cost: 220")
}

func TestFormatExtremes(t *testing.T) {
	out := FormatExtremes(rec("2024-01-01", 50, 70, ""), rec("2024-01-15", 1, 2, ""))

	assert.Contains(t, out, "Day with Maximum Total Meal Cost: 2024-01-01 - 120")
	assert.Contains(t, out, "Day with Minimum Total Meal Cost: 2024-01-15 - 3")
}

func TestFormatDescription(t *testing.T) {
	d := stats.Description{Columns: []stats.Column{
		{Name: "Day_Meal", Count: 2, Mean: 1.5, Std: math.NaN(), Min: 1, Q25: 1.25, Q50: 1.5, Q75: 1.75, Max: 2},
	}}

	out := FormatDescription(d)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "Day_Meal")
	assert.Equal(t, []string{"count", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"mean", "1.50"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"std", "NaN"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"25%", "1.25"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"max", "2.00"}, strings.Fields(lines[8]))
}
