package stats

import (
	"testing"
	"time"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeByMonth(t *testing.T) {
	records := []meal.Record{
		rec("2024-01-01", 50, 70, ""),
		rec("2024-01-15", 40, 60, ""),
	}

	got, err := SummarizeByPeriod(records, Month)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01", got[0].Key)
	assert.Equal(t, 90, got[0].DayMeal)
	assert.Equal(t, 130, got[0].NightMeal)
	assert.Equal(t, 220, got[0].Total)
}

func TestSummarizeByMonthOrdersAscending(t *testing.T) {
	records := []meal.Record{
		rec("2024-03-01", 1, 0, ""),
		rec("2023-12-31", 2, 0, ""),
		rec("2024-01-10", 3, 0, ""),
		rec("2024-03-20", 4, 0, ""),
	}

	got, err := SummarizeByPeriod(records, Month)
	require.NoError(t, err)

	keys := make([]string, len(got))
	for i, s := range got {
		keys[i] = s.Key
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-03"}, keys)
	assert.Equal(t, 5, got[2].DayMeal)
}

func TestSummarizeByWeekUsesISOWeeks(t *testing.T) {
	records := []meal.Record{
		// Sunday 2023-12-31 belongs to ISO 2023-W52.
		rec("2023-12-31", 10, 0, ""),
		// Monday 2024-01-01 starts ISO 2024-W01.
		rec("2024-01-01", 20, 0, ""),
		rec("2024-01-07", 30, 0, ""),
		rec("2024-01-08", 40, 0, ""),
	}

	got, err := SummarizeByPeriod(records, Week)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "2023-W52", got[0].Key)
	assert.Equal(t, "2024-W01", got[1].Key)
	assert.Equal(t, 50, got[1].Total)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got[1].Start)
	assert.Equal(t, "2024-W02", got[2].Key)
}

func TestSummarizeByWeekISOYearBoundary(t *testing.T) {
	// 2020-12-31 (Thursday) is in ISO 2020-W53; 2021-01-03 (Sunday) too.
	got, err := SummarizeByPeriod([]meal.Record{
		rec("2021-01-03", 1, 1, ""),
		rec("2020-12-31", 1, 1, ""),
	}, Week)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2020-W53", got[0].Key)
	assert.Equal(t, 4, got[0].Total)
}

func TestSummarizeCompleteness(t *testing.T) {
	records := sampleRecords()
	grand := SumTotals(records).Grand

	for _, g := range []Granularity{Month, Week} {
		got, err := SummarizeByPeriod(records, g)
		require.NoError(t, err)

		sum := 0
		for _, s := range got {
			assert.Equal(t, s.DayMeal+s.NightMeal, s.Total)
			sum += s.Total
		}
		assert.Equal(t, grand, sum, g.String())
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got, err := SummarizeByPeriod(nil, Month)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummarizeMissingDate(t *testing.T) {
	_, err := SummarizeByPeriod([]meal.Record{{DayMeal: 1}}, Month)
	assert.ErrorIs(t, err, meal.ErrInvalidDate)
}

func TestSummarizeRawInvalidDate(t *testing.T) {
	rows := []meal.RawRecord{
		{Date: "2024-01-01", DayMeal: "1", NightMeal: "2"},
		{Date: "not-a-date", DayMeal: "1", NightMeal: "2"},
	}

	_, err := SummarizeRaw(rows, Month)
	require.Error(t, err)
	assert.ErrorIs(t, err, meal.ErrInvalidDate)
	assert.Contains(t, err.Error(), "record 2")
}

func TestSummarizeRaw(t *testing.T) {
	rows := []meal.RawRecord{
		{Date: "2024-01-01", DayMeal: "50", NightMeal: "70"},
		{Date: "2024-01-15", DayMeal: "40", NightMeal: "60"},
	}

	got, err := SummarizeRaw(rows, Month)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 220, got[0].Total)
}

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		in   string
		want Granularity
	}{
		{"month", Month},
		{"Monthly", Month},
		{" week ", Week},
		{"WEEKLY", Week},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGranularity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseGranularity("daily")
	assert.Error(t, err)
}
