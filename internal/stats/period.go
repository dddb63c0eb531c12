package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Flyrell/mealbook/internal/meal"
)

// Granularity selects the period used to bucket records.
type Granularity int

const (
	Month Granularity = iota
	Week
)

func (g Granularity) String() string {
	switch g {
	case Month:
		return "month"
	case Week:
		return "week"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// ParseGranularity accepts "month", "monthly", "week" and "weekly".
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month", "monthly":
		return Month, nil
	case "week", "weekly":
		return Week, nil
	default:
		return Month, fmt.Errorf("unknown period %q (expected month or week)", s)
	}
}

// PeriodSummary holds summed amounts for one calendar month or ISO week.
type PeriodSummary struct {
	Key       string
	Start     time.Time
	DayMeal   int
	NightMeal int
	Total     int
}

// PeriodKey returns the period key and period start for date.
// Months are keyed YYYY-MM; weeks are keyed by ISO year and week, YYYY-Www,
// starting on Monday.
func PeriodKey(date time.Time, g Granularity) (string, time.Time) {
	y, m, d := date.Date()
	if g == Week {
		isoYear, isoWeek := date.ISOWeek()
		offset := (int(date.Weekday()) + 6) % 7
		monday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
		return fmt.Sprintf("%04d-W%02d", isoYear, isoWeek), monday
	}
	return fmt.Sprintf("%04d-%02d", y, int(m)), time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// SummarizeByPeriod groups records by period and sums each group, ordered by
// period ascending. A record without a date fails the whole summary.
func SummarizeByPeriod(records []meal.Record, g Granularity) ([]PeriodSummary, error) {
	buckets := make(map[string]*PeriodSummary)
	for i, r := range records {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("record %d: %w: missing date", i+1, meal.ErrInvalidDate)
		}
		key, start := PeriodKey(r.Date, g)
		ps := buckets[key]
		if ps == nil {
			ps = &PeriodSummary{Key: key, Start: start}
			buckets[key] = ps
		}
		ps.DayMeal += r.DayMeal
		ps.NightMeal += r.NightMeal
		ps.Total += r.Total()
	}

	summaries := make([]PeriodSummary, 0, len(buckets))
	for _, ps := range buckets {
		summaries = append(summaries, *ps)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Start.Before(summaries[j].Start)
	})
	return summaries, nil
}

// SummarizeRaw parses unvalidated rows and summarizes them. An unparseable
// date or amount fails the whole operation instead of dropping the row.
func SummarizeRaw(rows []meal.RawRecord, g Granularity) ([]PeriodSummary, error) {
	records := make([]meal.Record, 0, len(rows))
	for i, rr := range rows {
		r, err := rr.Parse()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return SummarizeByPeriod(records, g)
}
