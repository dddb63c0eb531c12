// Package stats computes totals, extremes, descriptive statistics and period
// summaries over loaded meal records. Nothing here performs I/O.
package stats

import (
	"sort"
	"strings"

	"github.com/Flyrell/mealbook/internal/meal"
)

// Totals holds summed amounts across a set of records.
type Totals struct {
	Day   int
	Night int
	Grand int
}

// Add returns the element-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Day:   t.Day + o.Day,
		Night: t.Night + o.Night,
		Grand: t.Grand + o.Grand,
	}
}

// SumTotals sums day, night and combined amounts. Empty input yields zeros.
func SumTotals(records []meal.Record) Totals {
	var t Totals
	for _, r := range records {
		t.Day += r.DayMeal
		t.Night += r.NightMeal
	}
	t.Grand = t.Day + t.Night
	return t
}

// Extremes returns the records with the highest and lowest total. Ties go to
// the earliest record.
func Extremes(records []meal.Record) (highest, lowest meal.Record, err error) {
	if len(records) == 0 {
		return meal.Record{}, meal.Record{}, meal.ErrEmptyInput
	}

	highest, lowest = records[0], records[0]
	for _, r := range records[1:] {
		if r.Total() > highest.Total() {
			highest = r
		}
		if r.Total() < lowest.Total() {
			lowest = r
		}
	}
	return highest, lowest, nil
}

// Count is the number of records sharing a description.
type Count struct {
	Label string
	N     int
}

// DescriptionCounts counts records per description, most frequent first.
// Equal counts keep first-appearance order. Records without a description
// are not counted.
func DescriptionCounts(records []meal.Record) []Count {
	idx := make(map[string]int)
	var counts []Count
	for _, r := range records {
		if strings.TrimSpace(r.Description) == "" {
			continue
		}
		i, ok := idx[r.Description]
		if !ok {
			idx[r.Description] = len(counts)
			counts = append(counts, Count{Label: r.Description})
			i = len(counts) - 1
		}
		counts[i].N++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	return counts
}
