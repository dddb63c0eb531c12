package stats

import (
	"math"
	"sort"

	"github.com/Flyrell/mealbook/internal/meal"
)

// Column names used in descriptive statistics output.
const (
	ColumnDay   = meal.ColumnDayMeal
	ColumnNight = meal.ColumnNightMeal
	ColumnTotal = "Total_Meal"
)

// Column holds descriptive statistics for one numeric field.
// For an empty input Count is 0 and every other field is NaN.
type Column struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Description holds descriptive statistics for day, night and total amounts.
type Description struct {
	Columns []Column
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max per amount column. It never fails.
func Describe(records []meal.Record) Description {
	day := make([]float64, len(records))
	night := make([]float64, len(records))
	total := make([]float64, len(records))
	for i, r := range records {
		day[i] = float64(r.DayMeal)
		night[i] = float64(r.NightMeal)
		total[i] = float64(r.Total())
	}
	return Description{
		Columns: []Column{
			describeColumn(ColumnDay, day),
			describeColumn(ColumnNight, night),
			describeColumn(ColumnTotal, total),
		},
	}
}

func describeColumn(name string, values []float64) Column {
	c := Column{Name: name, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		c.Mean, c.Std, c.Min, c.Q25, c.Q50, c.Q75, c.Max = nan, nan, nan, nan, nan, nan, nan
		return c
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	c.Mean = mean(values)
	c.Std = sampleStdDev(values, c.Mean)
	c.Min = sorted[0]
	c.Q25 = quantile(sorted, 0.25)
	c.Q50 = quantile(sorted, 0.50)
	c.Q75 = quantile(sorted, 0.75)
	c.Max = sorted[len(sorted)-1]
	return c
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev uses the n-1 denominator; a single value yields NaN.
func sampleStdDev(values []float64, m float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// quantile linearly interpolates between closest ranks of sorted values.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
