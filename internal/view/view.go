// Package view renders meal records, totals, statistics and period summaries
// as column-aligned text.
package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00"))
)

const (
	dateColWidth   = 10
	amountColWidth = 10
	periodColWidth = 8
)

// FormatTable renders records one per line under a header row.
func FormatTable(records []meal.Record) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(strings.Join([]string{
		padRight(meal.ColumnDate, dateColWidth),
		padLeft(meal.ColumnDayMeal, amountColWidth),
		padLeft(meal.ColumnNightMeal, amountColWidth),
		padLeft("Total", amountColWidth),
		meal.ColumnDescription,
	}, "  ")))
	b.WriteString("\n")
	b.WriteString(separator(dateColWidth + 3*amountColWidth + 4*2 + len(meal.ColumnDescription)))
	b.WriteString("\n")

	for _, r := range records {
		b.WriteString(TableRow(r))
		b.WriteString("\n")
	}
	return b.String()
}

// TableRow renders a single record aligned with the FormatTable header.
func TableRow(r meal.Record) string {
	return strings.TrimRight(strings.Join([]string{
		padRight(r.DateString(), dateColWidth),
		padLeft(strconv.Itoa(r.DayMeal), amountColWidth),
		padLeft(strconv.Itoa(r.NightMeal), amountColWidth),
		padLeft(strconv.Itoa(r.Total()), amountColWidth),
		r.Description,
	}, "  "), " ")
}

// FormatSummary renders period summaries under a title and header row.
func FormatSummary(title string, summaries []stats.PeriodSummary) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(strings.Join([]string{
		padRight("Period", periodColWidth),
		padLeft(meal.ColumnDayMeal, amountColWidth),
		padLeft(meal.ColumnNightMeal, amountColWidth),
		padLeft(stats.ColumnTotal, amountColWidth),
	}, "  ")))
	b.WriteString("\n")
	b.WriteString(separator(periodColWidth + 3*amountColWidth + 3*2))
	b.WriteString("\n")

	for _, s := range summaries {
		b.WriteString(strings.Join([]string{
			padRight(s.Key, periodColWidth),
			padLeft(strconv.Itoa(s.DayMeal), amountColWidth),
			padLeft(strconv.Itoa(s.NightMeal), amountColWidth),
			padLeft(strconv.Itoa(s.Total), amountColWidth),
		}, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTotals renders day, night and grand totals.
func FormatTotals(t stats.Totals) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("-: TOTAL MEAL COSTS :-"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Day Meal Cost: %d\n", t.Day)
	fmt.Fprintf(&b, "Total Night Meal Cost: %d\n", t.Night)
	fmt.Fprintf(&b, "Total Meal Cost: %d\n", t.Grand)
	return b.String()
}

// FormatExtremes renders the highest and lowest total records.
func FormatExtremes(highest, lowest meal.Record) string {
	return fmt.Sprintf("Day with Maximum Total Meal Cost: %s - %d\nDay with Minimum Total Meal Cost: %s - %d\n",
		highest.DateString(), highest.Total(),
		lowest.DateString(), lowest.Total(),
	)
}

var describeRows = []struct {
	label string
	value func(stats.Column) string
}{
	{"count", func(c stats.Column) string { return strconv.Itoa(c.Count) }},
	{"mean", func(c stats.Column) string { return formatFloat(c.Mean) }},
	{"std", func(c stats.Column) string { return formatFloat(c.Std) }},
	{"min", func(c stats.Column) string { return formatFloat(c.Min) }},
	{"25%", func(c stats.Column) string { return formatFloat(c.Q25) }},
	{"50%", func(c stats.Column) string { return formatFloat(c.Q50) }},
	{"75%", func(c stats.Column) string { return formatFloat(c.Q75) }},
	{"max", func(c stats.Column) string { return formatFloat(c.Max) }},
}

// FormatDescription renders descriptive statistics with one column per field
// and one row per statistic.
func FormatDescription(d stats.Description) string {
	const labelWidth = 6
	width := amountColWidth
	for _, c := range d.Columns {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}

	var b strings.Builder
	header := []string{padRight("", labelWidth)}
	for _, c := range d.Columns {
		header = append(header, padLeft(c.Name, width))
	}
	b.WriteString(headerStyle.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	for _, row := range describeRows {
		cells := []string{padRight(row.label, labelWidth)}
		for _, c := range d.Columns {
			cells = append(cells, padLeft(row.value(c), width))
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func separator(width int) string {
	return strings.Repeat("-", width)
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
