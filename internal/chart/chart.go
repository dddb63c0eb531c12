// Package chart draws meal data as horizontal bar charts for the terminal.
package chart

import (
	"fmt"
	"strings"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

const (
	barChar      = "█"
	noData       = "(no data to chart)\n"
	defaultWidth = 40
	noLabel      = "(none)"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	nightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
)

// Distribution draws one bar per description with its share of all records.
func Distribution(counts []stats.Count, width int) string {
	total := 0
	maxN := 0
	labelWidth := 0
	for _, c := range counts {
		total += c.N
		if c.N > maxN {
			maxN = c.N
		}
		if w := lipgloss.Width(label(c.Label)); w > labelWidth {
			labelWidth = w
		}
	}
	if total == 0 {
		return title("Meal Description Distribution") + noData
	}

	var b strings.Builder
	b.WriteString(title("Meal Description Distribution"))
	for _, c := range counts {
		pct := float64(c.N) * 100 / float64(total)
		fmt.Fprintf(&b, "%s  %s %.1f%%\n",
			pad(label(c.Label), labelWidth),
			totalStyle.Render(bar(c.N, maxN, barWidth(width))),
			pct,
		)
	}
	return b.String()
}

// Trend draws day and night amounts for each record as paired bars.
func Trend(records []meal.Record, width int) string {
	if len(records) == 0 {
		return title("Day Meal vs Night Meal Trends") + noData
	}

	maxV := 0
	for _, r := range records {
		maxV = maxInt(maxV, maxInt(r.DayMeal, r.NightMeal))
	}

	w := barWidth(width)
	var b strings.Builder
	b.WriteString(title("Day Meal vs Night Meal Trends"))
	for _, r := range records {
		fmt.Fprintf(&b, "%s  day   %s %d\n", r.DateString(), dayStyle.Render(bar(r.DayMeal, maxV, w)), r.DayMeal)
		fmt.Fprintf(&b, "%s  night %s %d\n", strings.Repeat(" ", len(meal.DateLayout)), nightStyle.Render(bar(r.NightMeal, maxV, w)), r.NightMeal)
	}
	return b.String()
}

// Totals draws the combined amount of each record.
func Totals(records []meal.Record, width int) string {
	if len(records) == 0 {
		return title("Total Meals per Day") + noData
	}

	maxV := 0
	for _, r := range records {
		maxV = maxInt(maxV, r.Total())
	}

	w := barWidth(width)
	var b strings.Builder
	b.WriteString(title("Total Meals per Day"))
	for _, r := range records {
		fmt.Fprintf(&b, "%s  %s %d\n", r.DateString(), totalStyle.Render(bar(r.Total(), maxV, w)), r.Total())
	}
	return b.String()
}

// bar scales v against maxV into at most width cells. Any positive value
// gets at least one cell.
func bar(v, maxV, width int) string {
	if v <= 0 || maxV <= 0 {
		return ""
	}
	n := int(float64(v) * float64(width) / float64(maxV))
	if n == 0 {
		n = 1
	}
	return strings.Repeat(barChar, n)
}

func barWidth(width int) int {
	if width <= 0 {
		return defaultWidth
	}
	return width
}

func title(s string) string {
	return titleStyle.Render(s) + "\n"
}

func label(s string) string {
	if s == "" {
		return noLabel
	}
	return s
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
