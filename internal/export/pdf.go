package export

import (
	"fmt"
	"strconv"

	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/Flyrell/mealbook/internal/stats"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// Grid widths out of 12 for date, day, night, total and description.
var pdfColumns = [5]int{2, 2, 2, 2, 4}

func writePDF(records []meal.Record, path string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Meal Statements", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d records", len(records)), props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	headerProps := props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}
	m.AddRow(7, pdfRowCols([5]string{
		meal.ColumnDate, meal.ColumnDayMeal, meal.ColumnNightMeal, stats.ColumnTotal, meal.ColumnDescription,
	}, headerProps)...)

	cellProps := props.Text{Size: 9}
	for _, r := range records {
		m.AddRow(6, pdfRowCols([5]string{
			r.DateString(),
			strconv.Itoa(r.DayMeal),
			strconv.Itoa(r.NightMeal),
			strconv.Itoa(r.Total()),
			r.Description,
		}, cellProps)...)
	}

	totals := stats.SumTotals(records)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10, pdfRowCols([5]string{
		"Total",
		strconv.Itoa(totals.Day),
		strconv.Itoa(totals.Night),
		strconv.Itoa(totals.Grand),
		"",
	}, props.Text{Style: fontstyle.Bold, Size: 11, Color: &pdfHeaderColor})...)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(path)
}

// pdfRowCols lays out one table row; amount columns are right aligned.
func pdfRowCols(cells [5]string, p props.Text) []core.Col {
	cols := make([]core.Col, len(cells))
	for i, c := range cells {
		cp := p
		if i >= 1 && i <= 3 {
			cp.Align = align.Right
		}
		cols[i] = text.NewCol(pdfColumns[i], c, cp)
	}
	return cols
}
