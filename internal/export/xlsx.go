package export

import (
	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds exported records.
const SheetName = "Meals"

func writeXLSX(records []meal.Record, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(meal.Header))
	for i, h := range meal.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.DateString(), r.DayMeal, r.NightMeal, r.Description}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
