package export

import (
	"database/sql"
	"fmt"

	"github.com/Flyrell/mealbook/internal/meal"

	_ "modernc.org/sqlite"
)

const (
	dropMealsTable   = `DROP TABLE IF EXISTS meals`
	createMealsTable = `CREATE TABLE meals (
	date        TEXT    NOT NULL,
	day_meal    INTEGER NOT NULL,
	night_meal  INTEGER NOT NULL,
	description TEXT    NOT NULL DEFAULT ''
)`
	insertMeal = `INSERT INTO meals (date, day_meal, night_meal, description) VALUES (?, ?, ?, ?)`
)

func writeSQLite(records []meal.Record, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(dropMealsTable); err != nil {
		return fmt.Errorf("drop meals table: %w", err)
	}
	if _, err := tx.Exec(createMealsTable); err != nil {
		return fmt.Errorf("create meals table: %w", err)
	}

	stmt, err := tx.Prepare(insertMeal)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.Exec(r.DateString(), r.DayMeal, r.NightMeal, r.Description); err != nil {
			return fmt.Errorf("insert %s: %w", r.DateString(), err)
		}
	}

	return tx.Commit()
}
