package meal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk date format.
const DateLayout = "2006-01-02"

// Record is a single logged meal-cost entry.
type Record struct {
	Date        time.Time
	DayMeal     int
	NightMeal   int
	Description string
}

// Total returns the combined day and night amount.
func (r Record) Total() int {
	return r.DayMeal + r.NightMeal
}

// DateString returns the record date as YYYY-MM-DD.
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

// Row returns the record in store column order.
func (r Record) Row() []string {
	return []string{
		r.DateString(),
		strconv.Itoa(r.DayMeal),
		strconv.Itoa(r.NightMeal),
		r.Description,
	}
}

// RawRecord is an unvalidated row as read from the store or typed by the user.
type RawRecord struct {
	Date        string
	DayMeal     string
	NightMeal   string
	Description string
}

// Parse coerces the raw fields into a Record. The returned error names the
// offending field.
func (rr RawRecord) Parse() (Record, error) {
	date, err := ParseDate(rr.Date)
	if err != nil {
		return Record{}, &FieldError{Field: ColumnDate, Err: err}
	}
	day, err := parseAmount(rr.DayMeal)
	if err != nil {
		return Record{}, &FieldError{Field: ColumnDayMeal, Err: err}
	}
	night, err := parseAmount(rr.NightMeal)
	if err != nil {
		return Record{}, &FieldError{Field: ColumnNightMeal, Err: err}
	}
	return Record{
		Date:        date,
		DayMeal:     day,
		NightMeal:   night,
		Description: rr.Description,
	}, nil
}

// ParseDate parses a YYYY-MM-DD date. Failures wrap ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return d, nil
}

// ResolveDate parses user date input. Any input containing "today" resolves
// to now's calendar date.
func ResolveDate(s string, now time.Time) (time.Time, error) {
	if strings.Contains(strings.ToLower(s), "today") {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return ParseDate(s)
}

// ParseInput validates raw prompt strings and builds a Record.
func ParseInput(date, day, night, description string, now time.Time) (Record, error) {
	d, err := ResolveDate(date, now)
	if err != nil {
		return Record{}, &FieldError{Field: ColumnDate, Err: err}
	}
	return RawRecord{
		Date:        d.Format(DateLayout),
		DayMeal:     day,
		NightMeal:   night,
		Description: strings.TrimSpace(description),
	}.Parse()
}

func parseAmount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q (expected a whole number)", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %d", n)
	}
	return n, nil
}
