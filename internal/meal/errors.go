package meal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the store file does not exist and the
	// caller requires it to.
	ErrNotFound = errors.New("meal store not found")

	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyInput is returned by aggregations that need at least one record.
	ErrEmptyInput = errors.New("no meal records")
)

// FieldError reports which column of a row failed to coerce.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// StorageError reports an I/O failure or unparseable persisted data.
// Line is the 1-based file line, or 0 when the failure is not tied to a row.
type StorageError struct {
	Path string
	Line int
	Err  error
}

func (e *StorageError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("meal store %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("meal store %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
