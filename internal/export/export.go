// Package export writes loaded meal records to external file formats.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Flyrell/mealbook/internal/meal"
)

// Format identifies an export file format.
type Format string

const (
	CSV    Format = "csv"
	XLSX   Format = "xlsx"
	PDF    Format = "pdf"
	SQLite Format = "sqlite"
)

// Formats lists every supported format in menu order.
var Formats = []Format{CSV, XLSX, PDF, SQLite}

var extensions = map[string]Format{
	".csv":     CSV,
	".xlsx":    XLSX,
	".pdf":     PDF,
	".db":      SQLite,
	".sqlite":  SQLite,
	".sqlite3": SQLite,
}

// DefaultExtension returns the file extension written for f.
func (f Format) DefaultExtension() string {
	if f == SQLite {
		return ".db"
	}
	return "." + string(f)
}

// ExportError reports a failure writing an external format. It is distinct
// from meal.StorageError, which only concerns the record store.
type ExportError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("export to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("export %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	if f == "excel" {
		return XLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q (supported: csv, xlsx, pdf, sqlite)", s)
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unsupported file extension %q", ext)
}

// Export writes records to path in format f. When f is empty it is inferred
// from the path. Every failure is an *ExportError.
func Export(records []meal.Record, path string, f Format) error {
	if strings.TrimSpace(path) == "" {
		return &ExportError{Format: f, Path: path, Err: fmt.Errorf("no output path given")}
	}

	if f == "" {
		inferred, err := FormatFromPath(path)
		if err != nil {
			return &ExportError{Path: path, Err: err}
		}
		f = inferred
	}

	var err error
	switch f {
	case CSV:
		err = writeCSV(records, path)
	case XLSX:
		err = writeXLSX(records, path)
	case PDF:
		err = writePDF(records, path)
	case SQLite:
		err = writeSQLite(records, path)
	default:
		err = fmt.Errorf("unsupported export format %q", string(f))
	}
	if err != nil {
		return &ExportError{Format: f, Path: path, Err: err}
	}
	return nil
}
