package meal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store column names, in file order.
const (
	ColumnDate        = "Date"
	ColumnDayMeal     = "Day_Meal"
	ColumnNightMeal   = "Night_Meal"
	ColumnDescription = "Description"
)

// Header is the first row of every store file.
var Header = []string{ColumnDate, ColumnDayMeal, ColumnNightMeal, ColumnDescription}

// Store is an append-only CSV file of meal records.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. The file is created on
// the first Append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &StorageError{Path: s.path, Err: err}
	}
	return true, nil
}

// Append writes one record to the end of the store, creating the file and
// its header row if needed.
func (s *Store) Append(r Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}

	// Hand-edited files may lack the final newline.
	if info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return &StorageError{Path: s.path, Err: err}
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte("\n")); err != nil {
				return &StorageError{Path: s.path, Err: err}
			}
		}
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return &StorageError{Path: s.path, Err: err}
		}
	}
	if err := w.Write(r.Row()); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	return f.Close()
}

// LoadAll returns every record in insertion order. A missing or empty file
// yields an empty slice. Malformed rows fail the whole load.
func (s *Store) LoadAll() ([]Record, error) {
	raws, lines, err := s.loadRaw()
	if errors.Is(err, ErrNotFound) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raws))
	for i, rr := range raws {
		r, err := rr.Parse()
		if err != nil {
			return nil, &StorageError{Path: s.path, Line: lines[i], Err: err}
		}
		records = append(records, r)
	}
	return records, nil
}

// LoadExisting is LoadAll for callers that need the file to exist already.
// A missing file returns ErrNotFound.
func (s *Store) LoadExisting() ([]Record, error) {
	ok, err := s.Exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", s.path, ErrNotFound)
	}
	return s.LoadAll()
}

// LoadRaw returns the rows without type coercion.
func (s *Store) LoadRaw() ([]RawRecord, error) {
	raws, _, err := s.loadRaw()
	if errors.Is(err, ErrNotFound) {
		return []RawRecord{}, nil
	}
	return raws, err
}

func (s *Store) loadRaw() ([]RawRecord, []int, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, &StorageError{Path: s.path, Err: err}
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	var (
		raws   []RawRecord
		lines  []int
		header = true
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, &StorageError{Path: s.path, Err: err}
		}
		line, _ := cr.FieldPos(0)

		if header {
			header = false
			if !isHeader(row) {
				return nil, nil, &StorageError{
					Path: s.path,
					Line: line,
					Err:  fmt.Errorf("unexpected header %q (expected %q)", strings.Join(row, ","), strings.Join(Header, ",")),
				}
			}
			continue
		}

		if len(row) != len(Header) {
			return nil, nil, &StorageError{
				Path: s.path,
				Line: line,
				Err:  fmt.Errorf("expected %d fields, got %d", len(Header), len(row)),
			}
		}
		raws = append(raws, RawRecord{
			Date:        row[0],
			DayMeal:     row[1],
			NightMeal:   row[2],
			Description: row[3],
		})
		lines = append(lines, line)
	}
	return raws, lines, nil
}

func isHeader(row []string) bool {
	if len(row) != len(Header) {
		return false
	}
	for i, col := range row {
		if !strings.EqualFold(strings.TrimSpace(col), Header[i]) {
			return false
		}
	}
	return true
}
