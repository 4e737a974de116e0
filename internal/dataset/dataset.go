// Package dataset reads and writes the record table the pipeline stages work
// on: one CSV file with a header row, one record per line.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adriandez/de-zamacona-data/internal/constants"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// Row maps column names to cell values.
type Row map[string]string

// Get returns the trimmed value of a column ("" when missing).
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Field returns the name text of a role, preferring its "__work" column.
func (r Row) Field(role string) string {
	if v := r.Get(role + constants.SuffixWork); v != "" {
		return v
	}
	return r.Get(role)
}

// Table is a header-ordered set of rows.
type Table struct {
	Headers []string
	Rows    []Row
}

// Column returns the name of a derived role column, e.g. "fullName__surn1".
func Column(role, suffix string) string {
	return role + suffix
}

// Has reports whether the table has the column.
func (t *Table) Has(col string) bool {
	return slices.Contains(t.Headers, col)
}

// EnsureColumn appends col to the headers if it is not there yet.
func (t *Table) EnsureColumn(col string) {
	if !t.Has(col) {
		t.Headers = append(t.Headers, col)
	}
}

// EnsureColumnAfter inserts col right after the column after, or at the
// end when after is missing. Existing columns are not moved.
func (t *Table) EnsureColumnAfter(col, after string) {
	if t.Has(col) {
		return
	}
	i := slices.Index(t.Headers, after)
	if i < 0 {
		t.Headers = append(t.Headers, col)
		return
	}
	t.Headers = slices.Insert(t.Headers, i+1, col)
}

// ReadCSV parses a table. A UTF-8 byte order mark is ignored, header names
// have their whitespace collapsed and short records are padded with "".
func ReadCSV(r io.Reader) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})

	cr := csv.NewReader(bytes.NewReader(b))
	cr.FieldsPerRecord = -1
	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, h := range headers {
		headers[i] = textnorm.CleanSpaces(h)
	}

	t := &Table{Headers: headers}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(t.Rows)+1, err)
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadFile reads a table from path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteCSV writes the table with its headers in order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	rec := make([]string, len(t.Headers))
	for _, row := range t.Rows {
		for i, h := range t.Headers {
			rec[i] = row[h]
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, creating parent directories.
func (t *Table) WriteFile(path string) error {
	return writeFile(path, t.WriteCSV)
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
