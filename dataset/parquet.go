// Package dataset extracts columns from Parquet files.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Column holds one column's numeric observations plus row accounting.
// Values keeps only finite numbers; nulls and non-numeric cells are
// dropped from it but still counted in TotalRows.
type Column struct {
	Values    []float64
	TotalRows int
}

// NullCount returns the number of missing or non-numeric cells.
func (c *Column) NullCount() int {
	return c.TotalRows - len(c.Values)
}

// ColumnNotFoundError reports a request for a column the file's schema
// does not have.
type ColumnNotFoundError struct {
	Column string
	Path   string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in %s", e.Column, e.Path)
}

// ListColumns returns the file's top-level field names in schema order.
func ListColumns(path string) ([]string, error) {
	pf, done, err := open(path)
	if err != nil {
		return nil, err
	}
	defer done()

	fields := pf.Schema().Fields()
	names := make([]string, len(fields))

	for i, f := range fields {
		names[i] = f.Name()
	}

	return names, nil
}

// ReadNumericColumn materializes the named column, coercing every
// integer and floating point width to float64. Booleans, byte arrays
// and non-finite numbers count as missing.
func ReadNumericColumn(path, column string) (*Column, error) {
	pf, done, err := open(path)
	if err != nil {
		return nil, err
	}
	defer done()

	// Column chunks are ordered by leaf column, not by top-level field,
	// so the index must come from a leaf lookup.
	leaf, ok := pf.Schema().Lookup(column)
	if !ok {
		return nil, &ColumnNotFoundError{Column: column, Path: path}
	}

	col := &Column{}
	buf := make([]parquet.Value, 256)

	for _, rg := range pf.RowGroups() {
		if err := readChunk(rg.ColumnChunks()[leaf.ColumnIndex], buf, col); err != nil {
			return nil, fmt.Errorf("read column %q: %w", column, err)
		}
	}

	return col, nil
}

func readChunk(chunk parquet.ColumnChunk, buf []parquet.Value, col *Column) error {
	pages := chunk.Pages()
	defer pages.Close()

	for {
		page, err := pages.ReadPage()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		values := page.Values()

		for {
			n, err := values.ReadValues(buf)

			for _, v := range buf[:n] {
				col.TotalRows++

				if f, ok := asFloat(v); ok {
					col.Values = append(col.Values, f)
				}
			}

			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				return err
			}
		}
	}
}

func asFloat(v parquet.Value) (float64, bool) {
	if v.IsNull() {
		return 0, false
	}

	var f float64

	switch v.Kind() {
	case parquet.Int32:
		f = float64(v.Int32())
	case parquet.Int64:
		f = float64(v.Int64())
	case parquet.Float:
		f = float64(v.Float())
	case parquet.Double:
		f = v.Double()
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func open(path string) (*parquet.File, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet source: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, nil, fmt.Errorf("stat parquet source: %w", err)
	}

	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		_ = f.Close()

		return nil, nil, fmt.Errorf("read parquet source %s: %w", path, err)
	}

	return pf, f.Close, nil
}
