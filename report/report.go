// Package report dumps matrices of series as CSV.
//
// A matrix with R rows and C columns is written as C records. Record j
// holds the column index j followed by the value of every row at column j,
// so each matrix row becomes one CSV column:
//
//	,Frequency,Amplitude,Argument,Impulse
//	0,0,1.5,0,0.5
//	1,375,1.2,-0.3,0.25
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tphakala/go-audio-filterlab/linalg"
)

// ErrMalformed indicates CSV input that does not follow the series layout.
var ErrMalformed = errors.New("report: malformed series CSV")

const (
	floatFormat    = 'g'
	floatPrecision = -1
	floatBits      = 64
)

// Write emits header (when non-empty) and one record per column of m.
// header conventionally starts with an empty cell above the index column.
func Write(w io.Writer, header []string, m *linalg.Matrix) error {
	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}

	rows, cols := m.Dims()
	record := make([]string, rows+1)
	for j := range cols {
		record[0] = strconv.Itoa(j)
		for i := range rows {
			record[i+1] = strconv.FormatFloat(m.At(i, j), floatFormat, floatPrecision, floatBits)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write record %d: %w", j, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}
	return nil
}

// WriteFile creates path and writes m to it with Write.
func WriteFile(path string, header []string, m *linalg.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()
	return Write(f, header, m)
}

// Read parses CSV in the layout produced by Write. When hasHeader is true
// the first record is returned as the header.
func Read(r io.Reader, hasHeader bool) (header []string, m *linalg.Matrix, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if hasHeader && len(records) > 0 {
		header, records = records[0], records[1:]
	}
	if len(records) == 0 {
		return header, linalg.NewMatrix(0, 0), nil
	}

	rows := len(records[0]) - 1
	if rows == 0 {
		return nil, nil, fmt.Errorf("%w: records carry no values", ErrMalformed)
	}
	m = linalg.NewMatrix(rows, len(records))
	for j, rec := range records {
		for i, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, floatBits)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, j, err)
			}
			m.Set(i, j, v)
		}
	}
	return header, m, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, hasHeader bool) ([]string, *linalg.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("report: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, hasHeader)
}
