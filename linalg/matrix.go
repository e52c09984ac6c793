package linalg

import (
	"fmt"
)

// Matrix is an owned, row-major 2-D store backed by one aligned allocation.
//
// Row i aliases data[i*cols : (i+1)*cols]. A matrix with zero rows has zero
// columns and vice versa; such a matrix is null.
type Matrix struct {
	rows int
	cols int
	data []float64
	gen  uint64
}

// NewMatrix returns a zeroed rows×cols matrix.
// It panics with ErrInvalidLength when a dimension is negative or exactly
// one dimension is zero.
func NewMatrix(rows, cols int) *Matrix {
	if err := checkShape(rows, cols); err != nil {
		panic(err)
	}
	return &Matrix{rows: rows, cols: cols, data: allocAligned(rows * cols)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m
}

// MatrixOf builds a matrix from row slices. All rows must have the same
// length; an empty input yields a null matrix.
func MatrixOf(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(r), cols)
		}
	}
	if err := checkShape(len(rows), cols); err != nil {
		return nil, err
	}
	m := NewMatrix(len(rows), cols)
	for i, r := range rows {
		copy(m.data[i*cols:], r)
	}
	return m, nil
}

// MatrixFromVector returns v as a 1×N matrix, or as an N×1 matrix when
// transposed is true.
func MatrixFromVector(v Reader, transposed bool) *Matrix {
	src := rawOf(v)
	n := len(src)
	var m *Matrix
	if transposed {
		m = NewMatrix(n, min(n, 1))
	} else {
		m = NewMatrix(min(n, 1), n)
	}
	copy(m.data, src)
	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the row and column counts.
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// IsNull reports whether the matrix has no elements.
func (m *Matrix) IsNull() bool { return m.rows == 0 }

// IsSquare reports whether rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	checkIndex(i, m.rows)
	checkIndex(j, m.cols)
	return m.data[i*m.cols+j]
}

// Set stores x at row i, column j.
func (m *Matrix) Set(i, j int, x float64) {
	checkIndex(i, m.rows)
	checkIndex(j, m.cols)
	m.data[i*m.cols+j] = x
}

// Row returns a RowView aliasing row i. The view becomes stale after the
// next Resize.
func (m *Matrix) Row(i int) RowView {
	checkIndex(i, m.rows)
	start := i * m.cols
	end := start + m.cols
	return RowView{
		data:  m.data[start:end:end],
		owner: &m.gen,
		gen:   m.gen,
	}
}

// SetRow copies the overlapping prefix of src into row i.
func (m *Matrix) SetRow(i int, src Reader) int {
	return m.Row(i).CopyFrom(src)
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) *Vector {
	checkIndex(j, m.cols)
	v := NewVector(m.rows)
	for i := range m.rows {
		v.data[i] = m.data[i*m.cols+j]
	}
	return v
}

// Resize reallocates the backing store with new dimensions. Contents are
// discarded and every RowView issued earlier becomes stale.
func (m *Matrix) Resize(rows, cols int) error {
	if err := checkShape(rows, cols); err != nil {
		return err
	}
	m.rows, m.cols = rows, cols
	m.data = allocAligned(rows * cols)
	m.gen++
	return nil
}

// Clone returns an independent copy.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// CopyFrom copies the overlapping rectangle of src into m without resizing.
func (m *Matrix) CopyFrom(src *Matrix) {
	rows := min(m.rows, src.rows)
	cols := min(m.cols, src.cols)
	for i := range rows {
		copy(m.data[i*m.cols:i*m.cols+cols], src.data[i*src.cols:])
	}
}

// Fill sets every element to x.
func (m *Matrix) Fill(x float64) {
	for i := range m.data {
		m.data[i] = x
	}
}

// Generate sets element (i, j) to fn(i, Rows(), j, Cols()).
func (m *Matrix) Generate(fn func(i, rows, j, cols int) float64) {
	for i := range m.rows {
		r := m.row(i)
		for j := range r {
			r[j] = fn(i, m.rows, j, m.cols)
		}
	}
}

// Flatten returns a copy of the row-major elements.
func (m *Matrix) Flatten() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// row returns the raw slice of row i without issuing a view.
func (m *Matrix) row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}
