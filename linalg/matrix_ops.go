package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// AddScalar adds s to every element.
func (m *Matrix) AddScalar(s float64) { addScalar(m.data, s) }

// SubScalar subtracts s from every element.
func (m *Matrix) SubScalar(s float64) { subScalar(m.data, s) }

// MulScalar multiplies every element by s.
func (m *Matrix) MulScalar(s float64) { mulScalar(m.data, s) }

// DivScalar divides every element by s.
func (m *Matrix) DivScalar(s float64) { divScalar(m.data, s) }

// Add adds other elementwise over the overlapping rows and columns.
func (m *Matrix) Add(other *Matrix) { m.rowwise(other, addVec) }

// Sub subtracts other elementwise over the overlapping rows and columns.
func (m *Matrix) Sub(other *Matrix) { m.rowwise(other, subVec) }

// MulElem multiplies by other elementwise (Hadamard product) over the
// overlapping rows and columns.
func (m *Matrix) MulElem(other *Matrix) { m.rowwise(other, mulVec) }

// DivElem divides by other elementwise over the overlapping rows and columns.
func (m *Matrix) DivElem(other *Matrix) { m.rowwise(other, divVec) }

func (m *Matrix) rowwise(other *Matrix, op func(dst, src []float64)) {
	for i := range min(m.rows, other.rows) {
		op(m.row(i), other.row(i))
	}
}

// Transpose returns a new cols×rows matrix.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, m.rows)
	for i := range m.rows {
		for j, x := range m.row(i) {
			t.data[j*m.rows+i] = x
		}
	}
	return t
}

// Multiply returns the matrix product m·other. It fails with
// ErrDimensionMismatch unless m.Cols() == other.Rows().
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := NewMatrix(m.rows, other.cols)
	for i := range m.rows {
		dst := out.row(i)
		for k, a := range m.row(i) {
			floats.AddScaled(dst, a, other.row(k))
		}
	}
	return out, nil
}

// Submatrix copies rows [rowBegin, rowEnd) and columns [colBegin, colEnd)
// into a new matrix. An empty range yields a null matrix.
func (m *Matrix) Submatrix(rowBegin, rowEnd, colBegin, colEnd int) (*Matrix, error) {
	if rowBegin < 0 || rowEnd > m.rows || rowBegin > rowEnd ||
		colBegin < 0 || colEnd > m.cols || colBegin > colEnd {
		return nil, fmt.Errorf("%w: rows [%d,%d) cols [%d,%d) of %dx%d",
			ErrOutOfRange, rowBegin, rowEnd, colBegin, colEnd, m.rows, m.cols)
	}
	if rowBegin == rowEnd || colBegin == colEnd {
		return NewMatrix(0, 0), nil
	}
	sub := NewMatrix(rowEnd-rowBegin, colEnd-colBegin)
	for i := rowBegin; i < rowEnd; i++ {
		copy(sub.row(i-rowBegin), m.row(i)[colBegin:colEnd])
	}
	return sub, nil
}

// swapRows exchanges rows a and b in place.
func (m *Matrix) swapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := m.row(a), m.row(b)
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
