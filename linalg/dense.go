package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Compile-time check that *Matrix can be used wherever gonum expects a
// mat.Matrix.
var _ mat.Matrix = (*Matrix)(nil)

// T returns a lazy gonum transpose of m, satisfying mat.Matrix.
// Use Transpose for an owned copy.
func (m *Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Dense copies m into a new gonum *mat.Dense. A null matrix yields an
// empty Dense.
func (m *Matrix) Dense() *mat.Dense {
	if m.IsNull() {
		return &mat.Dense{}
	}
	return mat.NewDense(m.rows, m.cols, m.Flatten())
}

// FromMat copies any gonum matrix into a new Matrix.
func FromMat(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	m := NewMatrix(r, c)
	if rm, ok := a.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		for i := range r {
			copy(m.row(i), raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return m
	}
	for i := range r {
		row := m.row(i)
		for j := range row {
			row[j] = a.At(i, j)
		}
	}
	return m
}

// EqualApprox reports whether m and other have the same shape and equal
// elements within tol (absolute or relative).
func (m *Matrix) EqualApprox(other mat.Matrix, tol float64) bool {
	return mat.EqualApprox(m, other, tol)
}

// String formats the matrix with gonum's matrix formatter.
func (m *Matrix) String() string {
	if m.IsNull() {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(m))
}
