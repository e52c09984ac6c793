package linalg

import "fmt"

// Determinant returns the determinant of a square matrix. A non-square or
// null matrix yields 0.
//
// Sizes 1 to 3 use closed forms (Sarrus' rule for 3×3). Larger matrices use
// cofactor expansion along the first column, which is exponential in the
// dimension; it is intended for the small matrices of tap-count scale.
func (m *Matrix) Determinant() float64 {
	if m.rows != m.cols {
		return 0
	}
	d := m.data
	switch m.rows {
	case 0:
		return 0
	case dimScalar:
		return d[0]
	case dimPair:
		return d[0]*d[3] - d[1]*d[2]
	case dimSarrus:
		return d[0]*d[4]*d[8] +
			d[1]*d[5]*d[6] +
			d[2]*d[3]*d[7] -
			d[2]*d[4]*d[6] -
			d[1]*d[3]*d[8] -
			d[0]*d[5]*d[7]
	}
	var det float64
	for row := range m.rows {
		a := d[row*m.cols]
		if a == 0 {
			continue
		}
		det += m.Cofactor(row, 0) * a
	}
	return det
}

// Minor returns m with row and col removed. It panics if either index is
// out of range.
func (m *Matrix) Minor(row, col int) *Matrix {
	checkIndex(row, m.rows)
	checkIndex(col, m.cols)
	if m.rows == 1 || m.cols == 1 {
		return NewMatrix(0, 0)
	}
	minor := NewMatrix(m.rows-1, m.cols-1)
	r := 0
	for ri := range m.rows {
		if ri == row {
			continue
		}
		dst := minor.row(r)
		src := m.row(ri)
		copy(dst, src[:col])
		copy(dst[col:], src[col+1:])
		r++
	}
	return minor
}

// Cofactor returns (-1)^(row+col) times the determinant of Minor(row, col).
func (m *Matrix) Cofactor(row, col int) float64 {
	det := m.Minor(row, col).Determinant()
	if (row+col)&1 == 1 {
		return -det
	}
	return det
}

// Inverse returns the inverse of a square matrix computed by Gauss-Jordan
// elimination on the augmented matrix [m | I].
//
// For each column the first row at or below the diagonal whose magnitude
// exceeds PivotThreshold is swapped into place and normalized. If no such
// row exists the matrix is treated as singular and ErrSingularMatrix is
// returned. A non-square matrix fails with ErrDimensionMismatch. m is never
// modified.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: inverse of non-square %dx%d matrix", ErrDimensionMismatch, m.rows, m.cols)
	}
	n := m.rows
	if n == 0 {
		return NewMatrix(0, 0), nil
	}

	aug := NewMatrix(n, 2*n)
	for i := range n {
		row := aug.row(i)
		copy(row, m.row(i))
		row[n+i] = 1
	}

	for col := range n {
		pivot := -1
		for i := col; i < n; i++ {
			if abs(aug.data[i*aug.cols+col]) > PivotThreshold {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("%w: no pivot above %g in column %d", ErrSingularMatrix, PivotThreshold, col)
		}
		aug.swapRows(pivot, col)

		pivotRow := aug.row(col)
		divScalar(pivotRow, pivotRow[col])

		for i := range n {
			if i == col {
				continue
			}
			row := aug.row(i)
			if f := row[col]; f != 0 {
				axpy(row, -f, pivotRow)
			}
		}
	}

	return aug.Submatrix(0, n, n, 2*n)
}
