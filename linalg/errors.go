package linalg

import "errors"

// Common errors returned (or panicked with) by the algebra types.
var (
	// ErrInvalidLength indicates a negative length, a shape that breaks the
	// joint-zero invariant of Matrix, or an empty operand where one is required.
	ErrInvalidLength = errors.New("linalg: invalid length")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOutOfRange indicates an index or range outside the operand.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrSingularMatrix indicates that Gauss-Jordan elimination found no
	// usable pivot in some column.
	ErrSingularMatrix = errors.New("linalg: singular matrix")

	// ErrAllocation indicates a storage request that cannot be satisfied.
	ErrAllocation = errors.New("linalg: allocation failure")

	// ErrStaleView indicates access through a RowView whose owner was
	// resized after the view was issued.
	ErrStaleView = errors.New("linalg: stale row view")
)
