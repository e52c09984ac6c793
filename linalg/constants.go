package linalg

// Storage constants.
const (
	// Alignment is the byte alignment of every Vector and Matrix allocation.
	Alignment = 32

	// MaxElements caps a single allocation (about 16 GiB of float64).
	MaxElements = 1<<31 - 1

	// bytesPerFloat64 is the size of one element in bytes.
	bytesPerFloat64 = 8

	// alignWords is the alignment expressed in elements.
	alignWords = Alignment / bytesPerFloat64
)

// Algebra constants.
const (
	// PivotThreshold is the smallest pivot magnitude Gauss-Jordan inversion
	// accepts; columns with no entry above it are treated as singular.
	PivotThreshold = 1e-10

	// crossProductLength is the only length Cross is defined for.
	crossProductLength = 3
)

// Closed-form determinant sizes.
const (
	dimScalar = 1
	dimPair   = 2
	dimSarrus = 3
)
