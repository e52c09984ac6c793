package linalg

import (
	"fmt"
	"unsafe"
)

// allocAligned returns a zeroed slice of n float64 whose first element sits
// on an Alignment byte boundary. A zero length yields a nil slice.
//
// The Go heap does not move objects, so the offset computed here stays
// valid for the lifetime of the returned slice.
func allocAligned(n int) []float64 {
	if n == 0 {
		return nil
	}
	raw := make([]float64, n+alignWords-1)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % Alignment; rem != 0 {
		off = int((Alignment - rem) / bytesPerFloat64)
	}
	return raw[off : off+n : off+n]
}

// isAligned reports whether s starts on an Alignment boundary.
func isAligned(s []float64) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0
}

// checkLength validates a vector length.
func checkLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidLength, n)
	}
	if n > MaxElements {
		return fmt.Errorf("%w: %d elements exceeds limit %d", ErrAllocation, n, MaxElements)
	}
	return nil
}

// checkShape validates matrix dimensions, including the joint-zero invariant.
func checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: negative shape %dx%d", ErrInvalidLength, rows, cols)
	}
	if (rows == 0) != (cols == 0) {
		return fmt.Errorf("%w: shape %dx%d must be both zero or both positive", ErrInvalidLength, rows, cols)
	}
	if rows > 0 && cols > MaxElements/rows {
		return fmt.Errorf("%w: shape %dx%d exceeds limit %d", ErrAllocation, rows, cols, MaxElements)
	}
	return nil
}

// checkIndex panics unless 0 <= i < n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, n))
	}
}
