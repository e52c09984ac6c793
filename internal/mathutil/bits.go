// Package mathutil provides small numeric helpers shared by the transform
// and algebra packages: power-of-two checks, bit reversal and twiddle tables.
package mathutil

import (
	"math"
	"math/bits"
)

// IsPowerOfTwo reports whether n is an exact power of two (1, 2, 4, ...).
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// Log2 returns the index of the highest set bit of n, or -1 for n <= 0.
// For powers of two this is the exact base-2 logarithm.
func Log2(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

// BitReverse reverses the lowest width bits of v.
func BitReverse(v, width int) int {
	if width <= 0 {
		return 0
	}
	return int(bits.Reverse(uint(v)) >> (bits.UintSize - width))
}

// TwiddleTables returns sin and cos of 2πi/n for i in [0, size).
// The FFT uses size n/2, the DFT uses size n.
func TwiddleTables(n, size int) (sinTable, cosTable []float64) {
	sinTable = make([]float64, size)
	cosTable = make([]float64, size)
	if n <= 0 {
		return sinTable, cosTable
	}
	df := fullTurn / float64(n)
	for i := range size {
		sinTable[i], cosTable[i] = math.Sincos(df * float64(i))
	}
	return sinTable, cosTable
}

// HalfTwiddleTables returns the n/2-entry tables used by the radix-2 butterflies.
func HalfTwiddleTables(n int) (sinTable, cosTable []float64) {
	return TwiddleTables(n, n/halfDivisor)
}
