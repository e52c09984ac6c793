package spectral

import (
	"fmt"

	"github.com/tphakala/go-audio-filterlab/internal/mathutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

// DFT returns the complex spectrum of a real series of any positive length
// by direct summation. It is O(N²) and serves as the reference for FFT.
func DFT(input linalg.Reader) (*linalg.Matrix, error) {
	n := input.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidLength)
	}
	x := linalg.Values(input)
	sinTable, cosTable := mathutil.TwiddleTables(n, n)

	re := make([]float64, n)
	im := make([]float64, n)
	for j := range n {
		for i, v := range x {
			k := tableIndex(i, j, n)
			re[j] += v * cosTable[k]
			im[j] -= v * sinTable[k]
		}
	}
	return newSpectrum(re, im), nil
}

// IDFT returns the real part of the inverse DFT of a complex spectrum,
// divided by N.
func IDFT(spectrum *linalg.Matrix) (*linalg.Vector, error) {
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	n := spectrum.Cols()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty spectrum", ErrInvalidLength)
	}
	sinTable, cosTable := mathutil.TwiddleTables(n, n)
	re := spectrum.Row(rowReal).Values()
	im := spectrum.Row(rowImag).Values()

	out := make([]float64, n)
	for i := range n {
		for j := range n {
			k := tableIndex(i, j, n)
			out[i] += re[j]*cosTable[k] - im[j]*sinTable[k]
		}
	}
	v := linalg.VectorOf(out...)
	v.DivScalar(float64(n))
	return v, nil
}

// tableIndex reduces i·j modulo n in 64-bit arithmetic.
func tableIndex(i, j, n int) int {
	return int(int64(i) * int64(j) % int64(n))
}
