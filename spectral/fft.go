package spectral

import (
	"fmt"

	"github.com/tphakala/go-audio-filterlab/internal/mathutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

// FFT returns the complex spectrum of a real series whose length is a power
// of two, using radix-2 decimation in frequency followed by a bit-reversal
// permutation.
func FFT(input linalg.Reader) (*linalg.Matrix, error) {
	n := input.Len()
	if err := checkPowerOfTwo(n); err != nil {
		return nil, err
	}

	re := linalg.Values(input)
	im := make([]float64, n)
	fftInPlace(re, im, false)

	return newSpectrum(re, im), nil
}

// IFFT returns the real part of the inverse transform of a complex spectrum
// whose column count is a power of two, divided by N.
func IFFT(spectrum *linalg.Matrix) (*linalg.Vector, error) {
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	n := spectrum.Cols()
	if err := checkPowerOfTwo(n); err != nil {
		return nil, err
	}

	re := spectrum.Row(rowReal).Values()
	im := spectrum.Row(rowImag).Values()
	fftInPlace(re, im, true)

	out := linalg.VectorOf(re...)
	out.DivScalar(float64(n))
	return out, nil
}

// fftInPlace runs the butterflies over re and im and then reorders the bins
// into natural order.
//
// At each stage the twiddle for butterfly k is read from the half tables at
// k·stride, where stride doubles as the butterfly span halves.
func fftInPlace(re, im []float64, inverse bool) {
	n := len(re)
	sinTable, cosTable := mathutil.HalfTwiddleTables(n)

	stride := 1
	for span := n / 2; span >= 1; span /= 2 {
		for start := 0; start < n; start += 2 * span {
			for k := range span {
				a, b := start+k, start+k+span
				dr, di := re[a]-re[b], im[a]-im[b]
				re[a] += re[b]
				im[a] += im[b]

				c, s := cosTable[k*stride], sinTable[k*stride]
				if inverse {
					re[b] = dr*c - di*s
					im[b] = dr*s + di*c
				} else {
					re[b] = dr*c + di*s
					im[b] = -dr*s + di*c
				}
			}
		}
		stride *= 2
	}

	bitReversePermute(re, im)
}

// bitReversePermute swaps every pair of bins whose indices are bit
// reversals of each other.
func bitReversePermute(re, im []float64) {
	width := mathutil.Log2(len(re))
	for i := range re {
		j := mathutil.BitReverse(i, width)
		if j > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}

// newSpectrum packs real and imaginary parts into a 2×N matrix.
func newSpectrum(re, im []float64) *linalg.Matrix {
	spec := linalg.NewMatrix(spectrumRows, len(re))
	spec.SetRow(rowReal, linalg.VectorOf(re...))
	spec.SetRow(rowImag, linalg.VectorOf(im...))
	return spec
}

func checkPowerOfTwo(n int) error {
	if !mathutil.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: length %d is not a positive power of two", ErrInvalidLength, n)
	}
	return nil
}

// checkSpectrum validates the 2×N layout of a complex or polar spectrum.
func checkSpectrum(m *linalg.Matrix) error {
	if m.Rows() < spectrumRows {
		return fmt.Errorf("%w: spectrum needs %d rows, got %d",
			linalg.ErrDimensionMismatch, spectrumRows, m.Rows())
	}
	return nil
}
