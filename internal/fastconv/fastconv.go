// Package fastconv applies fixed FIR taps to whole signals,
// y[n] = Σ taps[k]·x[n-k], with the signal starting from rest.
//
// Short filters run as SIMD dot products over a zero-prefixed copy of the
// signal. From MinTapsForFFT taps the filter switches to overlap-save FFT
// blocks.
package fastconv

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// MinTapsForFFT is the filter length from which New selects the
	// overlap-save path.
	MinTapsForFFT = 400

	// minFFTSize is the smallest block transform.
	minFFTSize = 512

	// hermitianDivisor: a real FFT of size N has N/2+1 unique bins.
	hermitianDivisor = 2
)

// FIR filters successive signals with one set of taps. Every call to
// Filter starts from zero state, so one FIR can serve many signals. Scratch
// buffers are reused between calls and a FIR is not safe for concurrent use.
type FIR struct {
	taps     int
	reversed []float64    // taps in reverse order, for the direct path
	scratch  []float64    // taps-1 zeros followed by the signal
	blocks   *overlapSave // nil on the direct path
}

// New returns a FIR for taps, or nil when taps is empty. taps is copied.
func New(taps []float64) *FIR {
	m := len(taps)
	if m == 0 {
		return nil
	}
	f := &FIR{taps: m}
	if m >= MinTapsForFFT {
		f.blocks = newOverlapSave(taps)
		return f
	}
	f.reversed = make([]float64, m)
	for k, h := range taps {
		f.reversed[m-1-k] = h
	}
	return f
}

// Len returns the number of taps.
func (f *FIR) Len() int { return f.taps }

// UsesFFT reports whether Filter runs on FFT blocks.
func (f *FIR) UsesFFT() bool { return f.blocks != nil }

// Filter writes the first min(len(dst), len(x)) outputs for signal x into
// dst and returns how many were written.
func (f *FIR) Filter(dst, x []float64) int {
	n := min(len(dst), len(x))
	if n == 0 {
		return 0
	}
	dst, x = dst[:n], x[:n]

	if f.blocks != nil {
		f.blocks.filter(dst, x)
		return n
	}

	// Valid-mode correlation with the reversed taps over the zero-prefixed
	// signal is the causal convolution.
	lead := f.taps - 1
	need := lead + n
	if cap(f.scratch) < need {
		f.scratch = make([]float64, need)
	}
	buf := f.scratch[:need]
	clear(buf[:lead])
	copy(buf[lead:], x)
	f64.ConvolveValid(dst, buf, f.reversed)
	return n
}

// overlapSave runs the circular convolution of fixed-size blocks with the
// taps. Each block carries taps-1 samples of history ahead of hop new
// samples. The first taps-1 outputs of each block have wrapped around and
// are dropped.
type overlapSave struct {
	fft   *fourier.FFT
	size  int
	hop   int
	lead  int
	scale float64 // gonum's inverse transform is unnormalized

	tapsFFT []complex128
	block   []float64
	spec    []complex128
	product []complex128
	out     []float64
}

func newOverlapSave(taps []float64) *overlapSave {
	m := len(taps)
	size := minFFTSize
	for size < 2*m {
		size *= 2
	}
	fft := fourier.NewFFT(size)

	padded := make([]float64, size)
	copy(padded, taps)

	bins := size/hermitianDivisor + 1
	return &overlapSave{
		fft:     fft,
		size:    size,
		hop:     size - m + 1,
		lead:    m - 1,
		scale:   1 / float64(size),
		tapsFFT: fft.Coefficients(nil, padded),
		block:   make([]float64, size),
		spec:    make([]complex128, bins),
		product: make([]complex128, bins),
		out:     make([]float64, size),
	}
}

func (o *overlapSave) filter(dst, x []float64) {
	n := len(x)
	for start := 0; start < n; start += o.hop {
		// Block sample j is x[start-lead+j]; indices before 0 or past n
		// stay zero.
		first := start - o.lead
		lo, hi := max(first, 0), min(first+o.size, n)
		clear(o.block)
		copy(o.block[lo-first:], x[lo:hi])

		o.spec = o.fft.Coefficients(o.spec, o.block)
		c128.Mul(o.product, o.spec, o.tapsFFT)
		o.out = o.fft.Sequence(o.out, o.product)

		count := min(o.hop, n-start)
		f64.Scale(dst[start:start+count], o.out[o.lead:o.lead+count], o.scale)
	}
}
