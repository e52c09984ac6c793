package filterlab

import (
	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-audio-filterlab/internal/fastconv"
)

// Info describes how a Lab will run.
type Info struct {
	// Solver is the estimation algorithm.
	Solver string

	// Method is the transform used for frequency responses.
	Method string

	// Taps is the number of filter weights estimated.
	Taps int

	// FFTConvolution reports whether Convolve uses overlap-save FFT blocks
	// for this tap count instead of direct dot products.
	FFTConvolution bool

	// StateBytes is the approximate estimator state per channel in bytes.
	StateBytes int64

	// SIMDEnabled indicates if SIMD kernels are active.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// Info returns information about the configured estimation.
func (l *Lab) Info() Info {
	m := int64(l.cfg.Taps)
	// RLS keeps the M×M matrix P plus four M-length vectors; the normal
	// equations keep the M×M Gram matrix and its inverse.
	state := m*m + 4*m
	if l.cfg.Solver == SolverNormalEquation {
		state = 2*m*m + m
	}

	info := Info{
		Solver:         l.cfg.Solver.String(),
		Method:         l.cfg.Method.String(),
		Taps:           l.cfg.Taps,
		FFTConvolution: l.cfg.Taps >= fastconv.MinTapsForFFT,
		StateBytes:     state * bytesPerFloat64,
		SIMDType:       "none",
	}
	if simd := cpu.Info(); simd != "" {
		info.SIMDEnabled = true
		info.SIMDType = simd
	}
	return info
}
