// Package testutil provides reusable test helpers for the algebra, spectral
// and estimator tests.
package testutil

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	TransformTolerance = 1e-9
	InverseTolerance   = 1e-9
	ConvergeTolerance  = 1e-6
)

// AssertSliceInDelta verifies that two slices have the same length and that
// every pair of elements is within tolerance.
func AssertSliceInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"element %d: expected %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertMatrixInDelta verifies that two gonum-compatible matrices have the
// same shape and elements within tolerance.
func AssertMatrixInDelta(t *testing.T, expected, actual mat.Matrix, tolerance float64) bool {
	t.Helper()
	er, ec := expected.Dims()
	ar, ac := actual.Dims()
	if !assert.Equal(t, []int{er, ec}, []int{ar, ac}, "matrix shape mismatch") {
		return false
	}
	for i := range er {
		for j := range ec {
			if !assert.InDelta(t, expected.At(i, j), actual.At(i, j), tolerance,
				"element (%d,%d) differs", i, j) {
				return false
			}
		}
	}
	return true
}

// AssertNoNaNOrInf fails at the first element of s that is NaN or ±Inf.
// msgAndArgs names the series in the failure message.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("element %d is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError checks |actual-expected|/|expected| <= tolerance.
// A zero expected value falls back to an absolute check.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	return assert.InEpsilon(t, expected, actual, tolerance, msgAndArgs...)
}

// WhiteNoise returns n uniformly distributed samples in [-1, 1) from a
// deterministic generator.
func WhiteNoise(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}
	return out
}

// Convolve returns the causal convolution y[n] = Σ h[k]·x[n-k] truncated to
// len(x). It is the reference used to synthesize known FIR systems.
func Convolve(x, h []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		var acc float64
		for k := 0; k < len(h) && k <= n; k++ {
			acc += h[k] * x[n-k]
		}
		y[n] = acc
	}
	return y
}

// Sine returns n samples of a unit sine at the given normalized frequency
// (cycles per sample).
func Sine(n int, freq, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2*math.Pi*freq*float64(i) + phase)
	}
	return out
}
