package linalg

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Reader is the read-only surface shared by Vector and RowView.
// Operations that take a second operand accept any Reader.
type Reader interface {
	Len() int
	At(i int) float64
}

// rawOf returns the backing slice of r when it is one of the package's own
// types, or a copy otherwise. Callers must not retain the result.
func rawOf(r Reader) []float64 {
	switch s := r.(type) {
	case *Vector:
		return s.data
	case RowView:
		return s.valid()
	case *RowView:
		return s.valid()
	}
	out := make([]float64, r.Len())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Values returns a fresh copy of the elements of any Reader.
func Values(r Reader) []float64 {
	src := rawOf(r)
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Elementwise kernels. Binary kernels operate over the shorter operand.

func addScalar(dst []float64, s float64) {
	floats.AddConst(s, dst)
}

func subScalar(dst []float64, s float64) {
	floats.AddConst(-s, dst)
}

func mulScalar(dst []float64, s float64) {
	if len(dst) == 0 {
		return
	}
	f64.Scale(dst, dst, s)
}

func divScalar(dst []float64, s float64) {
	for i := range dst {
		dst[i] /= s
	}
}

func addVec(dst, src []float64) {
	n := min(len(dst), len(src))
	floats.Add(dst[:n], src[:n])
}

func subVec(dst, src []float64) {
	n := min(len(dst), len(src))
	floats.Sub(dst[:n], src[:n])
}

func mulVec(dst, src []float64) {
	n := min(len(dst), len(src))
	floats.Mul(dst[:n], src[:n])
}

func divVec(dst, src []float64) {
	n := min(len(dst), len(src))
	floats.Div(dst[:n], src[:n])
}

// Reductions.

func sum(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return f64.Sum(s)
}

func average(s []float64) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return sum(s) / float64(len(s))
}

func dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return f64.DotProduct(a[:n], b[:n])
}

func norm(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, 2)
}

// mustNotEmpty panics for reductions that seed from the first element.
func mustNotEmpty(s []float64) {
	if len(s) == 0 {
		panic(fmt.Errorf("%w: reduction over empty buffer", ErrInvalidLength))
	}
}

func maxValue(s []float64) float64 {
	mustNotEmpty(s)
	return floats.Max(s)
}

func minValue(s []float64) float64 {
	mustNotEmpty(s)
	return floats.Min(s)
}

func maxAbs(s []float64) float64 {
	return math.Abs(s[maxAbsIndex(s)])
}

func minAbs(s []float64) float64 {
	return math.Abs(s[minAbsIndex(s)])
}

func maxIndex(s []float64) int {
	mustNotEmpty(s)
	idx := 0
	for i := 1; i < len(s); i++ {
		if s[idx] < s[i] {
			idx = i
		}
	}
	return idx
}

func minIndex(s []float64) int {
	mustNotEmpty(s)
	idx := 0
	for i := 1; i < len(s); i++ {
		if s[idx] > s[i] {
			idx = i
		}
	}
	return idx
}

func maxAbsIndex(s []float64) int {
	mustNotEmpty(s)
	idx, best := 0, math.Abs(s[0])
	for i := 1; i < len(s); i++ {
		if v := math.Abs(s[i]); best < v {
			idx, best = i, v
		}
	}
	return idx
}

func minAbsIndex(s []float64) int {
	mustNotEmpty(s)
	idx, best := 0, math.Abs(s[0])
	for i := 1; i < len(s); i++ {
		if v := math.Abs(s[i]); best > v {
			idx, best = i, v
		}
	}
	return idx
}

// FIFO shifts.

// pushFront shifts s right by one, stores v at index 0 and returns the
// value evicted from the end.
func pushFront(s []float64, v float64) float64 {
	n := len(s)
	if n == 0 {
		return v
	}
	evicted := s[n-1]
	copy(s[1:], s[:n-1])
	s[0] = v
	return evicted
}

// pushBack shifts s left by one, stores v at the end and returns the value
// evicted from index 0.
func pushBack(s []float64, v float64) float64 {
	n := len(s)
	if n == 0 {
		return v
	}
	evicted := s[0]
	copy(s, s[1:])
	s[n-1] = v
	return evicted
}

func ramp(s []float64, offset, step float64) {
	for k := range s {
		s[k] = offset + step*float64(k)
	}
}

func generate(s []float64, fn func(i, n int) float64) {
	for k := range s {
		s[k] = fn(k, len(s))
	}
}

// axpy performs dst += alpha*src over the shorter length.
func axpy(dst []float64, alpha float64, src []float64) {
	n := min(len(dst), len(src))
	floats.AddScaled(dst[:n], alpha, src[:n])
}

func abs(x float64) float64 { return math.Abs(x) }
