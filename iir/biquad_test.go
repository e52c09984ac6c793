package iir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-filterlab/internal/testutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

func TestBiquad_PassThrough(t *testing.T) {
	x := testutil.WhiteNoise(256, 3)
	b := New(PassThrough())

	y := b.Filter(linalg.VectorOf(x...))
	testutil.AssertSliceInDelta(t, x, y.Values(), 0)
}

func TestBiquad_Recursion(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.25, B2: 0.125, A1: -0.5, A2: 0.25}
	b := New(c)

	x := []float64{1, 2, -1, 0, 3}
	want := make([]float64, len(x))
	var x1, x2, y1, y2 float64
	for i, v := range x {
		want[i] = c.B0*v + c.B1*x1 + c.B2*x2 - c.A1*y1 - c.A2*y2
		x2, x1 = x1, v
		y2, y1 = y1, want[i]
	}

	for i, v := range x {
		assert.InDelta(t, want[i], b.ProcessSample(v), 1e-15, "sample %d", i)
	}
}

func TestBiquad_BlocksContinueState(t *testing.T) {
	b := newLowPass(t, 2000)
	x := testutil.WhiteNoise(1000, 11)

	whole := append([]float64(nil), x...)
	b.ProcessBlock(whole)

	b.Reset()
	split := append([]float64(nil), x...)
	b.ProcessBlock(split[:333])
	b.ProcessBlock(split[333:])

	testutil.AssertSliceInDelta(t, whole, split, 0)
}

func TestBiquad_Reset(t *testing.T) {
	b := newLowPass(t, 2000)
	first := b.Filter(linalg.VectorOf(testutil.WhiteNoise(64, 5)...))

	b.Reset()
	second := b.Filter(linalg.VectorOf(testutil.WhiteNoise(64, 5)...))
	testutil.AssertSliceInDelta(t, first.Values(), second.Values(), 0)
}

func TestBiquad_ImpulseResponseKeepsState(t *testing.T) {
	b := newLowPass(t, 2000)
	b.ProcessBlock(testutil.WhiteNoise(32, 9))
	before := *b

	ir := b.ImpulseResponse(16)
	require.Equal(t, 16, ir.Len())
	assert.Equal(t, before, *b)
	assert.InDelta(t, b.B0, ir.At(0), 1e-15)

	assert.Equal(t, 0, b.ImpulseResponse(0).Len())
}

// A sine at the cutoff of a Butterworth low-pass settles to 1/√2 of its
// amplitude, so its RMS over whole periods is 1/2.
func TestBiquad_SineAtCutoff(t *testing.T) {
	const (
		fc     = 3000.0
		n      = 4800
		settle = 3200
	)
	b := newLowPass(t, fc)
	y := b.Filter(linalg.VectorOf(testutil.Sine(n, fc/testRate, 0)...)).Values()

	var sumSq float64
	for _, v := range y[settle:] {
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / float64(n-settle))
	assert.InDelta(t, 0.5, rms, 1e-6)
	testutil.AssertNoNaNOrInf(t, y, "filtered sine")
}

func newLowPass(t *testing.T, fc float64) *Biquad {
	t.Helper()
	b, err := NewDesigned(Params{Kind: LowPass, Q: butterQ, Fc1: fc, SampleRate: testRate})
	require.NoError(t, err)
	return b
}
