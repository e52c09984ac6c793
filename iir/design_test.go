package iir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRate = 48000.0
	butterQ  = math.Sqrt2 / 2
)

func design(t *testing.T, p Params) Coefficients {
	t.Helper()
	c, err := Design(p)
	require.NoError(t, err)
	require.True(t, c.Stable(), "designed %v section must be stable", p.Kind)
	return c
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "lpf", LowPass.String())
	assert.Equal(t, "hpf", HighPass.String())
	assert.Equal(t, "bpf", BandPass.String())
	assert.Equal(t, "bef", BandStop.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestDesign_LowPass(t *testing.T) {
	c := design(t, Params{Kind: LowPass, Q: butterQ, Fc1: 1000, SampleRate: testRate})

	assert.InDelta(t, 1.0, c.Magnitude(0, testRate), 1e-12, "unit DC gain")
	assert.InDelta(t, math.Sqrt2/2, c.Magnitude(1000, testRate), 1e-12, "-3 dB at cutoff")
	assert.InDelta(t, 0.0, c.Magnitude(testRate/2, testRate), 1e-12, "null at Nyquist")
	assert.InDelta(t, 2*c.B0, c.B1, 1e-15)
	assert.InDelta(t, c.B0, c.B2, 1e-15)
}

func TestDesign_HighPass(t *testing.T) {
	c := design(t, Params{Kind: HighPass, Q: butterQ, Fc1: 1000, SampleRate: testRate})

	assert.InDelta(t, 0.0, c.Magnitude(0, testRate), 1e-12, "null at DC")
	assert.InDelta(t, math.Sqrt2/2, c.Magnitude(1000, testRate), 1e-12, "-3 dB at cutoff")
	assert.InDelta(t, 1.0, c.Magnitude(testRate/2, testRate), 1e-12, "unit gain at Nyquist")
	assert.InDelta(t, -2*c.B0, c.B1, 1e-15)
}

// centre returns the digital frequency whose prewarped value is the
// geometric mean of the prewarped band edges.
func centre(fc1, fc2, fs float64) float64 {
	w0 := math.Sqrt(prewarp(fc1, fs) * prewarp(fc2, fs))
	return math.Atan(w0) * fs / math.Pi
}

func TestDesign_BandPass(t *testing.T) {
	const fc1, fc2 = 500.0, 2000.0
	c := design(t, Params{Kind: BandPass, Fc1: fc1, Fc2: fc2, SampleRate: testRate})

	assert.InDelta(t, 1.0, c.Magnitude(centre(fc1, fc2, testRate), testRate), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, c.Magnitude(fc1, testRate), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, c.Magnitude(fc2, testRate), 1e-12)
	assert.InDelta(t, 0.0, c.Magnitude(0, testRate), 1e-12)
	assert.InDelta(t, 0.0, c.Magnitude(testRate/2, testRate), 1e-12)
	assert.Zero(t, c.B1)
}

func TestDesign_BandStop(t *testing.T) {
	const fc1, fc2 = 500.0, 2000.0
	c := design(t, Params{Kind: BandStop, Fc1: fc1, Fc2: fc2, SampleRate: testRate})

	assert.InDelta(t, 0.0, c.Magnitude(centre(fc1, fc2, testRate), testRate), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, c.Magnitude(fc1, testRate), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, c.Magnitude(fc2, testRate), 1e-12)
	assert.InDelta(t, 1.0, c.Magnitude(0, testRate), 1e-12)
	assert.InDelta(t, 1.0, c.Magnitude(testRate/2, testRate), 1e-12)
}

func TestDesign_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"zero rate", Params{Kind: LowPass, Q: 1, Fc1: 100}, ErrInvalidParameter},
		{"zero Q", Params{Kind: HighPass, Fc1: 100, SampleRate: testRate}, ErrInvalidParameter},
		{"NaN Q", Params{Kind: LowPass, Q: math.NaN(), Fc1: 100, SampleRate: testRate}, ErrInvalidParameter},
		{"cutoff at Nyquist", Params{Kind: LowPass, Q: 1, Fc1: testRate / 2, SampleRate: testRate}, ErrInvalidParameter},
		{"zero cutoff", Params{Kind: LowPass, Q: 1, SampleRate: testRate}, ErrInvalidParameter},
		{"inverted band", Params{Kind: BandPass, Fc1: 2000, Fc2: 500, SampleRate: testRate}, ErrInvalidParameter},
		{"empty band", Params{Kind: BandStop, Fc1: 500, Fc2: 500, SampleRate: testRate}, ErrInvalidParameter},
		{"band past Nyquist", Params{Kind: BandPass, Fc1: 500, Fc2: testRate, SampleRate: testRate}, ErrInvalidParameter},
		{"unknown kind", Params{Kind: Kind(7), Q: 1, Fc1: 100, SampleRate: testRate}, ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Design(tt.p)
			require.ErrorIs(t, err, tt.want)

			_, err = NewDesigned(tt.p)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCoefficients_Stable(t *testing.T) {
	assert.True(t, PassThrough().Stable())
	assert.False(t, Coefficients{B0: 1, A2: 1}.Stable(), "poles on the unit circle")
	assert.False(t, Coefficients{B0: 1, A1: -2.1, A2: 0.5}.Stable())
}
