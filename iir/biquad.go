package iir

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/go-audio-filterlab/linalg"
)

// Biquad is one second-order section with its filter state. It is not safe
// for concurrent use.
type Biquad struct {
	Coefficients

	x1, x2 float64 // previous inputs
	y1, y2 float64 // previous outputs
}

// New returns a Biquad with coefficients c and zeroed state.
func New(c Coefficients) *Biquad {
	return &Biquad{Coefficients: c}
}

// NewDesigned designs coefficients for p and wraps them in a Biquad.
func NewDesigned(p Params) (*Biquad, error) {
	c, err := Design(p)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// ProcessSample filters one input sample and returns the output.
func (b *Biquad) ProcessSample(x float64) float64 {
	y := b.B0*x + b.B1*b.x1 + b.B2*b.x2 - b.A1*b.y1 - b.A2*b.y2
	b.x2, b.x1 = b.x1, x
	b.y2, b.y1 = b.y1, y
	return y
}

// ProcessBlock filters buf in place, continuing from the current state.
func (b *Biquad) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = b.ProcessSample(x)
	}
}

// Filter returns the filtered copy of input, continuing from the current
// state.
func (b *Biquad) Filter(input linalg.Reader) *linalg.Vector {
	out := linalg.Values(input)
	b.ProcessBlock(out)
	return linalg.VectorOf(out...)
}

// Reset clears the input and output history.
func (b *Biquad) Reset() {
	b.x1, b.x2, b.y1, b.y2 = 0, 0, 0, 0
}

// ImpulseResponse returns the first n samples of the response to a unit
// impulse. The state of b is left unchanged.
func (b *Biquad) ImpulseResponse(n int) *linalg.Vector {
	if n <= 0 {
		return linalg.NewVector(0)
	}
	s := New(b.Coefficients)
	out := make([]float64, n)
	out[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = s.ProcessSample(0)
	}
	return linalg.VectorOf(out...)
}

// Response returns H(e^jω) at freqHz for the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Magnitude returns |H(e^jω)| at freqHz.
func (c Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	return cmplx.Abs(c.Response(freqHz, sampleRate))
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}
