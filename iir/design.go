package iir

import (
	"fmt"
	"math"
)

// Kind selects the response shape of a designed section.
type Kind int

const (
	// LowPass passes DC and rejects Nyquist, -3 dB at Fc1 for Q = 1/√2.
	LowPass Kind = iota
	// HighPass rejects DC and passes Nyquist.
	HighPass
	// BandPass has unit gain at the geometric centre of [Fc1, Fc2] and
	// -3 dB at both edges.
	BandPass
	// BandStop has a null at the geometric centre of [Fc1, Fc2].
	BandStop
)

// String returns the short name of the kind.
func (k Kind) String() string {
	switch k {
	case LowPass:
		return "lpf"
	case HighPass:
		return "hpf"
	case BandPass:
		return "bpf"
	case BandStop:
		return "bef"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Params describes a section to design. Q is used by LowPass and HighPass,
// Fc2 by BandPass and BandStop. Frequencies are in Hz.
type Params struct {
	Kind       Kind
	Q          float64
	Fc1        float64
	Fc2        float64
	SampleRate float64
}

// Coefficients of one section with a0 normalized to 1.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward
	A1, A2     float64 // feedback
}

// PassThrough returns coefficients whose section copies its input.
func PassThrough() Coefficients {
	return Coefficients{B0: 1}
}

// Design computes the coefficients for p.
func Design(p Params) (Coefficients, error) {
	if err := p.validate(); err != nil {
		return Coefficients{}, err
	}
	w1 := prewarp(p.Fc1, p.SampleRate)

	switch p.Kind {
	case LowPass, HighPass:
		c := w1 * w1
		d := 1 + w1/p.Q + c
		out := Coefficients{
			A1: (2*c - 2) / d,
			A2: (1 - w1/p.Q + c) / d,
		}
		if p.Kind == LowPass {
			out.B0, out.B1, out.B2 = c/d, 2*c/d, c/d
		} else {
			out.B0, out.B1, out.B2 = 1/d, -2/d, 1/d
		}
		return out, nil

	default: // BandPass, BandStop
		w2 := prewarp(p.Fc2, p.SampleRate)
		c := w1 * w2
		bw := w2 - w1
		e := 1 + bw + c
		out := Coefficients{
			A1: (2*c - 2) / e,
			A2: (1 - bw + c) / e,
		}
		if p.Kind == BandPass {
			out.B0, out.B1, out.B2 = bw/e, 0, -bw/e
		} else {
			out.B0, out.B1, out.B2 = (c+1)/e, (2*c-2)/e, (c+1)/e
		}
		return out, nil
	}
}

// prewarp maps a digital frequency to the analog angular frequency that
// the bilinear transform (with T = 2) sends back onto it.
func prewarp(fd, fs float64) float64 {
	return math.Tan(math.Pi * fd / fs)
}

func (p Params) validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %g", ErrInvalidParameter, p.SampleRate)
	}
	nyquist := p.SampleRate / 2
	inBand := func(f float64) bool { return f > 0 && f < nyquist }

	switch p.Kind {
	case LowPass, HighPass:
		if !(p.Q > 0) {
			return fmt.Errorf("%w: Q %g", ErrInvalidParameter, p.Q)
		}
		if !inBand(p.Fc1) {
			return fmt.Errorf("%w: cutoff %g Hz outside (0, %g)", ErrInvalidParameter, p.Fc1, nyquist)
		}
	case BandPass, BandStop:
		if !inBand(p.Fc1) || !inBand(p.Fc2) || p.Fc1 >= p.Fc2 {
			return fmt.Errorf("%w: band [%g, %g] Hz outside (0, %g) or empty",
				ErrInvalidParameter, p.Fc1, p.Fc2, nyquist)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(p.Kind))
	}
	return nil
}
