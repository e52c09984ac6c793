package spectral

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/mjibson/go-dsp/fft"
	"github.com/tphakala/go-audio-filterlab/linalg"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Method selects the kernel behind Transform and InverseTransform.
type Method int

const (
	// MethodFFT is the built-in radix-2 FFT (power-of-two lengths only).
	MethodFFT Method = iota
	// MethodDFT is the built-in O(N²) DFT (any length).
	MethodDFT
	// MethodGonum uses gonum's dsp/fourier complex FFT (any length).
	MethodGonum
	// MethodGoDSP uses go-dsp's fft package (any length).
	MethodGoDSP
	// MethodAlgoFFT uses an algo-fft complex128 plan (power-of-two lengths).
	MethodAlgoFFT
)

// methods lists every defined Method in declaration order.
var methods = []Method{MethodFFT, MethodDFT, MethodGonum, MethodGoDSP, MethodAlgoFFT}

// Methods returns every defined Method.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodFFT:
		return "fft"
	case MethodDFT:
		return "dft"
	case MethodGonum:
		return "gonum"
	case MethodGoDSP:
		return "go-dsp"
	case MethodAlgoFFT:
		return "algo-fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the Method whose String form is name.
func ParseMethod(name string) (Method, error) {
	for _, m := range methods {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Transform computes the complex spectrum of input with the selected kernel.
func Transform(m Method, input linalg.Reader) (*linalg.Matrix, error) {
	switch m {
	case MethodFFT:
		return FFT(input)
	case MethodDFT:
		return DFT(input)
	case MethodGonum:
		return gonumForward(input)
	case MethodGoDSP:
		return goDSPForward(input)
	case MethodAlgoFFT:
		return algoForward(input)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// InverseTransform computes the real time series of a complex spectrum with
// the selected kernel.
func InverseTransform(m Method, spectrum *linalg.Matrix) (*linalg.Vector, error) {
	switch m {
	case MethodFFT:
		return IFFT(spectrum)
	case MethodDFT:
		return IDFT(spectrum)
	case MethodGonum:
		return gonumInverse(spectrum)
	case MethodGoDSP:
		return goDSPInverse(spectrum)
	case MethodAlgoFFT:
		return algoInverse(spectrum)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

func gonumForward(input linalg.Reader) (*linalg.Matrix, error) {
	seq, err := toComplex(input)
	if err != nil {
		return nil, err
	}
	coeff := fourier.NewCmplxFFT(len(seq)).Coefficients(nil, seq)
	return fromComplex(coeff), nil
}

func gonumInverse(spectrum *linalg.Matrix) (*linalg.Vector, error) {
	coeff, err := spectrumToComplex(spectrum)
	if err != nil {
		return nil, err
	}
	seq := fourier.NewCmplxFFT(len(coeff)).Sequence(nil, coeff)
	out := realParts(seq)
	// gonum leaves the inverse unnormalized.
	out.DivScalar(float64(len(seq)))
	return out, nil
}

func goDSPForward(input linalg.Reader) (*linalg.Matrix, error) {
	if input.Len() == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidLength)
	}
	return fromComplex(fft.FFTReal(linalg.Values(input))), nil
}

func goDSPInverse(spectrum *linalg.Matrix) (*linalg.Vector, error) {
	coeff, err := spectrumToComplex(spectrum)
	if err != nil {
		return nil, err
	}
	return realParts(fft.IFFT(coeff)), nil
}

func algoForward(input linalg.Reader) (*linalg.Matrix, error) {
	seq, err := toComplex(input)
	if err != nil {
		return nil, err
	}
	plan, err := newAlgoPlan(len(seq))
	if err != nil {
		return nil, err
	}
	coeff := make([]complex128, len(seq))
	if err := plan.Forward(coeff, seq); err != nil {
		return nil, fmt.Errorf("spectral: algo-fft forward: %w", err)
	}
	return fromComplex(coeff), nil
}

func algoInverse(spectrum *linalg.Matrix) (*linalg.Vector, error) {
	coeff, err := spectrumToComplex(spectrum)
	if err != nil {
		return nil, err
	}
	plan, err := newAlgoPlan(len(coeff))
	if err != nil {
		return nil, err
	}
	seq := make([]complex128, len(coeff))
	if err := plan.Inverse(seq, coeff); err != nil {
		return nil, fmt.Errorf("spectral: algo-fft inverse: %w", err)
	}
	return realParts(seq), nil
}

func newAlgoPlan(n int) (*algofft.Plan[complex128], error) {
	if err := checkPowerOfTwo(n); err != nil {
		return nil, err
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: algo-fft plan of size %d: %v", ErrInvalidLength, n, err)
	}
	return plan, nil
}

func toComplex(input linalg.Reader) ([]complex128, error) {
	n := input.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidLength)
	}
	seq := make([]complex128, n)
	for i := range n {
		seq[i] = complex(input.At(i), 0)
	}
	return seq, nil
}

func spectrumToComplex(spectrum *linalg.Matrix) ([]complex128, error) {
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	re := spectrum.Row(rowReal).Values()
	im := spectrum.Row(rowImag).Values()
	out := make([]complex128, len(re))
	for i := range re {
		out[i] = complex(re[i], im[i])
	}
	return out, nil
}

func fromComplex(c []complex128) *linalg.Matrix {
	re := make([]float64, len(c))
	im := make([]float64, len(c))
	for i, z := range c {
		re[i], im[i] = real(z), imag(z)
	}
	return newSpectrum(re, im)
}

func realParts(c []complex128) *linalg.Vector {
	v := linalg.NewVector(len(c))
	v.Generate(func(i, _ int) float64 { return real(c[i]) })
	return v
}
