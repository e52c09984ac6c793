package spectral

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

// ToPolar converts a complex spectrum to magnitude and angle.
//
// The angle is atan(im/re), not atan2, so it always lies in [-π/2, π/2]:
// bins in the second and third quadrants report the angle of the opposite
// bin. A bin with re == 0 yields ±π/2, or NaN when im is also 0.
func ToPolar(spectrum *linalg.Matrix) (*linalg.Matrix, error) {
	if err := checkSpectrum(spectrum); err != nil {
		return nil, err
	}
	re := spectrum.Row(rowReal).Values()
	im := spectrum.Row(rowImag).Values()

	mag := make([]float64, len(re))
	vecmath.Magnitude(mag, re, im)
	arg := make([]float64, len(re))
	for i := range re {
		arg[i] = math.Atan(im[i] / re[i])
	}
	return newSpectrum(mag, arg), nil
}

// ToCartesian converts a polar spectrum back to real and imaginary parts.
func ToCartesian(polar *linalg.Matrix) (*linalg.Matrix, error) {
	if err := checkSpectrum(polar); err != nil {
		return nil, err
	}
	mag := polar.Row(rowMagnitude).Values()
	arg := polar.Row(rowAngle).Values()

	re := make([]float64, len(mag))
	im := make([]float64, len(mag))
	for i, r := range mag {
		s, c := math.Sincos(arg[i])
		re[i] = r * c
		im[i] = r * s
	}
	return newSpectrum(re, im), nil
}

// ToGainPhase converts a complex spectrum to gain in decibels (row 0) and
// the same phase ToPolar reports (row 1). A zero bin has gain -Inf.
func ToGainPhase(spectrum *linalg.Matrix) (*linalg.Matrix, error) {
	polar, err := ToPolar(spectrum)
	if err != nil {
		return nil, err
	}
	re := spectrum.Row(rowReal).Values()
	im := spectrum.Row(rowImag).Values()
	gain := make([]float64, len(re))
	vecmath.Power(gain, re, im)
	for i, p := range gain {
		gain[i] = powerDecibelScale * math.Log10(p)
	}
	polar.SetRow(rowMagnitude, linalg.VectorOf(gain...))
	return polar, nil
}
