// Package spectral converts real time series to complex spectra and back.
//
// Complex spectra are 2×N linalg matrices: row 0 holds the real parts and
// row 1 the imaginary parts. Polar spectra use the same layout with
// magnitude in row 0 and angle in row 1.
//
// The package ships its own radix-2 decimation-in-frequency FFT and a naive
// DFT. The Method selector can also delegate to gonum's dsp/fourier, to
// go-dsp's fft or to an algo-fft plan:
//
//	spec, err := spectral.Transform(spectral.MethodFFT, samples)
//	if err != nil {
//		return err
//	}
//	polar, err := spectral.ToPolar(spec)
//
// The forward transforms are unnormalized. The inverse transforms divide by
// N, so Inverse(Forward(x)) reproduces x.
package spectral
