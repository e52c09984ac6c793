package filterlab

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-filterlab/internal/fastconv"
	"github.com/tphakala/go-audio-filterlab/linalg"
	"github.com/tphakala/go-audio-filterlab/report"
	"github.com/tphakala/go-audio-filterlab/spectral"
	"github.com/tphakala/go-audio-filterlab/wavio"
)

// CSV headers for the matrices written by Save.
var (
	ResponseHeader = []string{"", "Frequency", "Amplitude", "Argument", "Impulse"}
	TraceHeader    = []string{"i", "e", "eta", "J", "|k|", "|u|", "Esum"}
)

// Result is the outcome of one Analyze run.
type Result struct {
	// Taps are the estimated filter weights.
	Taps *linalg.Vector

	// Response is the FrequencyResponse of Taps.
	Response *linalg.Matrix

	// Trace holds the rls.Trace* rows, or nil unless Config.Trace is set
	// with SolverRLS.
	Trace *linalg.Matrix

	// Verification is the input convolved with Taps, scaled so its peak
	// fits a 16-bit sample.
	Verification *linalg.Vector

	// SampleRate of the analyzed series in Hz.
	SampleRate int
}

// FrequencyAxis returns n bin frequencies i·sampleRate/n.
func FrequencyAxis(n int, sampleRate float64) *linalg.Vector {
	v := linalg.NewVector(n)
	if n > 0 {
		v.Ramp(0, sampleRate/float64(n))
	}
	return v
}

// FrequencyResponse returns a 4×len(taps) matrix whose rows, indexed by the
// Response* constants, are the bin frequency, the amplitude and argument
// from spectral.ToPolar, and the taps themselves.
func FrequencyResponse(taps linalg.Reader, sampleRate float64, method spectral.Method) (*linalg.Matrix, error) {
	n := taps.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: frequency response of empty taps", ErrInvalidInput)
	}
	spectrum, err := spectral.Transform(method, taps)
	if err != nil {
		return nil, fmt.Errorf("frequency response: %w", err)
	}
	polar, err := spectral.ToPolar(spectrum)
	if err != nil {
		return nil, fmt.Errorf("frequency response: %w", err)
	}

	out := linalg.NewMatrix(responseRows, n)
	out.SetRow(ResponseFrequency, FrequencyAxis(n, sampleRate))
	out.SetRow(ResponseAmplitude, polar.Row(0))
	out.SetRow(ResponseArgument, polar.Row(1))
	out.SetRow(ResponseImpulse, taps)
	return out, nil
}

// Convolve returns the causal convolution y[i] = Σ taps[k]·input[i-k],
// truncated to the length of input. Input shorter than taps is rejected.
func Convolve(input, taps linalg.Reader) (*linalg.Vector, error) {
	n, m := input.Len(), taps.Len()
	if m == 0 || n < m {
		return nil, fmt.Errorf("%w: convolution needs at least %d input samples, got %d",
			ErrInvalidInput, max(m, 1), n)
	}

	y := make([]float64, n)
	fastconv.New(linalg.Values(taps)).Filter(y, linalg.Values(input))
	return linalg.VectorOf(y...), nil
}

// FrequencyResponse applies the package function with the configured
// sample rate and method.
func (l *Lab) FrequencyResponse(taps linalg.Reader) (*linalg.Matrix, error) {
	return FrequencyResponse(taps, float64(l.cfg.SampleRate), l.cfg.Method)
}

// Analyze estimates the taps mapping input to reference, computes their
// frequency response and convolves input with them for verification.
func (l *Lab) Analyze(input, reference linalg.Reader) (*Result, error) {
	return l.analyze(input, reference, l.cfg.SampleRate)
}

func (l *Lab) analyze(input, reference linalg.Reader, sampleRate int) (*Result, error) {
	h, trace, err := l.estimate(input, reference, l.cfg.Trace)
	if err != nil {
		return nil, err
	}

	response, err := FrequencyResponse(h, float64(sampleRate), l.cfg.Method)
	if err != nil {
		return nil, err
	}

	verification, err := Convolve(input, h)
	if err != nil {
		return nil, err
	}
	if peak := verification.MaxAbs(); peak > 0 {
		verification.MulScalar(verifyPeak / peak)
	}

	l.logger.WithFields(logrus.Fields{
		"taps":        h.Len(),
		"sample_rate": sampleRate,
		"traced":      trace != nil,
	}).Debug("filterlab: analysis finished")

	return &Result{
		Taps:         h,
		Response:     response,
		Trace:        trace,
		Verification: verification,
		SampleRate:   sampleRate,
	}, nil
}

// AnalyzeFiles reads the first channel of both files from the configured
// Source and runs Analyze at their common sample rate.
func (l *Lab) AnalyzeFiles(inputPath, referencePath string) (*Result, error) {
	in, err := l.source.Read(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	ref, err := l.source.Read(referencePath)
	if err != nil {
		return nil, fmt.Errorf("read reference: %w", err)
	}
	if in.SampleRate != ref.SampleRate {
		return nil, fmt.Errorf("%w: sample rates differ, input %d Hz, reference %d Hz",
			ErrInvalidInput, in.SampleRate, ref.SampleRate)
	}

	x, err := in.Channel(0)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	d, err := ref.Channel(0)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	return l.analyze(x, d, in.SampleRate)
}

// Save writes res under dir as base.csv, base_logs.csv when res has a
// trace, and base_iconv.wav through the configured Sink.
func (l *Lab) Save(res *Result, dir, base string) error {
	prefix := filepath.Join(dir, base)

	if err := report.WriteFile(prefix+csvExt, ResponseHeader, res.Response); err != nil {
		return err
	}
	if res.Trace != nil && !res.Trace.IsNull() {
		if err := report.WriteFile(prefix+traceSuffix+csvExt, TraceHeader, res.Trace); err != nil {
			return err
		}
	}

	audio := wavio.NewAudio(res.Verification, res.SampleRate, verifyChannels, verifyBitDepth)
	if err := l.sink.Write(prefix+verifySuffix+wavExt, audio); err != nil {
		return fmt.Errorf("write verification: %w", err)
	}

	l.logger.WithField("prefix", prefix).Debug("filterlab: results saved")
	return nil
}
