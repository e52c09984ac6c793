package filterlab

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-filterlab/internal/logutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
	"github.com/tphakala/go-audio-filterlab/rls"
	"github.com/tphakala/go-audio-filterlab/spectral"
	"github.com/tphakala/go-audio-filterlab/wavio"
)

// Solver selects how filter taps are estimated.
type Solver int

const (
	// SolverRLS runs the recursive least squares estimator sample by sample.
	SolverRLS Solver = iota

	// SolverNormalEquation solves the batch least squares normal equations.
	SolverNormalEquation
)

// String returns the solver name.
func (s Solver) String() string {
	switch s {
	case SolverRLS:
		return "rls"
	case SolverNormalEquation:
		return "normal-equation"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// Config holds the estimation parameters.
type Config struct {
	// SampleRate is the sample rate in Hz of the series passed to Estimate
	// and Analyze. AnalyzeFiles uses the rate stored in the files instead.
	SampleRate int

	// Taps is the number of filter weights to estimate.
	Taps int

	// Regularization is the RLS constant c of the initial P = I/c.
	// Ignored by SolverNormalEquation.
	Regularization float64

	// Solver selects the estimation algorithm.
	Solver Solver

	// Method selects the transform used by FrequencyResponse.
	// MethodFFT requires a power-of-two tap count.
	Method spectral.Method

	// EnableParallel estimates each channel of EstimateChannels in its own
	// goroutine.
	EnableParallel bool

	// Trace records per-sample RLS diagnostics in Result.Trace.
	Trace bool

	// Logger receives debug progress. Nil discards.
	Logger logrus.FieldLogger

	// Source and Sink are used by AnalyzeFiles and Save.
	// Nil selects wavio.FileIO.
	Source wavio.Source
	Sink   wavio.Sink
}

// Error types for configuration and input validation.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid filterlab configuration")

	// ErrInvalidInput indicates sample series that cannot be estimated from.
	ErrInvalidInput = errors.New("invalid input data")
)

// DefaultConfig returns a mono RLS configuration with DefaultTaps taps.
func DefaultConfig() *Config {
	return &Config{
		SampleRate:     DefaultSampleRate,
		Taps:           DefaultTaps,
		Regularization: rls.DefaultRegularization,
		Solver:         SolverRLS,
		Method:         spectral.MethodDFT,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.Taps <= 0 {
		return fmt.Errorf("%w: taps must be positive, got %d", ErrInvalidConfig, c.Taps)
	}

	switch c.Solver {
	case SolverRLS:
		if !(c.Regularization > 0) || math.IsInf(c.Regularization, 0) {
			return fmt.Errorf("%w: regularization must be finite and positive, got %g",
				ErrInvalidConfig, c.Regularization)
		}
	case SolverNormalEquation:
	default:
		return fmt.Errorf("%w: unknown solver %v", ErrInvalidConfig, c.Solver)
	}

	if !slices.Contains(spectral.Methods(), c.Method) {
		return fmt.Errorf("%w: %w: %v", ErrInvalidConfig, spectral.ErrUnknownMethod, c.Method)
	}

	return nil
}

// Lab runs estimations with one validated configuration.
type Lab struct {
	cfg    Config
	logger logrus.FieldLogger
	source wavio.Source
	sink   wavio.Sink
}

// New validates config and returns a Lab using a copy of it.
func New(config *Config) (*Lab, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &Lab{
		cfg:    *config,
		logger: logutil.OrDiscard(config.Logger),
		source: config.Source,
		sink:   config.Sink,
	}
	if l.source == nil {
		l.source = wavio.FileIO{}
	}
	if l.sink == nil {
		l.sink = wavio.FileIO{}
	}
	return l, nil
}

// Config returns a copy of the configuration.
func (l *Lab) Config() Config { return l.cfg }

// Estimate returns the taps of the system mapping input to reference.
// The shorter of the two series bounds the samples used.
func (l *Lab) Estimate(input, reference linalg.Reader) (*linalg.Vector, error) {
	h, _, err := l.estimate(input, reference, false)
	return h, err
}

func (l *Lab) estimate(input, reference linalg.Reader, traced bool) (*linalg.Vector, *linalg.Matrix, error) {
	n := min(input.Len(), reference.Len())
	if n < l.cfg.Taps {
		return nil, nil, fmt.Errorf("%w: %d usable samples for %d taps (input %d, reference %d)",
			ErrInvalidInput, n, l.cfg.Taps, input.Len(), reference.Len())
	}

	l.logger.WithFields(logrus.Fields{
		"solver":  l.cfg.Solver.String(),
		"taps":    l.cfg.Taps,
		"samples": n,
	}).Debug("filterlab: estimating")

	if l.cfg.Solver == SolverNormalEquation {
		h, err := rls.SolveNormal(input, reference, l.cfg.Taps)
		if err != nil {
			return nil, nil, fmt.Errorf("normal equation: %w", err)
		}
		return h, nil, nil
	}

	opts := []rls.Option{rls.WithLogger(l.logger)}
	if traced {
		opts = append(opts, rls.WithTrace())
	}
	est, err := rls.New(rls.Config{Taps: l.cfg.Taps, Regularization: l.cfg.Regularization}, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := est.Process(input, reference, n); err != nil {
		return nil, nil, err
	}
	return est.Weights(), est.Trace(), nil
}

// EstimateChannels estimates one set of taps per row of input against the
// shared reference. Row r of the result holds the taps of channel r.
func (l *Lab) EstimateChannels(input *linalg.Matrix, reference linalg.Reader) (*linalg.Matrix, error) {
	channels := input.Rows()
	if channels == 0 || channels > maxChannels {
		return nil, fmt.Errorf("%w: channel count must be in [1, %d], got %d",
			ErrInvalidInput, maxChannels, channels)
	}

	out := linalg.NewMatrix(channels, l.cfg.Taps)
	var err error
	if l.cfg.EnableParallel && channels > 1 {
		err = l.estimateParallel(out, input, reference)
	} else {
		err = l.estimateSequential(out, input, reference)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// estimateParallel runs one estimator per channel concurrently. Each
// goroutine writes only its own row of out.
func (l *Lab) estimateParallel(out, input *linalg.Matrix, reference linalg.Reader) error {
	var wg sync.WaitGroup
	var estimateErr error
	var errMu sync.Mutex

	for ch := range input.Rows() {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			h, err := l.Estimate(input.Row(channel), reference)
			if err != nil {
				errMu.Lock()
				if estimateErr == nil {
					estimateErr = fmt.Errorf("estimation failed on channel %d: %w", channel, err)
				}
				errMu.Unlock()
				return
			}
			out.SetRow(channel, h)
		}(ch)
	}
	wg.Wait()

	return estimateErr
}

// estimateSequential processes channels one by one.
func (l *Lab) estimateSequential(out, input *linalg.Matrix, reference linalg.Reader) error {
	for ch := range input.Rows() {
		h, err := l.Estimate(input.Row(ch), reference)
		if err != nil {
			return fmt.Errorf("estimation failed on channel %d: %w", ch, err)
		}
		out.SetRow(ch, h)
	}
	return nil
}
