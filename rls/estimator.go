package rls

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-audio-filterlab/internal/logutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

// Config holds the estimator parameters.
type Config struct {
	// Taps is the number of filter weights M to estimate.
	Taps int

	// Regularization is the constant c of the initial P = I/c.
	// Must be finite and positive; DefaultRegularization is a good start.
	Regularization float64
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Taps <= 0 {
		return fmt.Errorf("%w: taps must be positive, got %d", ErrInvalidArgument, c.Taps)
	}
	if !(c.Regularization > 0) || math.IsInf(c.Regularization, 0) {
		return fmt.Errorf("%w: regularization must be finite and positive, got %g",
			ErrInvalidArgument, c.Regularization)
	}
	return nil
}

// Estimator is the recursive least squares state for one unknown system.
//
// It is not safe for concurrent use. Run one Estimator per goroutine.
type Estimator struct {
	taps    int
	p       *linalg.Matrix // inverse correlation estimate, M×M
	h       *linalg.Vector // weights, natural tap order
	u       *linalg.Vector // input history, newest first
	samples int

	// Scratch space reused by every update.
	pu *linalg.Vector // P·u, then the gain k
	up *linalg.Vector // uᵀ·P

	logger logrus.FieldLogger
	trace  *trace
}

// New returns an estimator with P = I/c and zero weights and history.
func New(cfg Config, opts ...Option) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := cfg.Taps
	p := linalg.Identity(m)
	p.DivScalar(cfg.Regularization)

	e := &Estimator{
		taps:   m,
		p:      p,
		h:      linalg.NewVector(m),
		u:      linalg.NewVector(m),
		pu:     linalg.NewVector(m),
		up:     linalg.NewVector(m),
		logger: logutil.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ProcessSample performs one update with input sample x and desired output
// d, and returns the a-priori error d - uᵀh observed before the update.
func (e *Estimator) ProcessSample(x, d float64) float64 {
	e.u.PushFront(x)

	// k = P·u / (1 + uᵀ·P·u)
	for i := range e.taps {
		e.pu.Set(i, e.p.Row(i).Dot(e.u))
	}
	denom := 1 + e.u.Dot(e.pu)
	k := e.pu
	k.DivScalar(denom)

	eta := d - e.u.Dot(e.h)
	e.h.AddScaled(eta, k)

	// P -= k·(uᵀ·P)
	e.up.Fill(0)
	for i := range e.taps {
		if ui := e.u.At(i); ui != 0 {
			e.up.AddScaled(ui, e.p.Row(i))
		}
	}
	for i := range e.taps {
		if ki := k.At(i); ki != 0 {
			e.p.Row(i).AddScaled(-ki, e.up)
		}
	}

	if e.trace != nil {
		e.trace.record(eta, d-e.u.Dot(e.h), d, k.Norm(), e.u.Norm())
	}
	e.samples++
	return eta
}

// Process feeds the first n samples of input and reference through
// ProcessSample. Arguments are validated before any state changes.
func (e *Estimator) Process(input, reference linalg.Reader, n int) error {
	if n < 0 || n > input.Len() || n > reference.Len() {
		return fmt.Errorf("%w: %d samples requested, input has %d, reference has %d",
			ErrInvalidArgument, n, input.Len(), reference.Len())
	}

	log := e.logger.WithFields(logrus.Fields{
		"taps":    e.taps,
		"samples": n,
	})
	log.Debug("rls: processing started")

	for i := range n {
		e.ProcessSample(input.At(i), reference.At(i))
		if (i+1)%ProgressInterval == 0 {
			log.WithFields(logrus.Fields{
				"done":     i + 1,
				"progress": percentScale * float64(i+1) / float64(n),
			}).Debug("rls: progress")
		}
	}

	log.WithField("total_samples", e.samples).Debug("rls: processing finished")
	return nil
}

// Taps returns the number of weights M.
func (e *Estimator) Taps() int { return e.taps }

// Samples returns the number of updates performed so far.
func (e *Estimator) Samples() int { return e.samples }

// Weights returns a copy of the current weight vector in natural tap order.
func (e *Estimator) Weights() *linalg.Vector { return e.h.Clone() }

// Covariance returns a copy of the current inverse correlation matrix P.
func (e *Estimator) Covariance() *linalg.Matrix { return e.p.Clone() }

// Trace returns the recorded diagnostics as a 6×Samples matrix whose rows
// are indexed by the Trace* constants. It returns nil unless the estimator
// was built WithTrace, and a null matrix before the first sample.
func (e *Estimator) Trace() *linalg.Matrix {
	if e.trace == nil {
		return nil
	}
	return e.trace.matrix()
}
