package rls

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-filterlab/internal/testutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

// unknownSystem returns white-noise input and the noiseless output of the
// FIR system h.
func unknownSystem(h []float64, n int, seed uint64) (x, d *linalg.Vector) {
	in := testutil.WhiteNoise(n, seed)
	return linalg.VectorOf(in...), linalg.VectorOf(testutil.Convolve(in, h)...)
}

func newEstimator(t *testing.T, taps int, opts ...Option) *Estimator {
	t.Helper()
	e, err := New(Config{Taps: taps, Regularization: DefaultRegularization}, opts...)
	require.NoError(t, err)
	return e
}

func TestNew_InitialState(t *testing.T) {
	e := newEstimator(t, 3)

	assert.Equal(t, 3, e.Taps())
	assert.Zero(t, e.Samples())
	assert.Equal(t, []float64{0, 0, 0}, e.Weights().Values())

	p := e.Covariance()
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1 / DefaultRegularization
			}
			assert.InDelta(t, want, p.At(i, j), 1e-9)
		}
	}
	assert.Nil(t, e.Trace())
}

func TestNew_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero_taps", Config{Taps: 0, Regularization: 1}},
		{"negative_taps", Config{Taps: -2, Regularization: 1}},
		{"zero_regularization", Config{Taps: 2, Regularization: 0}},
		{"negative_regularization", Config{Taps: 2, Regularization: -0.1}},
		{"nan_regularization", Config{Taps: 2, Regularization: math.NaN()}},
		{"inf_regularization", Config{Taps: 2, Regularization: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.cfg)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestEstimator_FirstSampleError(t *testing.T) {
	e := newEstimator(t, 4)

	eta := e.ProcessSample(0.5, 0.25)

	assert.Equal(t, 0.25, eta, "zero weights predict nothing")
	assert.Equal(t, 1, e.Samples())
}

// TestEstimator_ConvergesWithinTenTimesTaps verifies that a noiseless FIR
// system driven by white noise is identified after 10·M samples.
func TestEstimator_ConvergesWithinTenTimesTaps(t *testing.T) {
	h := []float64{0.5, -0.3, 0.2, 0.1, -0.05, 0.02, 0.01, -0.005}
	m := len(h)
	x, d := unknownSystem(h, 10*m, 42)

	e := newEstimator(t, m)
	require.NoError(t, e.Process(x, d, x.Len()))

	testutil.AssertSliceInDelta(t, h, e.Weights().Values(), 1e-3)
	assert.Equal(t, 10*m, e.Samples())
}

func TestEstimator_LongRunPrecision(t *testing.T) {
	h := []float64{1, -0.5, 0.25, 0.125}
	x, d := unknownSystem(h, 20000, 7)

	e := newEstimator(t, len(h))
	require.NoError(t, e.Process(x, d, x.Len()))

	testutil.AssertSliceInDelta(t, h, e.Weights().Values(), testutil.ConvergeTolerance)
	testutil.AssertNoNaNOrInf(t, e.Weights().Values(), "weights")
	testutil.AssertNoNaNOrInf(t, e.Covariance().Flatten(), "covariance")

	last := e.ProcessSample(0.3, 0.3*h[0]+x.At(x.Len()-1)*h[1]+x.At(x.Len()-2)*h[2]+x.At(x.Len()-3)*h[3])
	assert.InDelta(t, 0, last, 1e-5)
}

func TestEstimator_ProcessValidatesFirst(t *testing.T) {
	x := linalg.VectorOf(1, 2, 3)
	d := linalg.VectorOf(1, 2)

	tests := []struct {
		name string
		n    int
	}{
		{"negative", -1},
		{"beyond_input", 4},
		{"beyond_reference", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEstimator(t, 2)
			err := e.Process(x, d, tt.n)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, e.Samples(), "state must be untouched")
			assert.Equal(t, []float64{0, 0}, e.Weights().Values())
		})
	}

	e := newEstimator(t, 2)
	require.NoError(t, e.Process(x, d, 0))
	assert.Zero(t, e.Samples())
}

func TestEstimator_AccessorsReturnCopies(t *testing.T) {
	e := newEstimator(t, 2)
	e.ProcessSample(1, 1)

	w := e.Weights()
	w.Set(0, 99)
	p := e.Covariance()
	p.Set(0, 0, 99)

	assert.NotEqual(t, 99.0, e.Weights().At(0))
	assert.NotEqual(t, 99.0, e.Covariance().At(0, 0))
}

func TestEstimator_CovarianceStaysSymmetric(t *testing.T) {
	x, d := unknownSystem([]float64{0.3, 0.2, 0.1}, 500, 9)
	e := newEstimator(t, 3)
	require.NoError(t, e.Process(x, d, x.Len()))

	p := e.Covariance()
	testutil.AssertMatrixInDelta(t, p.T(), p, 1e-9)
}

func TestEstimator_Trace(t *testing.T) {
	h := []float64{0.7, -0.2}
	x, d := unknownSystem(h, 50, 3)

	e := newEstimator(t, len(h), WithTrace())
	assert.True(t, e.Trace().IsNull())

	require.NoError(t, e.Process(x, d, x.Len()))
	tr := e.Trace()

	rows, cols := tr.Dims()
	require.Equal(t, 6, rows)
	require.Equal(t, 50, cols)
	assert.Equal(t, 0, TraceError, "a-posteriori error is the first row")
	assert.Equal(t, 1, TraceEta)

	assert.InDelta(t, d.At(0), tr.At(TraceEta, 0), 1e-15)
	assert.InDelta(t, math.Abs(x.At(0)), tr.At(TraceInputNorm, 0), 1e-15)
	assert.InDelta(t, d.Dot(d), tr.At(TraceEnergy, cols-1), 1e-9)

	cost := tr.Row(TraceCost).Values()
	for i := 1; i < len(cost); i++ {
		assert.GreaterOrEqual(t, cost[i], cost[i-1], "cost must not decrease at %d", i)
	}
	for i := range cols {
		assert.LessOrEqual(t, math.Abs(tr.At(TraceError, i)), math.Abs(tr.At(TraceEta, i))+1e-12,
			"a-posteriori error exceeds a-priori error at %d", i)
	}
}

func TestEstimator_LogsProgress(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	n := 2 * ProgressInterval
	x, d := unknownSystem([]float64{1, 0.5}, n, 1)
	e := newEstimator(t, 2, WithLogger(logger))

	require.NoError(t, e.Process(x, d, n))

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, "rls: processing started", entries[0].Message)
	assert.Equal(t, "rls: progress", entries[1].Message)
	assert.Equal(t, ProgressInterval, entries[1].Data["done"])
	assert.Equal(t, "rls: processing finished", entries[3].Message)
	assert.Equal(t, n, entries[3].Data["total_samples"])
	for _, entry := range entries {
		assert.Equal(t, logrus.DebugLevel, entry.Level)
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	e := newEstimator(t, 1, WithLogger(nil))

	assert.NotNil(t, e.logger)
	assert.NoError(t, e.Process(linalg.VectorOf(1), linalg.VectorOf(1), 1))
}
