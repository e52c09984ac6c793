package rls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-filterlab/internal/testutil"
	"github.com/tphakala/go-audio-filterlab/linalg"
)

func TestSolveNormal_RecoversTaps(t *testing.T) {
	h := []float64{0.4, -0.25, 0.1, 0.05, -0.02}
	x, d := unknownSystem(h, 300, 21)

	got, err := SolveNormal(x, d, len(h))

	require.NoError(t, err)
	testutil.AssertSliceInDelta(t, h, got.Values(), 1e-9)
}

func TestSolveNormal_UsesShorterSeries(t *testing.T) {
	h := []float64{1, 0.5}
	x, d := unknownSystem(h, 100, 4)
	short := d.Slice(0, 60)

	got, err := SolveNormal(x, short, len(h))

	require.NoError(t, err)
	testutil.AssertSliceInDelta(t, h, got.Values(), 1e-9)
}

// TestSolveNormal_AgreesWithRecursiveEstimate verifies that the batch and
// recursive fits land on the same taps.
func TestSolveNormal_AgreesWithRecursiveEstimate(t *testing.T) {
	h := []float64{0.9, -0.4, 0.2}
	x, d := unknownSystem(h, 5000, 13)

	batch, err := SolveNormal(x, d, len(h))
	require.NoError(t, err)

	e := newEstimator(t, len(h))
	require.NoError(t, e.Process(x, d, x.Len()))

	testutil.AssertSliceInDelta(t, batch.Values(), e.Weights().Values(), 1e-5)
}

func TestSolveNormal_Errors(t *testing.T) {
	x := linalg.VectorOf(1, 2, 3)

	_, err := SolveNormal(x, x, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SolveNormal(x, x, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	silent := linalg.NewVector(10)
	_, err = SolveNormal(silent, silent, 2)
	assert.ErrorIs(t, err, linalg.ErrSingularMatrix)
}
