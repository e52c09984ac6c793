package linalg

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-audio-filterlab/internal/testutil"
)

// randomMatrix returns an n×n matrix with a dominant diagonal, which keeps
// it comfortably invertible.
func randomMatrix(n int, seed uint64) *Matrix {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := NewMatrix(n, n)
	for i := range n {
		for j := range n {
			m.Set(i, j, rng.Float64()*2-1)
		}
		m.Set(i, i, m.At(i, i)+float64(n))
	}
	return m
}

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		assert.Equal(t, 1.0, Identity(n).Determinant(), "n=%d", n)
	}
}

func TestDeterminant_ClosedForms(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"4x4_upper_triangular", [][]float64{
			{2, 1, 1, 1},
			{0, 3, 1, 1},
			{0, 0, 4, 1},
			{0, 0, 0, 5},
		}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, tt.rows)
			assert.InDelta(t, tt.want, m.Determinant(), 1e-12)
		})
	}
}

func TestDeterminant_ZeroRow(t *testing.T) {
	m := randomMatrix(5, 1)
	m.Row(2).Fill(0)

	assert.Zero(t, m.Determinant())
}

func TestDeterminant_DegenerateShapes(t *testing.T) {
	assert.Zero(t, NewMatrix(0, 0).Determinant())
	assert.Zero(t, NewMatrix(2, 3).Determinant())
}

// TestDeterminant_AgreesWithGonum cross-checks cofactor expansion against
// gonum's LU based determinant.
func TestDeterminant_AgreesWithGonum(t *testing.T) {
	for n := 2; n <= 6; n++ {
		m := randomMatrix(n, uint64(n))
		want := mat.Det(m)
		assert.InDelta(t, want, m.Determinant(), 1e-9*max(1, abs(want)), "n=%d", n)
	}
}

func TestMinorAndCofactor(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	minor := m.Minor(0, 1)
	assert.Equal(t, []float64{4, 6, 7, 10}, minor.Flatten())
	assert.InDelta(t, -(4*10 - 6*7), m.Cofactor(0, 1), 1e-12)
	assert.True(t, mustMatrix(t, [][]float64{{5}}).Minor(0, 0).IsNull())
	assert.Panics(t, func() { m.Minor(3, 0) })
}

func TestInverse_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		m := randomMatrix(n, uint64(100+n))
		orig := m.Clone()

		inv, err := m.Inverse()
		require.NoError(t, err)

		prod, err := inv.Multiply(m)
		require.NoError(t, err)
		assert.True(t, prod.EqualApprox(Identity(n), testutil.InverseTolerance), "n=%d: A⁻¹A = %v", n, prod)
		assert.Equal(t, orig.Flatten(), m.Flatten(), "inverse must not modify its receiver")

		var want mat.Dense
		require.NoError(t, want.Inverse(m))
		assert.True(t, inv.EqualApprox(&want, testutil.InverseTolerance), "n=%d disagrees with gonum", n)
	}
}

func TestInverse_NeedsRowSwap(t *testing.T) {
	m := mustMatrix(t, [][]float64{{0, 1}, {1, 0}})

	inv, err := m.Inverse()

	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0}, inv.Flatten())
}

func TestInverse_Errors(t *testing.T) {
	singular := mustMatrix(t, [][]float64{{1, 2}, {2, 4}})
	_, err := singular.Inverse()
	assert.ErrorIs(t, err, ErrSingularMatrix)

	_, err = NewMatrix(2, 3).Inverse()
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	inv, err := NewMatrix(0, 0).Inverse()
	require.NoError(t, err)
	assert.True(t, inv.IsNull())
}
