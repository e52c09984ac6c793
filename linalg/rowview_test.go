package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowView_WritesThroughToMatrix(t *testing.T) {
	m := NewMatrix(2, 3)

	row := m.Row(1)
	row.Fill(2)
	row.Set(0, 5)

	assert.Equal(t, []float64{0, 0, 0, 5, 2, 2}, m.Flatten())
	assert.Equal(t, 3, row.Len())
	assert.Equal(t, 9.0, row.Sum())
}

func TestRowView_RowsAreContiguous(t *testing.T) {
	m := NewMatrix(3, 4)

	for i := range 3 {
		m.Row(i).Ramp(float64(i*4), 1)
	}

	for k, x := range m.Flatten() {
		assert.Equal(t, float64(k), x)
	}
}

func TestRowView_StaleAfterMatrixResize(t *testing.T) {
	m := NewMatrix(2, 2)
	row := m.Row(0)
	require.True(t, row.Valid())

	require.NoError(t, m.Resize(3, 3))

	assert.False(t, row.Valid())
	assert.PanicsWithError(t, "linalg: stale row view: issued at generation 0, owner at 1", func() {
		row.At(0)
	})
	assert.Panics(t, func() { row.Fill(1) })
	assert.Panics(t, func() { _ = row.Len() })

	fresh := m.Row(0)
	assert.True(t, fresh.Valid())
	assert.Equal(t, 3, fresh.Len())
}

func TestRowView_StaleAfterVectorResize(t *testing.T) {
	v := VectorOf(1, 2, 3, 4)
	view := v.View(1, 2)
	assert.Equal(t, []float64{2, 3}, view.Values())

	require.NoError(t, v.Resize(4))

	assert.Panics(t, func() { view.Sum() })
}

func TestRowView_VectorViewClamps(t *testing.T) {
	v := VectorOf(1, 2, 3)

	assert.Equal(t, 1, v.View(2, 10).Len())
	assert.Equal(t, 0, v.View(3, 1).Len())
	assert.Equal(t, 0, v.View(-1, 1).Len())
}

func TestRowView_ArithmeticAgainstReaders(t *testing.T) {
	m, err := MatrixOf([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	r0 := m.Row(0)
	r0.Add(m.Row(1))
	assert.Equal(t, []float64{5, 7, 9}, r0.Values())

	r0.Sub(VectorOf(5, 7))
	assert.Equal(t, []float64{0, 0, 9}, r0.Values())

	r1 := m.Row(1)
	assert.Equal(t, 32.0, r1.Dot(VectorOf(1, 2, 3)))
	assert.Equal(t, 6.0, r1.Max())
	assert.Equal(t, 0, r1.MinIndex())

	r1.MulScalar(2)
	assert.Equal(t, []float64{8, 10, 12}, m.Row(1).Values())

	c := r1.Clone()
	c.Set(0, -1)
	assert.Equal(t, 8.0, m.At(1, 0), "clone must not alias the matrix")
}

func TestRowView_PushBackOnMatrixRow(t *testing.T) {
	m, err := MatrixOf([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	evicted := m.Row(0).PushBack(9)

	assert.Equal(t, 1.0, evicted)
	assert.Equal(t, []float64{2, 3, 9, 4, 5, 6}, m.Flatten(), "shift stays inside the row")
}
