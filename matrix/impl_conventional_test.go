// Package matrix_test contains unit tests for the Conventional (dense)
// implementation of the Matrix interface.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matlab/matrix"
)

// TestNewConventional covers shapes including zero dimensions.
func TestNewConventional(t *testing.T) {
	m, err := matrix.NewConventional(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 3}, m.Shape())
	assert.Equal(t, make([]float64, 6), m.ColumnMajor())

	e, err := matrix.NewConventional(0, 4)
	require.NoError(t, err)
	assert.Empty(t, e.ColumnMajor())

	_, err = matrix.NewConventional(-1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestConventional_Layouts checks that both literal orders land column-major.
func TestConventional_Layouts(t *testing.T) {
	byRows := MustRows(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, byRows.ColumnMajor())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, byRows.RowMajor())
	require.Equal(t, 6.0, MustAt(t, byRows, 1, 2))

	byCols, err := matrix.NewConventionalFromColumns(2, 3, []float64{1, 4, 2, 5, 3, 6})
	require.NoError(t, err)
	require.Equal(t, byRows.ColumnMajor(), byCols.ColumnMajor())

	_, err = matrix.NewConventionalFromColumns(2, 3, []float64{1})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.NewConventionalFromRows(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.NewConventionalFromRows(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewConventionalFromColumns(1, 2, []float64{math.Inf(1), 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	lax, err := matrix.NewConventionalFromRows(1, 2, []float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, lax, 0, 1)))
}

// TestConventional_AtSet covers bounds and policy.
func TestConventional_AtSet(t *testing.T) {
	m, err := matrix.NewConventional(2, 2)
	require.NoError(t, err)
	MustSet(t, m, 1, 0, 7)
	require.Equal(t, 7.0, MustAt(t, m, 1, 0))
	require.Equal(t, []float64{0, 7, 0, 0}, m.ColumnMajor())

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfBounds)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestConventional_CloneString covers deep copies and rendering.
func TestConventional_CloneString(t *testing.T) {
	m := MustRows(t, 2, 2, []float64{1, 2.5, 0, -1})
	c := m.Clone()
	MustSet(t, c, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}

// TestConventional_DoApply covers traversal order, early exit and staging.
func TestConventional_DoApply(t *testing.T) {
	m := MustRows(t, 2, 2, []float64{1, 2, 3, 4})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 3, 2}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+1) }))
	require.Equal(t, []float64{1, 2, 6, 8}, m.RowMajor())

	err := m.Apply(func(i, _ int, v float64) float64 {
		if i == 1 {
			return math.Inf(1)
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{1, 2, 6, 8}, m.RowMajor(), "Apply must be all-or-nothing")
}
