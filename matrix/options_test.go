// Package matrix_test contains unit tests for functional options: defaults,
// override order and panics on nonsensical values.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matlab/matrix"
)

// TestGatherOptions_Defaults verifies the documented defaults.
func TestGatherOptions_Defaults(t *testing.T) {
	v, f, capacity, strict, tol := matrix.ExportedGatherOptions()
	assert.Equal(t, matrix.DefaultVariant, v)
	assert.Equal(t, matrix.DefaultFormat, f)
	assert.Equal(t, matrix.DefaultCapacity, capacity)
	assert.Equal(t, matrix.DefaultValidateNaNInf, strict)
	assert.Equal(t, matrix.DefaultZeroTolerance, tol)
}

// TestGatherOptions_Order verifies that later options win and nil is skipped.
func TestGatherOptions_Order(t *testing.T) {
	v, f, capacity, strict, tol := matrix.ExportedGatherOptions(
		matrix.WithVariant(matrix.LowerTriangular),
		nil,
		matrix.WithNoValidateNaNInf(),
		matrix.WithVariant(matrix.Symmetric),
		matrix.WithFormat(matrix.Row),
		matrix.WithCapacity(16),
		matrix.WithZeroTolerance(0.5),
	)
	assert.Equal(t, matrix.Symmetric, v)
	assert.Equal(t, matrix.Row, f)
	assert.Equal(t, 16, capacity)
	assert.False(t, strict)
	assert.Equal(t, 0.5, tol)

	_, _, _, strict, _ = matrix.ExportedGatherOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, strict)
}

// TestOptions_Panics verifies fail-fast option constructors.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.WithVariant(matrix.Variant(9)) })
	require.Panics(t, func() { matrix.WithFormat(matrix.Format(2)) })
	require.Panics(t, func() { matrix.WithCapacity(-1) })
	require.Panics(t, func() { matrix.WithZeroTolerance(-1e-9) })
	require.Panics(t, func() { matrix.WithZeroTolerance(math.NaN()) })
	require.Panics(t, func() { matrix.WithZeroTolerance(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithZeroTolerance(0) })
}

// TestTypes_Strings covers Stringers and the variant region predicates.
func TestTypes_Strings(t *testing.T) {
	assert.Equal(t, "General", matrix.General.String())
	assert.Equal(t, "Symmetric", matrix.Symmetric.String())
	assert.Equal(t, "Variant(7)", matrix.Variant(7).String())
	assert.Equal(t, "Row", matrix.Row.String())
	assert.Equal(t, "Format(5)", matrix.Format(5).String())
	assert.Equal(t, matrix.Row, matrix.Column.Flip())
	assert.Equal(t, matrix.Column, matrix.Row.Flip())
	assert.Equal(t, "3x4", matrix.Shape{Rows: 3, Cols: 4}.String())

	assert.True(t, matrix.LowerTriangular.Stores(2, 1))
	assert.False(t, matrix.LowerTriangular.Stores(1, 2))
	assert.True(t, matrix.UpperTriangular.Stores(1, 2))
	assert.True(t, matrix.Symmetric.Stores(1, 1))
	assert.False(t, matrix.Symmetric.Stores(2, 1))
	assert.True(t, matrix.General.Stores(5, 0))
	assert.True(t, matrix.Symmetric.Mirrors())
	assert.False(t, matrix.UpperTriangular.Mirrors())
	assert.Equal(t, matrix.LowerTriangular, matrix.UpperTriangular.Transposed())
	assert.Equal(t, matrix.Symmetric, matrix.Symmetric.Transposed())
}
