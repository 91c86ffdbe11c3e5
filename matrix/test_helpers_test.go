// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for storage and kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matlab/builder"
	"github.com/katalvlaran/matlab/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions, so
// converters under test take their At-based fallback path.
type hide struct{ matrix.Matrix }

// MustCompressed builds an empty compressed matrix or fails the test.
func MustCompressed(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Compressed {
	t.Helper()
	m, err := matrix.NewCompressed(r, c, opts...)
	if err != nil {
		t.Fatalf("NewCompressed(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRaw adopts raw arrays (interpreted per opts) or fails the test.
func MustRaw(t testing.TB, r, c int, values []float64, indices, offsets []int, opts ...matrix.Option) *matrix.Compressed {
	t.Helper()
	m, err := matrix.NewCompressedFromRaw(r, c, values, indices, offsets, opts...)
	if err != nil {
		t.Fatalf("NewCompressedFromRaw(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds an r×c Conventional from a row-major literal or fails the test.
func MustRows(t testing.TB, r, c int, vals []float64) *matrix.Conventional {
	t.Helper()
	d, err := matrix.NewConventionalFromRows(r, c, vals)
	if err != nil {
		t.Fatalf("NewConventionalFromRows(%d,%d): %v", r, c, err)
	}

	return d
}

// MustSet sets m(i,j)=v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RowMajorOf materializes any Matrix and returns its row-major elements.
func RowMajorOf(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	d, err := matrix.ToConventional(m)
	if err != nil {
		t.Fatalf("ToConventional: %v", err)
	}

	return d.RowMajor()
}

// RandomGeneral builds a seeded General matrix with unique coordinates and
// integer values in [1,9] (exact arithmetic in assertions).
func RandomGeneral(t testing.TB, r, c int, density float64, seed int64, opts ...matrix.Option) *matrix.Compressed {
	t.Helper()
	count := int(density * float64(r*c))
	entries, err := builder.RandomTriplets(r, c, count, builder.WithSeed(seed), builder.WithIntegerValues(9))
	if err != nil {
		t.Fatalf("RandomTriplets(%d,%d,%d): %v", r, c, count, err)
	}
	m, err := matrix.FromTriplets(r, c, entries, opts...)
	if err != nil {
		t.Fatalf("FromTriplets(%d,%d): %v", r, c, err)
	}

	return m
}

// sample5x3 is the 5×3 fixture used across storage tests (row-major):
//
//	0 0 0
//	1 0 0
//	0 0 0
//	0 2 0
//	0 3 4
func sample5x3(t testing.TB, opts ...matrix.Option) *matrix.Compressed {
	t.Helper()
	d := MustRows(t, 5, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 0, 0,
		0, 2, 0,
		0, 3, 4,
	})
	m, err := matrix.FromConventional(d, opts...)
	if err != nil {
		t.Fatalf("FromConventional: %v", err)
	}

	return m
}

// sample5x7 is the raw 5×7 fixture with five entries in columns 2, 3, 5, 6.
func sample5x7(t testing.TB) *matrix.Compressed {
	t.Helper()

	return MustRaw(t, 5, 7,
		[]float64{1, 2, 3, 4, 5},
		[]int{1, 0, 3, 1, 4},
		[]int{0, 0, 0, 1, 2, 2, 3, 5})
}
