// SPDX-License-Identifier: MIT
// Package: matlab/builder
//
// impl_banded.go — deterministic constructors: Identity, Tridiagonal, Laplacian1D.
//
// Contract:
//   - n ≥ 0 (else ErrBadSize); n == 0 yields an empty 0×0 matrix.
//   - Entries outside the configured variant's region are skipped, so
//     WithMatrixOptions(matrix.WithVariant(matrix.UpperTriangular)) returns the
//     upper part of the same fixture.
//   - Zero coefficients are not stored.
//
// Complexity:
//   - Time O(n log n) (triplet assembly), Space O(n).

package builder

import (
	"github.com/katalvlaran/matlab/matrix"
)

const (
	laplacianDiag = 2.0
	laplacianOff  = -1.0
)

// Identity returns the n×n identity matrix.
// Complexity: O(n).
func Identity(n int, opts ...BuilderOption) (*matrix.Compressed, error) {
	if err := validateSize(MethodIdentity, n, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	m, err := matrix.NewIdentity(n, cfg.options()...)
	if err != nil {
		return nil, builderErrorf(MethodIdentity, err, "n=%d", n)
	}

	return m, nil
}

// Tridiagonal returns the n×n matrix with sub on the subdiagonal, diag on the
// diagonal and super on the superdiagonal.
func Tridiagonal(n int, sub, diag, super float64, opts ...BuilderOption) (*matrix.Compressed, error) {
	if err := validateSize(MethodTridiagonal, n, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	return tridiagonal(MethodTridiagonal, n, sub, diag, super, cfg.options())
}

// Laplacian1D returns the Symmetric n×n second-difference matrix
// tridiag(-1, 2, -1). The Symmetric variant overrides any variant passed via
// WithMatrixOptions; only the upper triangle is stored.
func Laplacian1D(n int, opts ...BuilderOption) (*matrix.Compressed, error) {
	if err := validateSize(MethodLaplacian1D, n, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	return tridiagonal(MethodLaplacian1D, n, laplacianOff, laplacianDiag, laplacianOff,
		cfg.options(matrix.WithVariant(matrix.Symmetric)))
}

// tridiagonal assembles the three diagonals through FromTriplets, keeping
// only the coordinates the target variant stores.
func tridiagonal(method string, n int, sub, diag, super float64, mopts []matrix.Option) (*matrix.Compressed, error) {
	probe, err := matrix.NewCompressed(n, n, mopts...)
	if err != nil {
		return nil, builderErrorf(method, err, "n=%d", n)
	}
	variant := probe.Variant()

	entries := make([]matrix.Entry, 0, 3*n)
	add := func(i, j int, v float64) {
		if v != 0 && variant.Stores(i, j) {
			entries = append(entries, matrix.Entry{Row: i, Col: j, Value: v})
		}
	}
	for j := 0; j < n; j++ {
		if j > 0 {
			add(j-1, j, super)
		}
		add(j, j, diag)
		if j+1 < n {
			add(j+1, j, sub)
		}
	}

	m, err := matrix.FromTriplets(n, n, entries, mopts...)
	if err != nil {
		return nil, builderErrorf(method, err, "n=%d", n)
	}

	return m, nil
}
