// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer concrete *Compressed / *Conventional operands for Equal to unlock
//     the storage fast paths.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewIdentity returns the n×n identity in compressed form. opts configure
// the result (any variant holds the identity).
// Complexity: O(n).
func NewIdentity(n int, opts ...Option) (*Compressed, error) {
	m, err := NewCompressed(n, n, append([]Option{WithCapacity(max(n, 0))}, opts...)...)
	if err != nil {
		return nil, matrixErrorf("NewIdentity", err)
	}
	if m.isZero(1) {
		return m, nil
	}
	for i := 0; i < n; i++ {
		m.values = append(m.values, 1)
		m.indices = append(m.indices, i)
		m.offsets[i+1] = i + 1
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns an empty compressed matrix with the shape of m.
// Complexity: O(major).
func ZerosLike(m Matrix, opts ...Option) (*Compressed, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewCompressed(m.Rows(), m.Cols(), opts...)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
// Complexity: O(n).
func IdentityLike(m Matrix, opts ...Option) (*Compressed, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), opts...)
}

// ---------- Compositions ----------

// Symmetrize returns (m + mᵀ)/2 as a Symmetric compressed matrix.
// Composition: Transpose → Add → Scale, then the lower triangle is dropped.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (non-square m).
//
// Complexity:
//   - Time O(nnz log nnz + n).
func Symmetrize(m *Compressed) (*Compressed, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	if m.variant == Symmetric {
		return m.clone(), nil
	}
	g, err := m.general()
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(g, g.Transpose())
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	half, err := Scale(sum, 0.5)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	half.Retain(func(i, j int, _ float64) bool { return i <= j })
	half.variant = Symmetric

	return half, nil
}

// RowSums returns r where r[i] = Σ_j m(i,j).
// Implementation: MulVec(m, ones(cols)).
// Complexity: O(nnz + rows).
func RowSums(m *Compressed) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.c)
	for j := range ones {
		ones[j] = 1
	}

	return MulVec(m, ones)
}

// ColSums returns c where c[j] = Σ_i m(i,j).
// Implementation: RowSums(mᵀ).
// Complexity: O(nnz + rows + cols).
func ColSums(m *Compressed) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums(m.Transpose())
}

// ---------- Comparison ----------

// Equal reports whether a and b have the same shape and the same logical
// values everywhere. Variant and format do not matter: an Upper matrix equals
// a General matrix holding the same upper triangle. NaN is unequal to itself.
//
// Implementation:
//   - *Compressed pair: check every logical entry of each side against At
//     of the other, O((nnz_a + nnz_b) log nnz).
//   - Otherwise: dense comparison through ToConventional.
//
// Errors:
//   - ErrNilMatrix; shape differences are a false result, not an error.
func Equal(a, b Matrix) (bool, error) {
	return equalWith(a, b, 0, "Equal")
}

// EqualApprox is Equal with |a(i,j) - b(i,j)| <= eps tolerated. A negative
// eps is treated as |eps|.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (NaN eps).
func EqualApprox(a, b Matrix, eps float64) (bool, error) {
	if math.IsNaN(eps) {
		return false, matrixErrorf("EqualApprox", fmt.Errorf("eps: %w", ErrNaNInf))
	}

	return equalWith(a, b, math.Abs(eps), "EqualApprox")
}

func equalWith(a, b Matrix, eps float64, tag string) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(tag, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	near := func(x, y float64) bool {
		return x == y || math.Abs(x-y) <= eps
	}

	ca, okA := a.(*Compressed)
	cb, okB := b.(*Compressed)
	if okA && okB {
		same := true
		check := func(src, other *Compressed) {
			src.doLogical(func(i, j int, v float64) {
				if same && !near(v, other.at(i, j)) {
					same = false
				}
			})
		}
		check(ca, cb)
		check(cb, ca)

		return same, nil
	}

	da, err := ToConventional(a)
	if err != nil {
		return false, matrixErrorf(tag, err)
	}
	db, err := ToConventional(b)
	if err != nil {
		return false, matrixErrorf(tag, err)
	}
	for idx := range da.data {
		if !near(da.data[idx], db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
