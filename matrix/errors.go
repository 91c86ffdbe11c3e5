// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with method
// context via %w) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for option constructors
// receiving nonsensical values (programmer errors).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Public methods wrap these sentinels with their name and the
// offending coordinates, e.g. "Compressed.Set(2,1): matrix: ...".
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> bounds -> variant region -> numeric policy.

var (
	// ErrBadShape is returned when a requested shape is invalid: a negative
	// dimension, or rows*cols overflowing the addressable index range.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfBounds indicates that a row or column index lies outside the
	// declared shape. At/Set MUST return this, not panic.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidCoordinate indicates that a coordinate is inside the shape but
	// outside the storage region of the matrix variant (e.g. below the diagonal
	// of an UpperTriangular matrix), or outside the band of a Band matrix.
	ErrInvalidCoordinate = errors.New("matrix: coordinate outside storage region")

	// ErrShapeMismatch indicates incompatible shapes between operands or between
	// a declared shape and a supplied buffer.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrCorruptStorage indicates that raw compressed arrays violate the storage
	// invariants (offsets, sorted indices, explicit zeros, variant region).
	ErrCorruptStorage = errors.New("matrix: corrupt compressed storage")
)
