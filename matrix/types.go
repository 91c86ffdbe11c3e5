// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every representation.
// This file contains ONLY domain-facing types (Shape, Entry, Variant, Format)
// and the public Matrix interface. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"fmt"
	"math"
)

// Shape is the (rows, columns) dimension pair of a matrix.
// Both dimensions are non-negative and Rows*Cols fits into an int.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// Validate reports ErrBadShape for negative dimensions or when Rows*Cols
// would overflow the index range used for storage offsets.
// Complexity: O(1).
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("Shape(%d,%d): %w", s.Rows, s.Cols, ErrBadShape)
	}
	if s.Cols != 0 && s.Rows > math.MaxInt/s.Cols {
		return fmt.Errorf("Shape(%d,%d): size overflows int: %w", s.Rows, s.Cols, ErrBadShape)
	}

	return nil
}

// Size returns Rows*Cols. Call Validate first for untrusted shapes.
func (s Shape) Size() int { return s.Rows * s.Cols }

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Entry is a single stored element of a sparse matrix.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// Variant is the structural category of a compressed matrix. It governs
// which coordinates may hold physically stored entries and how the logical
// value of the remaining coordinates is derived.
type Variant uint8

const (
	// General stores any coordinate.
	General Variant = iota
	// LowerTriangular stores row >= col; the rest is zero.
	LowerTriangular
	// UpperTriangular stores row <= col; the rest is zero.
	UpperTriangular
	// Symmetric stores the upper triangle (row <= col); (j,i) mirrors (i,j).
	Symmetric
)

var variantNames = [...]string{
	General:         "General",
	LowerTriangular: "LowerTriangular",
	UpperTriangular: "UpperTriangular",
	Symmetric:       "Symmetric",
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	if v.valid() {
		return variantNames[v]
	}

	return fmt.Sprintf("Variant(%d)", uint8(v))
}

func (v Variant) valid() bool { return v <= Symmetric }

// Stores reports whether (row, col) lies in the physical storage region.
// Pure function of the tag; bounds are checked by the caller.
func (v Variant) Stores(row, col int) bool {
	switch v {
	case LowerTriangular:
		return row >= col
	case UpperTriangular, Symmetric:
		return row <= col
	default:
		return true
	}
}

// Mirrors reports whether coordinates outside the region derive their value
// from the transposed coordinate (only Symmetric does).
func (v Variant) Mirrors() bool { return v == Symmetric }

// Transposed returns the variant of the transposed matrix.
func (v Variant) Transposed() Variant {
	switch v {
	case LowerTriangular:
		return UpperTriangular
	case UpperTriangular:
		return LowerTriangular
	default:
		return v
	}
}

// Format is the orientation of the compression.
type Format uint8

const (
	// Column is the compressed-column format: offsets per column, row indices.
	Column Format = iota
	// Row is the compressed-row format: offsets per row, column indices.
	Row
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Column:
		return "Column"
	case Row:
		return "Row"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

func (f Format) valid() bool { return f <= Row }

// Flip returns the other format.
func (f Format) Flip() Format {
	if f == Column {
		return Row
	}

	return Column
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Every representation in this package implements it; generic converters and
// validators consume it.
//
// Complexity notes: Rows/Cols are O(1); At/Set cost is representation-specific
// (O(1) dense, O(log nnz_col) lookup and O(nnz) insertion for compressed).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the logical element at position (i, j).
	// Returns ErrOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfBounds on invalid indices; representations with a
	// restricted storage region may also return ErrInvalidCoordinate.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
