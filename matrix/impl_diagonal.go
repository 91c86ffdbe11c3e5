// SPDX-License-Identifier: MIT

// Package matrix - Diagonal storage.
//
// A rows×cols diagonal matrix stores min(rows, cols) values; every other
// element is zero and cannot be written. It converts losslessly to Band
// (zero sub/superdiagonals), Conventional and Compressed, and scales the
// columns of a compressed matrix in MulDiagonal.

package matrix

import (
	"fmt"

	"golang.org/x/exp/slices"
)

func diagonalErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Diagonal.%s(%d,%d): %w", method, row, col, err)
}

// Diagonal is a rectangular diagonal matrix.
type Diagonal struct {
	r, c           int
	data           []float64 // len == min(r, c)
	validateNaNInf bool
}

var _ Matrix = (*Diagonal)(nil)

// NewDiagonal builds a rows×cols diagonal matrix from a copy of values.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (len(values) != min(rows, cols)), ErrNaNInf.
//
// Complexity:
//   - Time O(min(r,c)), Space O(min(r,c)).
func NewDiagonal(rows, cols int, values []float64, opts ...Option) (*Diagonal, error) {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return nil, fmt.Errorf("Diagonal.%s: %w", ctxNew, err)
	}
	if n := min(rows, cols); len(values) != n {
		return nil, fmt.Errorf("Diagonal.%s: len(values)=%d, want %d: %w", ctxNew, len(values), n, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)
	for i, v := range values {
		if o.rejects(v) {
			return nil, diagonalErrorf(ctxNew, i, i, ErrNaNInf)
		}
	}

	return &Diagonal{r: rows, c: cols, data: slices.Clone(values), validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count.
func (d *Diagonal) Rows() int { return d.r }

// Cols returns the column count.
func (d *Diagonal) Cols() int { return d.c }

// Len returns the number of diagonal slots, min(rows, cols).
func (d *Diagonal) Len() int { return len(d.data) }

// Values returns a copy of the diagonal.
func (d *Diagonal) Values() []float64 { return slices.Clone(d.data) }

// At returns d(i,j): the diagonal value when i == j, zero otherwise.
func (d *Diagonal) At(i, j int) (float64, error) {
	if err := validateIndex(d.r, d.c, i, j); err != nil {
		return 0, diagonalErrorf(ctxAt, i, j, err)
	}
	if i != j {
		return 0, nil
	}

	return d.data[i], nil
}

// Set writes the diagonal element (i,i).
//
// Errors:
//   - ErrOutOfBounds, ErrInvalidCoordinate (i != j), ErrNaNInf.
func (d *Diagonal) Set(i, j int, v float64) error {
	if err := validateIndex(d.r, d.c, i, j); err != nil {
		return diagonalErrorf(ctxSet, i, j, err)
	}
	if i != j {
		return diagonalErrorf(ctxSet, i, j, ErrInvalidCoordinate)
	}
	if d.validateNaNInf && isNonFinite(v) {
		return diagonalErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.data[i] = v

	return nil
}

// Clone returns a deep copy.
func (d *Diagonal) Clone() Matrix {
	return &Diagonal{r: d.r, c: d.c, data: slices.Clone(d.data), validateNaNInf: d.validateNaNInf}
}

// ToBand returns the equivalent band matrix with no sub- or superdiagonals.
// Complexity: O(min(r,c)).
func (d *Diagonal) ToBand() *Band {
	return &Band{r: d.r, c: d.c, kl: 0, ku: 0, data: d.bandData(), validateNaNInf: d.validateNaNInf}
}

// bandData lays the diagonal out in band storage: one slot per column.
func (d *Diagonal) bandData() []float64 {
	out := make([]float64, d.c)
	copy(out, d.data)

	return out
}

// ToConventional materializes the diagonal densely.
// Complexity: O(r*c).
func (d *Diagonal) ToConventional() *Conventional {
	return d.ToBand().ToConventional()
}

// ToCompressed returns the diagonal as a compressed matrix configured by
// opts; zero diagonal values are not stored.
//
// Errors:
//   - ErrShapeMismatch (Symmetric requested for a non-square diagonal), ErrNaNInf.
//
// Complexity:
//   - Time O(min(r,c) + major), Space O(min(r,c) + major).
func (d *Diagonal) ToCompressed(opts ...Option) (*Compressed, error) {
	m, err := NewCompressed(d.r, d.c, opts...)
	if err != nil {
		return nil, fmt.Errorf("Diagonal.%s: %w", ctxToCompressed, err)
	}
	m.values = make([]float64, 0, len(d.data))
	m.indices = make([]int, 0, len(d.data))
	major := m.majorDim()
	for p := 0; p < major; p++ {
		if p < len(d.data) && m.rejects(d.data[p]) {
			return nil, diagonalErrorf(ctxToCompressed, p, p, ErrNaNInf)
		}
		if p < len(d.data) && !m.isZero(d.data[p]) {
			m.values = append(m.values, d.data[p])
			m.indices = append(m.indices, p)
		}
		m.offsets[p+1] = len(m.values)
	}

	return m, nil
}
