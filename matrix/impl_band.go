// SPDX-License-Identifier: MIT

// Package matrix - Band storage in the LAPACK column layout.
//
// A rows×cols band matrix with kl subdiagonals and ku superdiagonals keeps
// kl+ku+1 slots per column. Within column j, slot ku+i-j holds element (i,j):
// the first slot is the uppermost superdiagonal, the last one the lowest
// subdiagonal.
//
//	data[j*(kl+ku+1) + ku + i - j] == A(i,j)   for  -ku <= i-j <= kl
//
// Slots that fall outside the matrix (above row 0 or below row rows-1) are
// padding: they are never read and Set never writes them.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

const ctxNewBandFromData = "NewBandFromData"

func bandErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Band.%s(%d,%d): %w", method, row, col, err)
}

// Band is a banded matrix.
type Band struct {
	r, c           int
	kl, ku         int       // sub- and superdiagonal counts
	data           []float64 // len == c*(kl+ku+1)
	validateNaNInf bool
}

var _ Matrix = (*Band)(nil)

// NewBand returns a zero rows×cols band matrix with kl subdiagonals and ku
// superdiagonals.
//
// Errors:
//   - ErrBadShape (negative dimension, kl or ku, or storage overflow).
func NewBand(rows, cols, kl, ku int, opts ...Option) (*Band, error) {
	n, err := bandLen(rows, cols, kl, ku)
	if err != nil {
		return nil, fmt.Errorf("Band.%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)

	return &Band{r: rows, c: cols, kl: kl, ku: ku, data: make([]float64, n), validateNaNInf: o.validateNaNInf}, nil
}

// NewBandFromData adopts a copy of data laid out column by column, kl+ku+1
// slots per column. Padding slots are copied but never read.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (len(data) != cols*(kl+ku+1)),
//     ErrNaNInf (in a non-padding slot).
func NewBandFromData(rows, cols, kl, ku int, data []float64, opts ...Option) (*Band, error) {
	n, err := bandLen(rows, cols, kl, ku)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewBandFromData, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxNewBandFromData, len(data), n, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)
	b := &Band{r: rows, c: cols, kl: kl, ku: ku, data: slices.Clone(data), validateNaNInf: o.validateNaNInf}
	var failure error
	b.do(func(i, j int, v float64) bool {
		if o.rejects(v) {
			failure = bandErrorf(ctxNewBandFromData, i, j, ErrNaNInf)
			return false
		}
		return true
	})
	if failure != nil {
		return nil, failure
	}

	return b, nil
}

// bandLen validates the geometry and returns the storage length.
func bandLen(rows, cols, kl, ku int) (int, error) {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return 0, err
	}
	if kl < 0 || ku < 0 {
		return 0, fmt.Errorf("kl=%d, ku=%d: %w", kl, ku, ErrBadShape)
	}
	width := kl + ku + 1
	if width <= 0 || (cols > 0 && width > math.MaxInt/cols) {
		return 0, fmt.Errorf("kl=%d, ku=%d, cols=%d: %w", kl, ku, cols, ErrBadShape)
	}

	return cols * width, nil
}

// Rows returns the row count.
func (b *Band) Rows() int { return b.r }

// Cols returns the column count.
func (b *Band) Cols() int { return b.c }

// Bandwidth returns the number of subdiagonals and superdiagonals.
func (b *Band) Bandwidth() (kl, ku int) { return b.kl, b.ku }

// Data returns a copy of the raw band storage.
func (b *Band) Data() []float64 { return slices.Clone(b.data) }

// inBand reports whether (i,j) lies on one of the stored diagonals.
func (b *Band) inBand(i, j int) bool {
	return i-j <= b.kl && j-i <= b.ku
}

func (b *Band) slot(i, j int) int {
	return j*(b.kl+b.ku+1) + b.ku + i - j
}

// At returns b(i,j); zero outside the band.
func (b *Band) At(i, j int) (float64, error) {
	if err := validateIndex(b.r, b.c, i, j); err != nil {
		return 0, bandErrorf(ctxAt, i, j, err)
	}
	if !b.inBand(i, j) {
		return 0, nil
	}

	return b.data[b.slot(i, j)], nil
}

// Set writes b(i,j).
//
// Errors:
//   - ErrOutOfBounds, ErrInvalidCoordinate (outside the band, any value),
//     ErrNaNInf.
func (b *Band) Set(i, j int, v float64) error {
	if err := validateIndex(b.r, b.c, i, j); err != nil {
		return bandErrorf(ctxSet, i, j, err)
	}
	if !b.inBand(i, j) {
		return bandErrorf(ctxSet, i, j, ErrInvalidCoordinate)
	}
	if b.validateNaNInf && isNonFinite(v) {
		return bandErrorf(ctxSet, i, j, ErrNaNInf)
	}
	b.data[b.slot(i, j)] = v

	return nil
}

// Clone returns a deep copy.
func (b *Band) Clone() Matrix {
	cp := *b
	cp.data = slices.Clone(b.data)

	return &cp
}

// do visits every in-matrix band element column by column, row ascending,
// and stops when f returns false.
func (b *Band) do(f func(i, j int, v float64) bool) {
	var i, j, lo, hi int
	for j = 0; j < b.c; j++ {
		lo, hi = max(0, j-b.ku), min(b.r-1, j+b.kl)
		for i = lo; i <= hi; i++ {
			if !f(i, j, b.data[b.slot(i, j)]) {
				return
			}
		}
	}
}

// ToConventional expands the band into a dense matrix.
// Complexity: O(r*c) for the buffer plus O(c*(kl+ku+1)) for the copy.
func (b *Band) ToConventional() *Conventional {
	d := &Conventional{r: b.r, c: b.c, data: make([]float64, b.r*b.c), validateNaNInf: b.validateNaNInf}
	b.do(func(i, j int, v float64) bool {
		d.data[j*b.r+i] = v
		return true
	})

	return d
}

// ToCompressed compresses the band directly, skipping the dense buffer.
// Elements outside the requested variant's region are dropped.
//
// Errors:
//   - ErrShapeMismatch (Symmetric requested for a non-square band), ErrNaNInf.
//
// Complexity:
//   - Time O(c*(kl+ku+1) + r + c), Space O(nnz + major).
func (b *Band) ToCompressed(opts ...Option) (*Compressed, error) {
	o := gatherOptions(opts...)
	if o.variant == Symmetric && b.r != b.c {
		return nil, fmt.Errorf("Band.%s: symmetric %dx%d: %w", ctxToCompressed, b.r, b.c, ErrShapeMismatch)
	}
	target := o.format
	o.format = Column
	m := newCompressed(b.r, b.c, o)

	var failure error
	b.do(func(i, j int, v float64) bool {
		if m.rejects(v) {
			failure = bandErrorf(ctxToCompressed, i, j, ErrNaNInf)
			return false
		}
		if !m.isZero(v) && m.variant.Stores(i, j) {
			m.values = append(m.values, v)
			m.indices = append(m.indices, i)
			m.offsets[j+1]++
		}
		return true
	})
	if failure != nil {
		return nil, failure
	}
	for p := 1; p < len(m.offsets); p++ {
		m.offsets[p] += m.offsets[p-1]
	}
	if target != Column {
		return m.ToFormat(target), nil
	}

	return m, nil
}
