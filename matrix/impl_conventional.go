// SPDX-License-Identifier: MIT

// Package matrix - Conventional storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide the dense baseline every conversion targets or sources from.
//   - Column-major layout (offset = j*rows + i) matches the compressed-column
//     orientation so conversions walk both buffers in the same order.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewConventional: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"
	ctxNew   = "New"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// conventionalErrorf wraps an error with a uniform Conventional context and
// callsite indices; preserves the sentinel via %w.
func conventionalErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Conventional.%s(%d,%d): %w", method, row, col, err)
}

// Conventional is a dense column-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal for either.
//   - data is a flat buffer of length r*c (offset = j*r + i).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply.
type Conventional struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous column-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

var (
	_ Matrix       = (*Conventional)(nil)
	_ fmt.Stringer = (*Conventional)(nil)
)

// NewConventional creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate the shape (non-negative, no overflow).
//   - Stage 2: allocate a zero-filled buffer and apply the numeric policy.
//
// Errors:
//   - ErrBadShape (negative dimension or r*c overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewConventional(rows, cols int, opts ...Option) (*Conventional, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("Conventional.%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)

	return &Conventional{
		r:              rows,
		c:              cols,
		data:           make([]float64, shape.Size()),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewConventionalFromColumns copies data, given in column-major order, into
// a new rows×cols matrix.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (len(data) != rows*cols),
//     ErrNaNInf (non-finite value under the policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewConventionalFromColumns(rows, cols int, data []float64, opts ...Option) (*Conventional, error) {
	m, err := NewConventional(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("Conventional.%s: len(data)=%d, want %d: %w",
			ctxNew, len(data), len(m.data), ErrShapeMismatch)
	}
	for k, v := range data {
		if m.rejects(v) {
			return nil, conventionalErrorf(ctxNew, k%rows, k/rows, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewConventionalFromRows copies data, given in row-major order (the way
// literals are usually written), into a new rows×cols matrix.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewConventionalFromRows(rows, cols int, data []float64, opts ...Option) (*Conventional, error) {
	m, err := NewConventional(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("Conventional.%s: len(data)=%d, want %d: %w",
			ctxNew, len(data), len(m.data), ErrShapeMismatch)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = data[i*cols+j]
			if m.rejects(v) {
				return nil, conventionalErrorf(ctxNew, i, j, ErrNaNInf)
			}
			m.data[j*rows+i] = v
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Conventional) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Conventional) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Conventional) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf bounds-checks (row,col) and returns the column-major offset.
func (m *Conventional) indexOf(row, col int) (int, error) {
	if err := validateIndex(m.r, m.c, row, col); err != nil {
		return 0, err
	}

	return col*m.r + row, nil
}

func (m *Conventional) rejects(v float64) bool {
	return m.validateNaNInf && isNonFinite(v)
}

// At returns the value at (row, col) or ErrOutOfBounds.
// Complexity: O(1).
func (m *Conventional) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, conventionalErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfBounds for bounds; ErrNaNInf for non-finite v under the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Conventional) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return conventionalErrorf(ctxSet, row, col, err)
	}
	if m.rejects(v) {
		return conventionalErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Conventional) Clone() Matrix {
	return m.clone()
}

func (m *Conventional) clone() *Conventional {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Conventional{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// ColumnMajor returns a copy of the backing buffer in column-major order.
func (m *Conventional) ColumnMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// RowMajor returns a copy of the elements in row-major order.
// Complexity: O(r*c).
func (m *Conventional) RowMajor() []float64 {
	out := make([]float64, len(m.data))
	var i, j int
	for j = 0; j < m.c; j++ {
		base := j * m.r
		for i = 0; i < m.r; i++ {
			out[i*m.c+j] = m.data[base+i]
		}
	}

	return out
}

// String renders rows as lines with comma-separated values (diagnostics only).
// Complexity: O(r*c).
func (m *Conventional) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[j*m.r+i]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element in column-major order and calls f(i,j,v); it stops
// early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Conventional) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for j = 0; j < m.c; j++ {
		base = j * m.r
		for i = 0; i < m.r; i++ {
			if !f(i, j, m.data[base+i]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, column-major.
//
// Behavior highlights:
//   - All-or-nothing: results are staged in a scratch buffer and committed
//     only when every value passes the numeric policy.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value and the policy is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the staging buffer.
func (m *Conventional) Apply(f func(i, j int, v float64) float64) error {
	staged := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for j = 0; j < m.c; j++ {
		base = j * m.r
		for i = 0; i < m.r; i++ {
			nv = f(i, j, m.data[base+i])
			if m.rejects(nv) {
				return conventionalErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+i] = nv
		}
	}
	m.data = staged

	return nil
}
