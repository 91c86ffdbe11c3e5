// SPDX-License-Identifier: MIT

// Package matrix - structural operations on compressed storage.
//
// Purpose:
//   - Adopt raw compressed arrays (with full invariant validation).
//   - Assemble from unordered triplets (COO), summing duplicates.
//   - Resize, filter (Retain), transpose and re-orient without going through
//     a dense buffer.
//
// Complexity quicksheet:
//   - NewCompressedFromRaw: O(nnz + major); FromTriplets: O(n log n);
//     Resize/Retain: O(nnz + major); Transpose/ToFormat: O(nnz + major).

package matrix

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	ctxFromRaw  = "NewCompressedFromRaw"
	ctxTriplets = "FromTriplets"
	ctxResize   = "Resize"
)

// NewCompressedFromRaw adopts copies of raw compressed arrays. Variant, format
// and policy come from opts; the arrays are interpreted in that format.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (non-square Symmetric),
//     ErrCorruptStorage (any invariant violation), ErrNaNInf.
//
// Complexity:
//   - Time O(nnz + major), Space O(nnz + major).
func NewCompressedFromRaw(rows, cols int, values []float64, indices, offsets []int, opts ...Option) (*Compressed, error) {
	m, err := NewCompressed(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRaw, err)
	}
	m.values = slices.Clone(values)
	m.indices = slices.Clone(indices)
	m.offsets = slices.Clone(offsets)
	if err = m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRaw, err)
	}
	for k, v := range m.values {
		if m.rejects(v) {
			return nil, fmt.Errorf("%s: slot %d: %w", ctxFromRaw, k, ErrNaNInf)
		}
	}

	return m, nil
}

// FromTriplets assembles a compressed matrix from unordered (row, col, value)
// triplets. Duplicated coordinates are summed in input order; sums that are
// zero under the tolerance are dropped.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (non-square Symmetric), ErrOutOfBounds,
//     ErrInvalidCoordinate (triplet outside the variant region), ErrNaNInf.
//
// Complexity:
//   - Time O(n log n + major), Space O(n + major).
func FromTriplets(rows, cols int, entries []Entry, opts ...Option) (*Compressed, error) {
	m, err := NewCompressed(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTriplets, err)
	}
	if err = m.assemble(entries); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTriplets, err)
	}

	return m, nil
}

// slot is a triplet expressed in storage coordinates.
type slot struct {
	major, minor int
	v            float64
}

// assemble fills an empty matrix from triplets; m is untouched on error.
func (m *Compressed) assemble(entries []Entry) error {
	slots := make([]slot, 0, len(entries))
	for _, e := range entries {
		if err := validateIndex(m.r, m.c, e.Row, e.Col); err != nil {
			return fmt.Errorf("(%d,%d): %w", e.Row, e.Col, err)
		}
		if !m.variant.Stores(e.Row, e.Col) {
			return fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrInvalidCoordinate)
		}
		if m.rejects(e.Value) {
			return fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrNaNInf)
		}
		major, minor := m.toStorage(e.Row, e.Col)
		slots = append(slots, slot{major: major, minor: minor, v: e.Value})
	}
	// Stable keeps duplicates in input order so their sum is reproducible.
	slices.SortStableFunc(slots, func(a, b slot) int {
		if c := cmp.Compare(a.major, b.major); c != 0 {
			return c
		}
		return cmp.Compare(a.minor, b.minor)
	})

	values := make([]float64, 0, len(slots))
	indices := make([]int, 0, len(slots))
	offsets := make([]int, m.majorDim()+1)
	for k := 0; k < len(slots); {
		cur := slots[k]
		sum := cur.v
		for k++; k < len(slots) && slots[k].major == cur.major && slots[k].minor == cur.minor; k++ {
			sum += slots[k].v
		}
		if m.isZero(sum) {
			continue
		}
		if m.rejects(sum) {
			return fmt.Errorf("sum at storage (%d,%d): %w", cur.major, cur.minor, ErrNaNInf)
		}
		values = append(values, sum)
		indices = append(indices, cur.minor)
		offsets[cur.major+1]++
	}
	for p := 1; p < len(offsets); p++ {
		offsets[p] += offsets[p-1]
	}
	m.values, m.indices, m.offsets = values, indices, offsets

	return nil
}

// Resize changes the shape in place. Shrinking drops the entries that fall
// outside the new shape; growing appends empty major slices.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch (Symmetric resized to a non-square shape).
//     The matrix is untouched on error.
//
// Complexity:
//   - Time O(nnz + major), Space O(major) when growing.
func (m *Compressed) Resize(rows, cols int) error {
	if err := (Shape{Rows: rows, Cols: cols}).Validate(); err != nil {
		return fmt.Errorf("Compressed.%s: %w", ctxResize, err)
	}
	if m.variant == Symmetric && rows != cols {
		return fmt.Errorf("Compressed.%s(%d,%d): symmetric: %w", ctxResize, rows, cols, ErrShapeMismatch)
	}
	if rows < m.r || cols < m.c {
		m.Retain(func(i, j int, _ float64) bool { return i < rows && j < cols })
	}
	m.r, m.c = rows, cols

	// Entries of dropped major slices are gone, so the tail offsets all equal nnz.
	nnz := m.NonZeros()
	want := m.majorDim() + 1
	if want <= len(m.offsets) {
		m.offsets = m.offsets[:want]
	} else {
		for len(m.offsets) < want {
			m.offsets = append(m.offsets, nnz)
		}
	}

	return nil
}

// Retain keeps the stored entries for which keep returns true and erases the
// rest in a single compaction pass. keep sees logical (row, col) coordinates
// of stored entries only.
//
// Complexity:
//   - Time O(nnz + major), Space O(1).
func (m *Compressed) Retain(keep func(i, j int, v float64) bool) {
	major := m.majorDim()
	w := 0
	start := m.offsets[0]
	var row, col int
	for p := 0; p < major; p++ {
		end := m.offsets[p+1] // read before the slot is overwritten
		m.offsets[p] = w
		for k := start; k < end; k++ {
			row, col = m.fromStorage(p, m.indices[k])
			if keep(row, col, m.values[k]) {
				m.values[w] = m.values[k]
				m.indices[w] = m.indices[k]
				w++
			}
		}
		start = end
	}
	m.offsets[major] = w
	m.values = m.values[:w]
	m.indices = m.indices[:w]
}

// Transpose returns mᵀ in the same format. Upper and Lower triangular swap;
// a Symmetric matrix is its own transpose and is cloned.
//
// Complexity:
//   - Time O(nnz + major + minor), Space O(nnz + minor).
func (m *Compressed) Transpose() *Compressed {
	if m.variant == Symmetric {
		return m.clone()
	}
	o := m.options()
	o.variant = m.variant.Transposed()
	dst := newCompressed(m.c, m.r, o)
	m.transposeStorage(dst)

	return dst
}

// ToFormat returns the same logical matrix compressed along the other axis
// (or a clone when f already matches).
//
// Complexity:
//   - Time O(nnz + major + minor), Space O(nnz + minor).
func (m *Compressed) ToFormat(f Format) *Compressed {
	if f == m.format {
		return m.clone()
	}
	o := m.options()
	o.format = f
	dst := newCompressed(m.r, m.c, o)
	m.transposeStorage(dst)

	return dst
}

// transposeStorage writes m's storage with major and minor swapped into dst,
// whose major dimension must equal m's minor dimension. Counting sort: the
// old major index becomes the new minor index and is visited in ascending
// order, so every new slice comes out sorted.
func (m *Compressed) transposeStorage(dst *Compressed) {
	nnz := m.NonZeros()
	for k := 0; k < nnz; k++ {
		dst.offsets[m.indices[k]+1]++
	}
	for p := 1; p < len(dst.offsets); p++ {
		dst.offsets[p] += dst.offsets[p-1]
	}
	dst.values = make([]float64, nnz)
	dst.indices = make([]int, nnz)
	next := slices.Clone(dst.offsets[:len(dst.offsets)-1])
	major := m.majorDim()
	for p := 0; p < major; p++ {
		for k := m.offsets[p]; k < m.offsets[p+1]; k++ {
			q := m.indices[k]
			dst.values[next[q]] = m.values[k]
			dst.indices[next[q]] = p
			next[q]++
		}
	}
}
