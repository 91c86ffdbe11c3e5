// SPDX-License-Identifier: MIT

// Package matrix - Compressed sparse storage (CSC / CSR) & safe accessors.
//
// Purpose:
//   - Store only nonzero elements, grouped by the major axis (columns for the
//     Column format, rows for the Row format), sorted by the minor index.
//   - Keep every storage invariant after every mutation; a failed Set leaves
//     the matrix untouched (validate-then-apply).
//   - Carry a Variant tag (General / Lower / Upper / Symmetric) that decides
//     which coordinates are physically stored and how the rest is derived.
//
// Layout (Column format):
//
//	values  = [v0 v1 v2 ...]          nonzero values, column by column
//	indices = [r0 r1 r2 ...]          row index of each value, ascending per column
//	offsets = [0 o1 o2 ... nnz]       column j owns values[offsets[j]:offsets[j+1]]
//
// The Row format is the same with rows and columns swapped; every method
// translates (row, col) into (major, minor) through toStorage/fromStorage.
//
// Complexity quicksheet:
//   - At: O(log nnz_major); Set overwrite: O(log nnz_major);
//     Set insert/remove: O(nnz + major) (shift + offset update); NonZeros: O(1).

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// compressedErrorf wraps an error with a uniform Compressed context.
func compressedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Compressed.%s(%d,%d): %w", method, row, col, err)
}

// Compressed is a sparse matrix in compressed-column or compressed-row form.
// The zero value is not usable; construct with Zero or NewCompressed.
type Compressed struct {
	r, c    int
	variant Variant
	format  Format

	values  []float64 // nonzero values grouped by major index
	indices []int     // minor index per value (row for Column, col for Row)
	offsets []int     // len == major+1; offsets[major] == nnz

	validateNaNInf bool    // reject NaN/Inf in Set
	zeroTol        float64 // |v| <= zeroTol counts as zero
}

var (
	_ Matrix       = (*Compressed)(nil)
	_ fmt.Stringer = (*Compressed)(nil)
)

// Zero returns an empty rows×cols matrix of the General variant in the
// Column format. Shapes with a zero dimension are valid.
//
// Errors:
//   - ErrBadShape (negative dimension or rows*cols overflow).
//
// Complexity:
//   - Time O(cols), Space O(cols) for the offsets.
func Zero(rows, cols int) (*Compressed, error) {
	return NewCompressed(rows, cols)
}

// NewCompressed returns an empty rows×cols matrix configured by opts
// (WithVariant, WithFormat, WithCapacity, WithZeroTolerance, WithValidateNaNInf).
//
// Errors:
//   - ErrBadShape for an invalid shape.
//   - ErrShapeMismatch for a non-square Symmetric matrix.
//
// Complexity:
//   - Time O(major), Space O(major + capacity).
func NewCompressed(rows, cols int, opts ...Option) (*Compressed, error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("Compressed.%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)
	if o.variant == Symmetric && rows != cols {
		return nil, fmt.Errorf("Compressed.%s: symmetric %s: %w", ctxNew, shape, ErrShapeMismatch)
	}

	return newCompressed(rows, cols, o), nil
}

// newCompressed allocates an empty matrix; shape and variant are trusted.
func newCompressed(rows, cols int, o Options) *Compressed {
	m := &Compressed{
		r:              rows,
		c:              cols,
		variant:        o.variant,
		format:         o.format,
		validateNaNInf: o.validateNaNInf,
		zeroTol:        o.zeroTol,
	}
	m.offsets = make([]int, m.majorDim()+1)
	if o.capacity > 0 {
		m.values = make([]float64, 0, o.capacity)
		m.indices = make([]int, 0, o.capacity)
	}

	return m
}

// options reconstructs the Options this matrix was built with, so derived
// matrices inherit its policy.
func (m *Compressed) options() Options {
	return Options{
		variant:        m.variant,
		format:         m.format,
		validateNaNInf: m.validateNaNInf,
		zeroTol:        m.zeroTol,
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Compressed) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Compressed) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Compressed) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Variant returns the storage region tag.
func (m *Compressed) Variant() Variant { return m.variant }

// Format returns the compression orientation.
func (m *Compressed) Format() Format { return m.format }

// NonZeros returns the number of physically stored entries. Complexity: O(1).
func (m *Compressed) NonZeros() int { return m.offsets[len(m.offsets)-1] }

// Capacity returns the number of entries storable without reallocation.
func (m *Compressed) Capacity() int { return cap(m.values) }

func (m *Compressed) majorDim() int {
	if m.format == Row {
		return m.r
	}

	return m.c
}

func (m *Compressed) minorDim() int {
	if m.format == Row {
		return m.c
	}

	return m.r
}

// toStorage maps a logical coordinate onto (major, minor).
func (m *Compressed) toStorage(row, col int) (major, minor int) {
	if m.format == Row {
		return row, col
	}

	return col, row
}

// fromStorage maps (major, minor) back onto a logical coordinate.
func (m *Compressed) fromStorage(major, minor int) (row, col int) {
	if m.format == Row {
		return major, minor
	}

	return minor, major
}

// locate binary-searches the major slice for minor. It returns the slot
// holding it, or the slot where it would be inserted.
// Complexity: O(log nnz_major).
func (m *Compressed) locate(major, minor int) (int, bool) {
	lo, hi := m.offsets[major], m.offsets[major+1]
	k, found := slices.BinarySearch(m.indices[lo:hi], minor)

	return lo + k, found
}

func (m *Compressed) isZero(v float64) bool {
	return v <= m.zeroTol && v >= -m.zeroTol
}

func (m *Compressed) rejects(v float64) bool {
	return m.validateNaNInf && isNonFinite(v)
}

// At returns the logical value at (row, col).
//
// Behavior highlights:
//   - Outside the variant region a Symmetric matrix returns the stored mirror,
//     a triangular matrix returns 0 without touching storage.
//
// Errors:
//   - ErrOutOfBounds when row∉[0,rows) or col∉[0,cols).
//
// Complexity:
//   - Time O(log nnz_major), Space O(1).
func (m *Compressed) At(row, col int) (float64, error) {
	if err := validateIndex(m.r, m.c, row, col); err != nil {
		return 0, compressedErrorf(ctxAt, row, col, err)
	}

	return m.at(row, col), nil
}

// at is At without the bounds check.
func (m *Compressed) at(row, col int) float64 {
	if !m.variant.Stores(row, col) {
		if !m.variant.Mirrors() {
			return 0
		}
		row, col = col, row
	}
	major, minor := m.toStorage(row, col)
	if k, found := m.locate(major, minor); found {
		return m.values[k]
	}

	return 0
}

// Set inserts, updates or removes the entry at (row, col).
//
// Implementation:
//   - Stage 1 (validate): bounds, variant region, numeric policy.
//   - Stage 2 (locate): binary search in the major slice.
//   - Stage 3 (apply): exactly one of remove / overwrite / insert / no-op.
//
// Behavior highlights:
//   - A zero value (|v| <= tolerance) erases an existing entry and shifts all
//     later offsets down by one; with no entry it is a no-op.
//   - A nonzero value for an absent entry is inserted in sorted position and
//     all later offsets shift up by one.
//   - An existing entry is overwritten in place; offsets are untouched.
//   - Nothing is mutated when an error is returned.
//
// Errors:
//   - ErrOutOfBounds, ErrInvalidCoordinate (outside the variant region; for
//     Symmetric the caller must set the mirrored coordinate), ErrNaNInf.
//
// Complexity:
//   - Overwrite O(log nnz_major); insert/remove O(nnz + major).
func (m *Compressed) Set(row, col int, v float64) error {
	if err := validateIndex(m.r, m.c, row, col); err != nil {
		return compressedErrorf(ctxSet, row, col, err)
	}
	if !m.variant.Stores(row, col) {
		return compressedErrorf(ctxSet, row, col, ErrInvalidCoordinate)
	}
	if m.rejects(v) {
		return compressedErrorf(ctxSet, row, col, ErrNaNInf)
	}

	major, minor := m.toStorage(row, col)
	k, found := m.locate(major, minor)
	zero := m.isZero(v)
	switch {
	case found && zero:
		m.remove(major, k)
	case found:
		m.values[k] = v
	case zero:
		// absent and zero: nothing to store
	default:
		m.insert(major, k, minor, v)
	}

	return nil
}

// insert places (minor, v) at slot k inside major and bumps later offsets.
func (m *Compressed) insert(major, k, minor int, v float64) {
	m.values = slices.Insert(m.values, k, v)
	m.indices = slices.Insert(m.indices, k, minor)
	for p := major + 1; p < len(m.offsets); p++ {
		m.offsets[p]++
	}
}

// remove erases slot k inside major and lowers later offsets.
func (m *Compressed) remove(major, k int) {
	m.values = slices.Delete(m.values, k, k+1)
	m.indices = slices.Delete(m.indices, k, k+1)
	for p := major + 1; p < len(m.offsets); p++ {
		m.offsets[p]--
	}
}

// Clone returns a deep copy with the same variant, format and policy.
// Complexity: O(nnz + major).
func (m *Compressed) Clone() Matrix {
	return m.clone()
}

func (m *Compressed) clone() *Compressed {
	cp := *m
	cp.values = slices.Clone(m.values)
	cp.indices = slices.Clone(m.indices)
	cp.offsets = slices.Clone(m.offsets)

	return &cp
}

// String renders a header followed by one "(i,j)=v" line per stored entry.
// Diagnostics only.
func (m *Compressed) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compressed(%s, %s, %s, nnz=%d)\n", m.Shape(), m.variant, m.format, m.NonZeros())
	m.Do(func(i, j int, v float64) bool {
		fmt.Fprintf(&b, "(%d,%d)=%g\n", i, j, v)
		return true
	})

	return b.String()
}

// Validate checks every storage invariant and reports ErrCorruptStorage with
// the first violation found. A matrix mutated only through this package's
// API always validates.
//
// Complexity:
//   - Time O(nnz + major), Space O(1).
func (m *Compressed) Validate() error {
	major, minor := m.majorDim(), m.minorDim()
	if len(m.offsets) != major+1 {
		return fmt.Errorf("Compressed.Validate: len(offsets)=%d, want %d: %w", len(m.offsets), major+1, ErrCorruptStorage)
	}
	if m.offsets[0] != 0 {
		return fmt.Errorf("Compressed.Validate: offsets[0]=%d: %w", m.offsets[0], ErrCorruptStorage)
	}
	nnz := m.offsets[major]
	if len(m.values) != nnz || len(m.indices) != nnz {
		return fmt.Errorf("Compressed.Validate: nnz=%d, len(values)=%d, len(indices)=%d: %w",
			nnz, len(m.values), len(m.indices), ErrCorruptStorage)
	}
	var p, k, row, col int
	for p = 0; p < major; p++ {
		lo, hi := m.offsets[p], m.offsets[p+1]
		if hi < lo {
			return fmt.Errorf("Compressed.Validate: offsets decrease at %d: %w", p, ErrCorruptStorage)
		}
		if hi > nnz {
			return fmt.Errorf("Compressed.Validate: offsets[%d]=%d exceeds nnz=%d: %w", p+1, hi, nnz, ErrCorruptStorage)
		}
		for k = lo; k < hi; k++ {
			if m.indices[k] < 0 || m.indices[k] >= minor {
				return fmt.Errorf("Compressed.Validate: index %d out of range at slot %d: %w", m.indices[k], k, ErrCorruptStorage)
			}
			if k > lo && m.indices[k] <= m.indices[k-1] {
				return fmt.Errorf("Compressed.Validate: indices not strictly increasing at slot %d: %w", k, ErrCorruptStorage)
			}
			row, col = m.fromStorage(p, m.indices[k])
			if m.isZero(m.values[k]) {
				return fmt.Errorf("Compressed.Validate: explicit zero at (%d,%d): %w", row, col, ErrCorruptStorage)
			}
			if !m.variant.Stores(row, col) {
				return fmt.Errorf("Compressed.Validate: (%d,%d) outside %s region: %w", row, col, m.variant, ErrCorruptStorage)
			}
		}
	}

	return nil
}
