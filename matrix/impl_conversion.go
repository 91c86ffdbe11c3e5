// SPDX-License-Identifier: MIT

// Package matrix - conversion protocol between representations.
//
// Purpose:
//   - Compressed → Conventional: zero buffer + one pass over stored entries.
//   - Conventional → Compressed: count pass + fill pass, allocation-exact.
//   - Matrix-level converters with concrete fast paths and an At-based
//     fallback for any other Matrix implementation.
//
// Behavior highlights:
//   - Results never share storage with their source (copy semantics).
//   - Round trip: for a General matrix C, FromConventional(C.ToConventional())
//     reproduces C's values, indices and offsets exactly, because both
//     directions walk the storage in sorted major/minor order.
//   - Converting into a non-General variant keeps only the variant's region;
//     the rest is dropped silently (lossy by design).

package matrix

import "fmt"

const (
	ctxToConventional   = "ToConventional"
	ctxFromConventional = "FromConventional"
	ctxToCompressed     = "ToCompressed"
)

// ToConventional materializes the logical matrix into a dense buffer.
//
// Behavior highlights:
//   - Symmetric off-diagonal entries populate both (i,j) and (j,i).
//   - Triangular variants do not mirror; outside their region the dense
//     buffer holds zero, exactly as At reports. Build a Symmetric matrix
//     from the same entries to get a mirrored dense copy.
//   - The numeric policy of m carries over to the result.
//
// Complexity:
//   - Time O(r*c + nnz), Space O(r*c).
func (m *Compressed) ToConventional() *Conventional {
	d := &Conventional{
		r:              m.r,
		c:              m.c,
		data:           make([]float64, m.r*m.c),
		validateNaNInf: m.validateNaNInf,
	}
	mirror := m.variant.Mirrors()
	rows := m.r
	major := m.majorDim()
	var p, k, row, col int
	for p = 0; p < major; p++ {
		for k = m.offsets[p]; k < m.offsets[p+1]; k++ {
			row, col = m.fromStorage(p, m.indices[k])
			d.data[col*rows+row] = m.values[k]
			if mirror && row != col {
				d.data[row*rows+col] = m.values[k] // transposed offset
			}
		}
	}

	return d
}

// FromConventional compresses d. Variant, format and policy come from opts.
//
// Implementation:
//   - Stage 1: validate (nil, Symmetric needs a square shape).
//   - Stage 2: count retained entries per major slice (rejects NaN/Inf).
//   - Stage 3: allocate exactly nnz slots and fill in major/minor order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(nnz + major).
func FromConventional(d *Conventional, opts ...Option) (*Compressed, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromConventional, ErrNilMatrix)
	}
	m, err := NewCompressed(d.r, d.c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromConventional, err)
	}

	major, minor := m.majorDim(), m.minorDim()
	at := func(p, q int) (row, col int, v float64) {
		row, col = m.fromStorage(p, q)
		return row, col, d.data[col*d.r+row]
	}

	var p, q, row, col int
	var v float64
	for p = 0; p < major; p++ {
		for q = 0; q < minor; q++ {
			row, col, v = at(p, q)
			if m.rejects(v) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromConventional, row, col, ErrNaNInf)
			}
			if !m.isZero(v) && m.variant.Stores(row, col) {
				m.offsets[p+1]++
			}
		}
	}
	for p = 1; p <= major; p++ {
		m.offsets[p] += m.offsets[p-1]
	}

	nnz := m.offsets[major]
	m.values = make([]float64, 0, nnz)
	m.indices = make([]int, 0, nnz)
	for p = 0; p < major; p++ {
		for q = 0; q < minor; q++ {
			row, col, v = at(p, q)
			if !m.isZero(v) && m.variant.Stores(row, col) {
				m.values = append(m.values, v)
				m.indices = append(m.indices, q)
			}
		}
	}

	return m, nil
}

// ToCompressed is the method form of FromConventional.
func (m *Conventional) ToCompressed(opts ...Option) (*Compressed, error) {
	return FromConventional(m, opts...)
}

// ToConventional converts any Matrix into a new Conventional.
//
// Implementation:
//   - Fast paths: *Compressed, *Conventional (clone), *Diagonal, *Band.
//   - Fallback: fixed column-major At loop. The result validates NaN/Inf
//     unless the source yielded a non-finite value.
//
// Errors:
//   - ErrNilMatrix; any error returned by a foreign At.
//
// Complexity:
//   - Time O(r*c) (+ nnz for sparse sources), Space O(r*c).
func ToConventional(src Matrix) (*Conventional, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToConventional, err)
	}
	switch t := src.(type) {
	case *Compressed:
		return t.ToConventional(), nil
	case *Conventional:
		return t.clone(), nil
	case *Diagonal:
		return t.ToConventional(), nil
	case *Band:
		return t.ToConventional(), nil
	}

	rows, cols := src.Rows(), src.Cols()
	d, err := NewConventional(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToConventional, err)
	}
	var i, j int
	var v float64
	finite := true
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if v, err = src.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxToConventional, err)
			}
			if isNonFinite(v) {
				finite = false
			}
			d.data[j*rows+i] = v
		}
	}
	// A strict result never holds NaN/Inf.
	d.validateNaNInf = DefaultValidateNaNInf && finite

	return d, nil
}

// ToCompressed converts any Matrix into a new Compressed configured by opts.
//
// Implementation:
//   - *Conventional: FromConventional directly.
//   - *Compressed with the requested variant: clone / ToFormat.
//   - *Band, *Diagonal: compressed directly from their own storage.
//   - Otherwise: materialize densely, then compress (the target variant's
//     region filter applies).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf.
//
// Complexity:
//   - O(nnz + major) for same-variant compressed input, O(r*c) otherwise.
func ToCompressed(src Matrix, opts ...Option) (*Compressed, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToCompressed, err)
	}
	switch t := src.(type) {
	case *Conventional:
		return FromConventional(t, opts...)
	case *Compressed:
		o := gatherOptions(opts...)
		// Stored values already satisfy a looser-or-equal policy.
		if o.variant == t.variant && o.zeroTol <= t.zeroTol && (t.validateNaNInf || !o.validateNaNInf) {
			out := t.ToFormat(o.format)
			out.validateNaNInf, out.zeroTol = o.validateNaNInf, o.zeroTol
			return out, nil
		}
	case *Band:
		return t.ToCompressed(opts...)
	case *Diagonal:
		return t.ToCompressed(opts...)
	}

	d, err := ToConventional(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToCompressed, err)
	}

	return FromConventional(d, opts...)
}
