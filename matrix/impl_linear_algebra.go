// SPDX-License-Identifier: MIT
// Package matrix - sparse kernels over compressed storage.
//
// Purpose:
//   - Products of a compressed matrix with a diagonal, a dense matrix or a
//     vector, on either side where it makes sense.
//   - Sparse sum and scalar scaling that keep the result compressed.
//
// Notes:
//   - Every kernel validates shapes first and returns ErrShapeMismatch wrapped
//     with its op tag via matrixErrorf.
//   - Symmetric operands are expanded logically (each off-diagonal entry acts
//     at (i,j) and (j,i)); triangular operands are used as stored.
//   - Dense results are column-major Conventional matrices. The *Into forms
//     accumulate into an existing result (c += a·b) and leave it untouched on
//     error.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd               = "Add"
	opScale             = "Scale"
	opMulVec            = "MulVec"
	opMulDiagonal       = "MulDiagonal"
	opMulConventional   = "MulConventional"
	opConventionalMul   = "ConventionalMul"
	opMulConventionalTo = "MulConventionalInto"
	opConventionalMulTo = "ConventionalMulInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// general returns m with the General variant. Triangular storage is already
// valid General storage and is cloned with a new tag; a Symmetric matrix is
// expanded into both triangles. A General m is returned as is.
// Complexity: O(nnz) for triangular, O(nnz log nnz) for Symmetric.
func (m *Compressed) general() (*Compressed, error) {
	switch m.variant {
	case General:
		return m, nil
	case Symmetric:
		o := m.options()
		o.variant = General
		out := newCompressed(m.r, m.c, o)
		if err := out.assemble(m.logicalEntries()); err != nil {
			return nil, fmt.Errorf("expand %s: %w", m.variant, err)
		}

		return out, nil
	default:
		out := m.clone()
		out.variant = General

		return out, nil
	}
}

// MulDiagonal returns a·d, i.e. column j of a scaled by d(j,j). Columns of
// the result past min(d.Rows(), d.Cols()) are empty.
//
// Behavior highlights:
//   - The result keeps a's format and policy. Its variant is a's, except
//     that Symmetric becomes General (column scaling breaks symmetry).
//   - Products that land at or below the zero tolerance are dropped.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (a.Cols() != d.Rows()), ErrNaNInf
//     (overflow under the strict policy).
//
// Complexity:
//   - Time O(nnz + major), Space O(nnz + major).
func MulDiagonal(a *Compressed, d *Diagonal) (*Compressed, error) {
	if err := ValidateMulShape(a, d); err != nil {
		return nil, matrixErrorf(opMulDiagonal, err)
	}
	var out *Compressed
	if a.variant == Symmetric {
		var err error
		if out, err = a.general(); err != nil {
			return nil, matrixErrorf(opMulDiagonal, err)
		}
	} else {
		out = a.clone()
	}
	if err := out.Resize(a.r, d.c); err != nil {
		return nil, matrixErrorf(opMulDiagonal, err)
	}

	var failure error
	out.scaleStored(func(_, j int, v float64) float64 {
		if j >= len(d.data) {
			return 0
		}
		p := v * d.data[j]
		if failure == nil && out.rejects(p) {
			failure = fmt.Errorf("(%d): %w", j, ErrNaNInf)
		}
		return p
	})
	if failure != nil {
		return nil, matrixErrorf(opMulDiagonal, failure)
	}

	return out, nil
}

// scaleStored replaces every stored value with f(i, j, v) and then drops the
// values that became zero.
func (m *Compressed) scaleStored(f func(i, j int, v float64) float64) {
	var major, row, col int
	for k := range m.values {
		for m.offsets[major+1] <= k {
			major++
		}
		row, col = m.fromStorage(major, m.indices[k])
		m.values[k] = f(row, col, m.values[k])
	}
	m.Retain(func(_, _ int, v float64) bool { return !m.isZero(v) })
}

// MulVec returns y = a·x.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (len(x) != a.Cols()).
//
// Complexity:
//   - Time O(nnz + rows), Space O(rows).
func MulVec(a *Compressed, x []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, a.r)
	a.doLogical(func(i, j int, v float64) {
		y[i] += v * x[j]
	})

	return y, nil
}

// MulConventional returns the dense product a·b.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (a.Cols() != b.Rows()), ErrNaNInf.
//
// Complexity:
//   - Time O(nnz*n), Space O(m*n) for an (m×p)·(p×n) product.
func MulConventional(a *Compressed, b *Conventional) (*Conventional, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMulConventional, err)
	}
	c := &Conventional{r: a.r, c: b.c, data: make([]float64, a.r*b.c), validateNaNInf: b.validateNaNInf}
	if err := MulConventionalInto(a, b, c); err != nil {
		return nil, matrixErrorf(opMulConventional, err)
	}

	return c, nil
}

// MulConventionalInto accumulates c += a·b.
//
// Implementation:
//   - Stage 1: validate a·b and the shape of c.
//   - Stage 2: for each logical entry a(i,l), add a(i,l)*b(l,:) into a staged
//     copy of c.
//   - Stage 3: check the numeric policy of c, then commit.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf. c is untouched on error.
//
// Complexity:
//   - Time O(nnz*n + m*n), Space O(m*n) for staging.
func MulConventionalInto(a *Compressed, b, c *Conventional) error {
	if err := ValidateMulShape(a, b); err != nil {
		return matrixErrorf(opMulConventionalTo, err)
	}
	if err := validateProductShape(a.r, b.c, c); err != nil {
		return matrixErrorf(opMulConventionalTo, err)
	}
	m, p, n := a.r, a.c, b.c
	staged := make([]float64, len(c.data))
	copy(staged, c.data)
	a.doLogical(func(i, l int, v float64) {
		for j := 0; j < n; j++ {
			staged[j*m+i] += v * b.data[j*p+l]
		}
	})

	return c.commit(staged, opMulConventionalTo)
}

// ConventionalMul returns the dense product a·b for a dense left operand.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (a.Cols() != b.Rows()), ErrNaNInf.
//
// Complexity:
//   - Time O(nnz*m), Space O(m*n) for an (m×p)·(p×n) product.
func ConventionalMul(a *Conventional, b *Compressed) (*Conventional, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opConventionalMul, err)
	}
	c := &Conventional{r: a.r, c: b.c, data: make([]float64, a.r*b.c), validateNaNInf: a.validateNaNInf}
	if err := ConventionalMulInto(a, b, c); err != nil {
		return nil, matrixErrorf(opConventionalMul, err)
	}

	return c, nil
}

// ConventionalMulInto accumulates c += a·b: every logical entry b(l,j) adds
// b(l,j)*a(:,l) into column j of c. Staging as in MulConventionalInto.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf. c is untouched on error.
//
// Complexity:
//   - Time O(nnz*m + m*n), Space O(m*n) for staging.
func ConventionalMulInto(a *Conventional, b *Compressed, c *Conventional) error {
	if err := ValidateMulShape(a, b); err != nil {
		return matrixErrorf(opConventionalMulTo, err)
	}
	if err := validateProductShape(a.r, b.c, c); err != nil {
		return matrixErrorf(opConventionalMulTo, err)
	}
	m := a.r
	staged := make([]float64, len(c.data))
	copy(staged, c.data)
	b.doLogical(func(l, j int, v float64) {
		col, src := staged[j*m:(j+1)*m], a.data[l*m:(l+1)*m]
		for i := range col {
			col[i] += v * src[i]
		}
	})

	return c.commit(staged, opConventionalMulTo)
}

// validateProductShape checks that c is a non-nil rows×cols matrix.
func validateProductShape(rows, cols int, c *Conventional) error {
	if c == nil {
		return validatorErrorf("ValidateProductShape", ErrNilMatrix)
	}
	if c.r != rows || c.c != cols {
		return validatorErrorf("ValidateProductShape", fmt.Errorf("result %dx%d, want %dx%d: %w", c.r, c.c, rows, cols, ErrShapeMismatch))
	}

	return nil
}

// commit swaps in staged data after the numeric policy check.
func (m *Conventional) commit(staged []float64, tag string) error {
	if m.validateNaNInf {
		for idx, v := range staged {
			if isNonFinite(v) {
				return matrixErrorf(tag, fmt.Errorf("(%d,%d): %w", idx%m.r, idx/m.r, ErrNaNInf))
			}
		}
	}
	copy(m.data, staged)

	return nil
}

// Add returns the sparse sum a + b.
//
// Implementation:
//   - Stage 1: validate (non-nil, same shape).
//   - Stage 2: align operands: differing variants are both expanded to
//     General; b is re-oriented to a's format when needed.
//   - Stage 3: two-pointer merge of each major slice; sums at or below a's
//     zero tolerance (exact cancellations by default) are dropped.
//
// Behavior highlights:
//   - Same-variant operands keep the variant (the sum of two upper-triangular
//     matrices is upper-triangular). The result carries a's format and policy.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNaNInf (overflow under the strict policy).
//
// Complexity:
//   - Time O(nnz(a) + nnz(b) + major), Space O(nnz(a) + nnz(b) + major).
func Add(a, b *Compressed) (*Compressed, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if a.variant != b.variant {
		var err error
		if a, err = a.general(); err != nil {
			return nil, matrixErrorf(opAdd, err)
		}
		if b, err = b.general(); err != nil {
			return nil, matrixErrorf(opAdd, err)
		}
	}
	if b.format != a.format {
		b = b.ToFormat(a.format)
	}

	out := newCompressed(a.r, a.c, a.options())
	out.values = make([]float64, 0, a.NonZeros()+b.NonZeros())
	out.indices = make([]int, 0, a.NonZeros()+b.NonZeros())
	major := a.majorDim()
	var ka, kb, ea, eb int
	for p := 0; p < major; p++ {
		ka, ea = a.offsets[p], a.offsets[p+1]
		kb, eb = b.offsets[p], b.offsets[p+1]
		for ka < ea || kb < eb {
			var q int
			var v float64
			switch {
			case kb >= eb || (ka < ea && a.indices[ka] < b.indices[kb]):
				q, v = a.indices[ka], a.values[ka]
				ka++
			case ka >= ea || b.indices[kb] < a.indices[ka]:
				q, v = b.indices[kb], b.values[kb]
				kb++
			default:
				q, v = a.indices[ka], a.values[ka]+b.values[kb]
				ka++
				kb++
			}
			if out.rejects(v) {
				row, col := out.fromStorage(p, q)
				return nil, matrixErrorf(opAdd, fmt.Errorf("(%d,%d): %w", row, col, ErrNaNInf))
			}
			if out.isZero(v) {
				continue
			}
			out.values = append(out.values, v)
			out.indices = append(out.indices, q)
		}
		out.offsets[p+1] = len(out.values)
	}

	return out, nil
}

// Scale returns alpha·a with a's variant, format and policy.
//
// Behavior highlights:
//   - alpha == 0 yields an empty matrix; products that fall at or below the
//     zero tolerance are dropped.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite alpha or overflow under the strict policy).
//
// Complexity:
//   - Time O(nnz + major), Space O(nnz + major).
func Scale(a *Compressed, alpha float64) (*Compressed, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if a.rejects(alpha) {
		return nil, matrixErrorf(opScale, fmt.Errorf("alpha=%g: %w", alpha, ErrNaNInf))
	}
	if alpha == 0 {
		return newCompressed(a.r, a.c, a.options()), nil
	}

	out := a.clone()
	var failure error
	out.scaleStored(func(i, j int, v float64) float64 {
		p := alpha * v
		if failure == nil && out.rejects(p) {
			failure = fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf)
		}
		return p
	})
	if failure != nil {
		return nil, matrixErrorf(opScale, failure)
	}

	return out, nil
}
