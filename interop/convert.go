// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matlab/matrix"
)

const (
	opToDense               = "ToDense"
	opFromGonum             = "FromGonum"
	opConventionalFromGonum = "ConventionalFromGonum"
)

// ToDense copies any matrix.Matrix into a new *mat.Dense.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToDense(m matrix.Matrix) (*mat.Dense, error) {
	d, err := matrix.ToConventional(m)
	if err != nil {
		return nil, interopErrorf(opToDense, err)
	}
	if d.Rows() == 0 || d.Cols() == 0 {
		return nil, interopErrorf(opToDense, ErrEmptyShape)
	}

	return mat.NewDense(d.Rows(), d.Cols(), d.RowMajor()), nil
}

// FromGonum compresses a gonum matrix configured by opts. Sources that
// implement mat.NonZeroDoer are walked sparsely; any other source is read
// element by element. Elements outside the target variant's region are
// dropped.
//
// Errors:
//   - matrix.ErrNilMatrix (nil source), matrix.ErrShapeMismatch (non-square
//     Symmetric), matrix.ErrNaNInf.
//
// Complexity:
//   - O(nnz log nnz) for NonZeroDoer sources, O(r*c) otherwise.
func FromGonum(a mat.Matrix, opts ...matrix.Option) (*matrix.Compressed, error) {
	if a == nil {
		return nil, interopErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	probe, err := matrix.NewCompressed(r, c, opts...)
	if err != nil {
		return nil, interopErrorf(opFromGonum, err)
	}
	variant := probe.Variant()

	var entries []matrix.Entry
	keep := func(i, j int, v float64) {
		if v != 0 && variant.Stores(i, j) {
			entries = append(entries, matrix.Entry{Row: i, Col: j, Value: v})
		}
	}
	if nz, ok := a.(mat.NonZeroDoer); ok {
		nz.DoNonZero(keep)
	} else {
		var i, j int
		for j = 0; j < c; j++ {
			for i = 0; i < r; i++ {
				keep(i, j, a.At(i, j))
			}
		}
	}

	out, err := matrix.FromTriplets(r, c, entries, opts...)
	if err != nil {
		return nil, interopErrorf(opFromGonum, err)
	}

	return out, nil
}

// ConventionalFromGonum copies a gonum matrix into a new Conventional.
// A *mat.Dense source is read through its raw row-major buffer.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (under the policy in opts).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ConventionalFromGonum(a mat.Matrix, opts ...matrix.Option) (*matrix.Conventional, error) {
	if a == nil {
		return nil, interopErrorf(opConventionalFromGonum, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	cols := make([]float64, r*c)
	var i, j int
	if dense, ok := a.(*mat.Dense); ok {
		raw := dense.RawMatrix()
		for i = 0; i < r; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+c]
			for j = 0; j < c; j++ {
				cols[j*r+i] = row[j]
			}
		}
	} else {
		for j = 0; j < c; j++ {
			for i = 0; i < r; i++ {
				cols[j*r+i] = a.At(i, j)
			}
		}
	}

	out, err := matrix.NewConventionalFromColumns(r, c, cols, opts...)
	if err != nil {
		return nil, interopErrorf(opConventionalFromGonum, err)
	}

	return out, nil
}
