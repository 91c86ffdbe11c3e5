// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matlab/matrix"
)

// Sparse exposes a compressed matrix through gonum's read interfaces.
// It holds a reference, not a copy: later Sets on the wrapped matrix are
// visible through the adapter.
type Sparse struct {
	m *matrix.Compressed
}

var (
	_ mat.Matrix      = Sparse{}
	_ mat.NonZeroDoer = Sparse{}
)

// NewSparse wraps m.
//
// Errors:
//   - matrix.ErrNilMatrix.
func NewSparse(m *matrix.Compressed) (Sparse, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Sparse{}, interopErrorf("NewSparse", err)
	}

	return Sparse{m: m}, nil
}

// Unwrap returns the wrapped matrix.
func (s Sparse) Unwrap() *matrix.Compressed { return s.m }

// Dims returns the shape.
func (s Sparse) Dims() (r, c int) { return s.m.Rows(), s.m.Cols() }

// At returns the logical element (i,j) and panics with
// mat.ErrIndexOutOfRange outside the shape.
func (s Sparse) At(i, j int) float64 {
	v, err := s.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

// T returns an implicit transpose.
func (s Sparse) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// DoNonZero calls fn for every logically nonzero element in storage order;
// mirrored elements of a Symmetric matrix follow their stored source.
func (s Sparse) DoNonZero(fn func(i, j int, v float64)) {
	mirror := s.m.Variant().Mirrors()
	for e := range s.m.All() {
		fn(e.Row, e.Col, e.Value)
		if mirror && e.Row != e.Col {
			fn(e.Col, e.Row, e.Value)
		}
	}
}
