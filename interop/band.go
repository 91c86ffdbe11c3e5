// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matlab/matrix"
)

const (
	opBandToGonum   = "BandToGonum"
	opBandFromGonum = "BandFromGonum"
)

// BandToGonum copies b into a gonum BandDense. matrix.Band keeps kl+ku+1
// slots per column; blas64.Band keeps them per row:
//
//	Data[i*Stride + kl + j - i] == A(i,j)
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyShape, ErrBandRange.
//
// Complexity:
//   - Time O(min(r, c+kl) * (kl+ku+1)), Space the same.
func BandToGonum(b *matrix.Band) (*mat.BandDense, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, interopErrorf(opBandToGonum, err)
	}
	r, c := b.Rows(), b.Cols()
	kl, ku := b.Bandwidth()
	if r == 0 || c == 0 {
		return nil, interopErrorf(opBandToGonum, ErrEmptyShape)
	}
	if kl >= r || ku >= c {
		return nil, interopErrorf(opBandToGonum, fmt.Errorf("kl=%d, ku=%d for %dx%d: %w", kl, ku, r, c, ErrBandRange))
	}

	stride := kl + ku + 1
	rb := blas64.Band{
		Rows:   r,
		Cols:   c,
		KL:     kl,
		KU:     ku,
		Stride: stride,
		Data:   make([]float64, min(r, c+kl)*stride),
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = max(0, i-kl); j <= min(c-1, i+ku); j++ {
			v, err := b.At(i, j)
			if err != nil {
				return nil, interopErrorf(opBandToGonum, err)
			}
			rb.Data[i*stride+kl+j-i] = v
		}
	}

	var out mat.BandDense
	out.SetRawBand(rb)

	return &out, nil
}

// BandFromGonum copies a gonum banded matrix into a new matrix.Band with the
// same bandwidth. Sources implementing mat.RawBander are read from their raw
// storage; others through At.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (under the policy in opts).
//
// Complexity:
//   - Time O(r * (kl+ku+1)).
func BandFromGonum(g mat.Banded, opts ...matrix.Option) (*matrix.Band, error) {
	if g == nil {
		return nil, interopErrorf(opBandFromGonum, matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	kl, ku := g.Bandwidth()
	out, err := matrix.NewBand(r, c, kl, ku, opts...)
	if err != nil {
		return nil, interopErrorf(opBandFromGonum, err)
	}

	at := g.At
	if raw, ok := g.(mat.RawBander); ok {
		rb := raw.RawBand()
		at = func(i, j int) float64 { return rb.Data[i*rb.Stride+rb.KL+j-i] }
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = max(0, i-kl); j <= min(c-1, i+ku); j++ {
			if err = out.Set(i, j, at(i, j)); err != nil {
				return nil, interopErrorf(opBandFromGonum, err)
			}
		}
	}

	return out, nil
}
