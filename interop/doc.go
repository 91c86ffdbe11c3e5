// SPDX-License-Identifier: MIT

// Package interop bridges matlab/matrix and gonum.org/v1/gonum/mat.
//
// What:
//   - Sparse adapts a *matrix.Compressed to mat.Matrix and mat.NonZeroDoer,
//     so gonum kernels (mat.Dense.Mul, mat.Formatted, ...) read it directly.
//   - ToDense / FromGonum / ConventionalFromGonum copy between the two worlds.
//   - BandToGonum / BandFromGonum translate the column-oriented band storage
//     of matrix.Band into the row-oriented blas64.Band layout and back.
//
// Why a separate package:
//   - matrix stays free of the gonum dependency; callers that never touch
//     gonum never compile it.
//
// Errors:
//   - ErrEmptyShape: gonum cannot represent a matrix with a zero dimension.
//   - ErrBandRange: gonum requires kl < rows and ku < cols.
//   - matrix sentinels (ErrNilMatrix, ErrNaNInf, ...) pass through wrapped.
//
// Panics:
//   - Sparse.At panics with mat.ErrIndexOutOfRange on bad indices, matching
//     the mat.Matrix contract.
package interop
