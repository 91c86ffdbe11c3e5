// Package matrix provides interchangeable dense and sparse matrix
// representations with element-level mutation and lossless conversion.
//
// The matrix package provides:
//
//   - Conventional: a dense column-major buffer, the baseline every
//     conversion targets or sources from.
//   - Compressed: compressed-column (or compressed-row) sparse storage with
//     point lookup, point mutation (insert / update / remove-on-zero) and a
//     Variant tag: General, LowerTriangular, UpperTriangular or Symmetric.
//   - Diagonal and Band (LAPACK layout) leaf formats.
//   - The conversion protocol: ToConventional / FromConventional and the
//     interface-level ToConventional / ToCompressed, with copy semantics.
//   - Sparse kernels: MulDiagonal, MulConventional, ConventionalMul, MulVec,
//     Add, Scale.
//
// Errors are sentinels (ErrOutOfBounds, ErrInvalidCoordinate,
// ErrShapeMismatch, ...) wrapped with method context; match them with
// errors.Is. Constructors take functional options (WithVariant, WithFormat,
// WithZeroTolerance, ...); the Default* constants document every default.
//
// Concurrency:
//
// Nothing in this package locks. Concurrent reads of a matrix that is not
// being mutated are safe. Mutating a matrix (Set, Resize, Retain, Apply)
// while another goroutine reads or iterates it is a data race; an iterator
// that observes its own matrix being mutated stays in bounds but visits an
// unspecified set of coordinates.
//
// See the examples in this package for usage patterns.
package matrix
