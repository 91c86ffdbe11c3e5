// Package matlab is a small matrix laboratory: interchangeable dense and
// sparse matrix representations, element-level mutation, and lossless
// conversion between them.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/   — Conventional (dense), Compressed (CSC/CSR), Diagonal, Band,
//	            the conversion protocol and sparse kernels
//	builder/  — deterministic fixtures: identity, tridiagonal, Laplacian,
//	            seeded random sparse matrices and triplets
//	interop/  — gonum adapters (mat.Matrix views, blas64.Band bridges)
//
// Quick example:
//
//	m, _ := matrix.Zero(2, 4)
//	_ = m.Set(0, 0, 42)
//	_ = m.Set(1, 3, 69)
//	d := m.ToConventional()
//	d.RowMajor() // [42 0 0 0 0 0 0 69]
//
//	go get github.com/katalvlaran/matlab
package matlab
