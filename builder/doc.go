// Package builder provides reusable “functional‐options”‐style constructors
// for matrix fixtures. It lives alongside the matrix package to centralize
// seeded randomness, value distributions and validation, keeping tests,
// benchmarks and examples DRY, reproducible and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, value function and matrix options.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:    constant value DefaultValue.
//     – ConstantValueFn:   fixed user-provided nonzero value.
//     – UniformValueFn:    uniform ∼U[min,max), zero draws redrawn.
//     – NormalValueFn:     Gaussian ∼N(mean,stddev), zero draws redrawn.
//   - Deterministic constructors:
//     – Identity, Tridiagonal, Laplacian1D.
//   - Stochastic constructors (require WithSeed or WithRand):
//     – RandomSparse:      Bernoulli(density) per coordinate, column-major trials.
//     – RandomTriplets:    count unique coordinates in draw order (COO input).
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping the package sentinels (ErrBadSize,
//     ErrInvalidProbability, ErrNeedRandSource, ErrTooManyEntries) and the
//     matrix sentinels for storage-level failures.
//   - Fixed trial order: for a given seed every constructor is reproducible.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
