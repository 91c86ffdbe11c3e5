// Package builder defines shared constants used by matrix builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodIdentity is the canonical name for the Identity constructor.
	MethodIdentity = "Identity"
	// MethodTridiagonal is the canonical name for the Tridiagonal constructor.
	MethodTridiagonal = "Tridiagonal"
	// MethodLaplacian1D is the canonical name for the Laplacian1D constructor.
	MethodLaplacian1D = "Laplacian1D"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomTriplets is the canonical name for the RandomTriplets constructor.
	MethodRandomTriplets = "RandomTriplets"
)

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the smallest admissible density.
	MinProbability = 0.0
	// MaxProbability is the largest admissible density.
	MaxProbability = 1.0
)

//-----------------------------------------------------------------------------
// Sampling limits
//-----------------------------------------------------------------------------

// maxRedraws bounds how often a ValueFn may return zero (or a non-finite
// value) in a row before the constructor gives up with ErrOptionViolation.
const maxRedraws = 64

// permutationRatio selects RandomTriplets' strategy: when count*permutationRatio
// reaches rows*cols a full permutation is cheaper than rejection sampling.
const permutationRatio = 2
