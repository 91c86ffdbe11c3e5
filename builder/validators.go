// Package builder provides validation helpers to enforce parameter contracts
// in matrix constructors.
//
// Each function returns a sentinel wrapped via builderErrorf when its
// precondition is violated.
package builder

import (
	"math"
	"math/rand"
)

// validateSize ensures rows, cols ≥ 0.
// Complexity: O(1) time and space.
func validateSize(method string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return builderErrorf(method, ErrBadSize, "rows=%d, cols=%d", rows, cols)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability]; NaN fails.
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}

// validateRand ensures an RNG is present when the draw is truly random.
// Complexity: O(1) time and space.
func validateRand(method string, rng *rand.Rand, needed bool) error {
	if needed && rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return nil
}
