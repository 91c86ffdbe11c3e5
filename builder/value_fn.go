// Package builder provides helper functions and types for configuring the
// distribution of stored values in matrix constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultValue is the value assigned to every generated entry when no custom
// ValueFn is provided.
const DefaultValue float64 = 1

// ValueFn produces an entry value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration. Zero results are redrawn by
// the constructors (a stored entry is never zero).
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns the constant DefaultValue.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultValue
}

// ConstantValueFn returns a ValueFn that always yields the provided value.
// Panics if value is zero or not finite.
// Complexity: O(1) time, O(1) space.
func ConstantValueFn(value float64) ValueFn {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantValueFn: value must be finite and nonzero, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformValueFn returns a ValueFn sampling uniformly in [min, max).
// Panics if a bound is not finite or max < min.
// If rng is nil, yields DefaultValue to maintain a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(min, max float64) ValueFn {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformValueFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalValueFn returns a ValueFn sampling from N(mean, stddev).
// Panics if stddev < 0 or a parameter is not finite.
// If rng is nil, yields DefaultValue.
// Complexity: O(1) time, O(1) space.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) || math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic(fmt.Sprintf("NormalValueFn: require finite mean and stddev ≥ 0, got mean=%g, stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// IntegerValueFn returns a ValueFn drawing integers uniformly from [1, n].
// Integer-valued fixtures keep sums and products exact in tests.
// Panics if n < 1. If rng is nil, yields DefaultValue.
func IntegerValueFn(n int) ValueFn {
	if n < 1 {
		panic(fmt.Sprintf("IntegerValueFn: n must be ≥ 1, got %d", n))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}

		return float64(1 + rng.Intn(n))
	}
}

// WithConstantValue sets a fixed entry value via ConstantValueFn.
// Complexity: O(1).
func WithConstantValue(v float64) BuilderOption {
	return WithValueFn(ConstantValueFn(v))
}

// WithUniformValues sets values ∼ U[min,max) via UniformValueFn.
// Complexity: O(1).
func WithUniformValues(min, max float64) BuilderOption {
	return WithValueFn(UniformValueFn(min, max))
}

// WithNormalValues sets values ∼ N(mean,stddev) via NormalValueFn.
// Complexity: O(1).
func WithNormalValues(mean, stddev float64) BuilderOption {
	return WithValueFn(NormalValueFn(mean, stddev))
}

// WithIntegerValues sets integer values in [1, n] via IntegerValueFn.
// Complexity: O(1).
func WithIntegerValues(n int) BuilderOption {
	return WithValueFn(IntegerValueFn(n))
}
