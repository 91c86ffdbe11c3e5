// SPDX-License-Identifier: MIT
// Package: matlab/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible stochastic builders (Random*).
//   • WithMatrixOptions forwards storage options (variant, format, tolerance)
//     to the matrix the constructor returns.

package builder

import (
	"math/rand" // RNG source for stochastic builders

	"github.com/katalvlaran/matlab/matrix"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the matrix is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the per-entry value generator.
// The function receives the (possibly nil) RNG and MUST be pure w.r.t.
// input RNG state to preserve determinism. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithMatrixOptions appends storage options applied to the produced matrix.
// Repeated use accumulates; later options win inside the matrix package.
// Complexity: O(len(opts)).
func WithMatrixOptions(opts ...matrix.Option) BuilderOption {
	return func(c *builderConfig) {
		c.matrixOpts = append(c.matrixOpts, opts...)
	}
}
