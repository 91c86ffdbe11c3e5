// SPDX-License-Identifier: MIT
// Package: matlab/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil            (pure/deterministic unless seeded)
//   • valueFn    = DefaultValueFn (every entry DefaultValue)
//   • matrixOpts = none           (General, Column, exact-zero policy)
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomSparse/RandomTriplets fixtures.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/matlab/matrix"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Value generator for stored entries.
	valueFn ValueFn
	// Storage options forwarded to the matrix package.
	matrixOpts []matrix.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. nil options are skipped.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// draw returns the next nonzero finite value of the configured ValueFn,
// redrawing up to maxRedraws times.
func (cfg builderConfig) draw(method string) (float64, error) {
	var v float64
	for attempt := 0; attempt < maxRedraws; attempt++ {
		v = cfg.valueFn(cfg.rng)
		if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
	}

	return 0, builderErrorf(method, ErrOptionViolation, "ValueFn returned %g %d times in a row", v, maxRedraws)
}

// options returns the forwarded matrix options followed by extra, so extra
// wins on conflicts.
func (cfg builderConfig) options(extra ...matrix.Option) []matrix.Option {
	out := make([]matrix.Option, 0, len(cfg.matrixOpts)+len(extra))
	out = append(out, cfg.matrixOpts...)

	return append(out, extra...)
}
