// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and converters.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Dense (Conventional) matrices consume only the numeric policy
//     (validateNaNInf); layout options are ignored for them.
//   - zeroTol is the single removal trigger of the compressed engine. The
//     default is 0, i.e. only an exact zero (including -0) erases an entry.
//     A positive tolerance is opt-in for consumers that need it.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVariant is the storage region of new compressed matrices.
	DefaultVariant = General

	// DefaultFormat is the orientation of new compressed matrices.
	DefaultFormat = Column

	// DefaultValidateNaNInf toggles strict finite-value validation in Set,
	// Apply and conversions.
	DefaultValidateNaNInf = true

	// DefaultZeroTolerance: values with |v| <= tol are treated as zero.
	DefaultZeroTolerance = 0.0

	// DefaultCapacity is the number of nonzero slots preallocated.
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVariantInvalid   = "matrix: WithVariant: unknown variant"
	panicFormatInvalid    = "matrix: WithFormat: unknown format"
	panicCapacityInvalid  = "matrix: WithCapacity: capacity must be non-negative"
	panicToleranceInvalid = "matrix: WithZeroTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	variant        Variant // DefaultVariant
	format         Format  // DefaultFormat
	capacity       int     // DefaultCapacity
	validateNaNInf bool    // DefaultValidateNaNInf
	zeroTol        float64 // DefaultZeroTolerance
}

// WithVariant selects the storage region of a compressed matrix.
// Panics on an unknown variant.
func WithVariant(v Variant) Option {
	if !v.valid() {
		panic(panicVariantInvalid)
	}

	return func(o *Options) { o.variant = v }
}

// WithFormat selects compressed-column (Column) or compressed-row (Row).
// Panics on an unknown format.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// WithCapacity preallocates n nonzero slots. The capacity is a hint; the
// storage grows past it as needed.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation. NaN compares unequal
// to zero, so it is stored like any other nonzero value.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithZeroTolerance sets the magnitude at or below which a value counts as
// zero: Set removes such entries and conversions drop them.
//
// AI-Hints:
//   - Keep the default (exact zero) unless a consumer demands otherwise;
//     a positive tolerance makes Set lossy for tiny values.
func WithZeroTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		variant:        DefaultVariant,
		format:         DefaultFormat,
		capacity:       DefaultCapacity,
		validateNaNInf: DefaultValidateNaNInf,
		zeroTol:        DefaultZeroTolerance,
	}
}

// gatherOptions applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// rejects reports whether the numeric policy refuses v.
func (o Options) rejects(v float64) bool {
	return o.validateNaNInf && isNonFinite(v)
}
