// SPDX-License-Identifier: MIT
// Package: matlab/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority (tie-break when several validations fail):
//   • ErrBadSize            — size/domain checks first (rows, cols, n, count).
//   • ErrTooManyEntries     — then count against rows*cols.
//   • ErrInvalidProbability — then probability ranges.
//   • ErrNeedRandSource     — then RNG presence for stochastic builders.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative dimension or count.
// Usage: if errors.Is(err, ErrBadSize) { /* fix rows/cols/n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates that a density value is outside the
// closed interval [0,1] (or NaN).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEntries indicates a request for more unique coordinates than the
// shape holds.
// Usage: if errors.Is(err, ErrTooManyEntries) { /* lower count */ }.
var ErrTooManyEntries = errors.New("builder: more entries than coordinates")

// ErrOptionViolation indicates that a configured option cannot serve the
// requested constructor at run time (e.g. a ValueFn that keeps returning
// zero or a non-finite value).
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps err with the given method context and a formatted
// detail: "<Method>: <detail>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
