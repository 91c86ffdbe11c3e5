// SPDX-License-Identifier: MIT
// Package: matlab/builder
//
// impl_random.go — stochastic constructors RandomSparse and RandomTriplets.
//
// Canonical models:
//   - RandomSparse: include each coordinate independently with probability p
//     (Bernoulli trials in column-major order, row ascending within a column).
//   - RandomTriplets: count distinct coordinates, returned in draw order.
//
// Contract:
//   - rows, cols ≥ 0 (else ErrBadSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil whenever a draw is random (0 < p < 1, or
//     count > 0) (else ErrNeedRandSource).
//   - Values come from cfg.valueFn; zero or non-finite draws are redrawn.
//   - Returns only wrapped sentinels; never panics at runtime.
//
// Determinism:
//   - Fixed trial order; for a fixed seed and options the output is identical
//     across runs.

package builder

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/matlab/matrix"
)

// RandomSparse returns a rows×cols compressed matrix whose coordinates are
// each present with probability density. Coordinates outside the variant
// region configured through WithMatrixOptions are never tried.
//
// Complexity:
//   - Time O(rows*cols) trials + O(nnz log nnz) assembly, Space O(nnz).
func RandomSparse(rows, cols int, density float64, opts ...BuilderOption) (*matrix.Compressed, error) {
	if err := validateSize(MethodRandomSparse, rows, cols); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomSparse, density); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodRandomSparse, cfg.rng, density > MinProbability && density < MaxProbability); err != nil {
		return nil, err
	}
	mopts := cfg.options()
	probe, err := matrix.NewCompressed(rows, cols, mopts...)
	if err != nil {
		return nil, builderErrorf(MethodRandomSparse, err, "%dx%d", rows, cols)
	}
	variant := probe.Variant()

	var (
		i, j    int
		v       float64
		entries []matrix.Entry
	)
	for j = 0; j < cols; j++ { // stable outer loop: j asc
		for i = 0; i < rows; i++ { // inner loop: i asc
			if !variant.Stores(i, j) {
				continue
			}
			switch {
			case density == MinProbability:
				continue
			case density == MaxProbability:
			case cfg.rng.Float64() >= density:
				continue
			}
			if v, err = cfg.draw(MethodRandomSparse); err != nil {
				return nil, err
			}
			entries = append(entries, matrix.Entry{Row: i, Col: j, Value: v})
		}
	}

	m, err := matrix.FromTriplets(rows, cols, entries, mopts...)
	if err != nil {
		return nil, builderErrorf(MethodRandomSparse, err, "%dx%d", rows, cols)
	}

	return m, nil
}

// coord is the deduplication key of a sampled entry.
type coord struct{ row, col int }

// RandomTriplets returns count entries with distinct coordinates inside a
// rows×cols shape, in draw order (unsorted), ready for matrix.FromTriplets.
//
// Implementation:
//   - Dense requests (count*2 ≥ rows*cols): prefix of a random permutation of
//     the linear coordinates.
//   - Sparse requests: rejection sampling in batches, deduplicated with
//     lo.UniqBy while keeping first occurrences.
//
// Complexity:
//   - Dense: O(rows*cols). Sparse: expected O(count).
func RandomTriplets(rows, cols, count int, opts ...BuilderOption) ([]matrix.Entry, error) {
	if err := validateSize(MethodRandomTriplets, rows, cols); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, builderErrorf(MethodRandomTriplets, ErrBadSize, "count=%d", count)
	}
	size := matrix.Shape{Rows: rows, Cols: cols}
	if err := size.Validate(); err != nil {
		return nil, builderErrorf(MethodRandomTriplets, ErrBadSize, "%s: %v", size, err)
	}
	if count > size.Size() {
		return nil, builderErrorf(MethodRandomTriplets, ErrTooManyEntries, "count=%d > %s", count, size)
	}
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodRandomTriplets, cfg.rng, count > 0); err != nil {
		return nil, err
	}
	if count == 0 {
		return []matrix.Entry{}, nil
	}

	var coords []coord
	if count*permutationRatio >= size.Size() {
		coords = lo.Map(cfg.rng.Perm(size.Size())[:count], func(k int, _ int) coord {
			return coord{row: k % rows, col: k / rows}
		})
	} else {
		for len(coords) < count {
			batch := lo.Times(count-len(coords), func(int) coord {
				return coord{row: cfg.rng.Intn(rows), col: cfg.rng.Intn(cols)}
			})
			coords = lo.UniqBy(append(coords, batch...), func(c coord) coord { return c })
		}
	}

	out := make([]matrix.Entry, len(coords))
	var err error
	for k, c := range coords {
		out[k] = matrix.Entry{Row: c.row, Col: c.col}
		if out[k].Value, err = cfg.draw(MethodRandomTriplets); err != nil {
			return nil, err
		}
	}

	return out, nil
}
