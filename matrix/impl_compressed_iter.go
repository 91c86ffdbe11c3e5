// SPDX-License-Identifier: MIT

// Package matrix - enumeration of compressed entries.
//
// Every iterator here reads the current storage on each call, so a sequence
// returned by All can be ranged over any number of times. Mutating the matrix
// while ranging over it is not supported (see Concurrency in doc.go): the walk
// stays in bounds but the visited coordinates are unspecified.

package matrix

import "iter"

// All returns the stored entries in major order (column by column for the
// Column format, row by row for the Row format), minor index ascending.
// Only physically stored entries are produced; Symmetric mirrors are not.
//
// Complexity:
//   - Time O(nnz + major) per full pass, Space O(1).
func (m *Compressed) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		m.Do(func(i, j int, v float64) bool {
			return yield(Entry{Row: i, Col: j, Value: v})
		})
	}
}

// Do visits stored entries in the same order as All and stops early when f
// returns false. No allocations.
func (m *Compressed) Do(f func(i, j int, v float64) bool) {
	var major, row, col int
	for k := 0; k < len(m.values); k++ {
		for m.offsets[major+1] <= k {
			major++
		}
		row, col = m.fromStorage(major, m.indices[k])
		if !f(row, col, m.values[k]) {
			return
		}
	}
}

// Entries materializes All into a slice.
// Complexity: O(nnz).
func (m *Compressed) Entries() []Entry {
	out := make([]Entry, 0, m.NonZeros())
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}

// doLogical visits every logically nonzero element: the stored entries and,
// for Symmetric matrices, the mirrored off-diagonal ones. Order is storage
// order with each mirror emitted right after its source.
func (m *Compressed) doLogical(f func(i, j int, v float64)) {
	mirror := m.variant.Mirrors()
	m.Do(func(i, j int, v float64) bool {
		f(i, j, v)
		if mirror && i != j {
			f(j, i, v)
		}
		return true
	})
}

// logicalEntries materializes doLogical.
func (m *Compressed) logicalEntries() []Entry {
	n := m.NonZeros()
	if m.variant.Mirrors() {
		n *= 2
	}
	out := make([]Entry, 0, n)
	m.doLogical(func(i, j int, v float64) {
		out = append(out, Entry{Row: i, Col: j, Value: v})
	})

	return out
}
