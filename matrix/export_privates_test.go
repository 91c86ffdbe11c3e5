// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for raw compressed storage.
//
// Purpose:
//   - Expose the UNEXPORTED storage arrays and policy of Compressed to
//     matrix_test ONLY, so structural tests can compare values / indices /
//     offsets against exact expectations.
//
// Build Policy:
//   - Lives in a _test.go file of package matrix: compiled into the test
//     binary, invisible in production builds.
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here.

// RawStorage is a read-only snapshot of compressed storage.
type RawStorage struct {
	Values  []float64
	Indices []int
	Offsets []int
}

// ExportedRaw copies m's storage arrays. Empty arrays come back as empty,
// non-nil slices so they compare equal to literals.
func ExportedRaw(m *Compressed) RawStorage {
	return RawStorage{
		Values:  append([]float64{}, m.values...),
		Indices: append([]int{}, m.indices...),
		Offsets: append([]int{}, m.offsets...),
	}
}

// ExportedZeroTolerance exposes the zero tolerance of m.
func ExportedZeroTolerance(m *Compressed) float64 { return m.zeroTol }

// ExportedValidatesNaNInf exposes the numeric policy of m.
func ExportedValidatesNaNInf(m *Compressed) bool { return m.validateNaNInf }

// ExportedCorrupt overwrites m's storage without validation, to exercise
// Validate on broken input.
func ExportedCorrupt(m *Compressed, raw RawStorage) {
	m.values, m.indices, m.offsets = raw.Values, raw.Indices, raw.Offsets
}

// ExportedLogicalEntries exposes the mirrored entry walk.
var ExportedLogicalEntries = (*Compressed).logicalEntries

// ExportedGeneral exposes the General expansion used by mixed-variant kernels.
var ExportedGeneral = (*Compressed).general

// ExportedGatherOptions exposes the resolved option values.
func ExportedGatherOptions(opts ...Option) (Variant, Format, int, bool, float64) {
	o := gatherOptions(opts...)

	return o.variant, o.format, o.capacity, o.validateNaNInf, o.zeroTol
}
