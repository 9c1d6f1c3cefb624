// SPDX-License-Identifier: MIT

package sparse

// Test bridge for unexported helpers.
//
// Purpose:
//   - Expose a read-only snapshot of resolved Options and the structural
//     validators to sparse_test without widening the production API.
//   - Compiled only with the package tests (the _test.go suffix).

// OptionsSnapshot is a stable view of Options for tests.
type OptionsSnapshot struct {
	HasShape       bool
	Rows, Cols     int
	StrictOrder    bool
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		HasShape:       o.hasShape,
		Rows:           o.nRows,
		Cols:           o.nCols,
		StrictOrder:    o.strictOrder,
		ValidateNaNInf: o.validateNaNInf,
	}
}

var (
	ExportedCheckCoord         = checkCoord
	ExportedMaxIndex           = maxIndex
	ExportedValidateTriplets   = validateTriplets
	ExportedValidateRowPointer = validateRowPointer
	ExportedValidateCompressed = validateCompressed
	ExportedIsNonFinite64      = isNonFinite[float64]
	ExportedIsNonFiniteInt     = isNonFinite[int]
)
