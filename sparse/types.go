// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by every storage layout.
// This file contains ONLY the element constraint and the public Matrix
// contract. Errors and options live in errors.go and options.go.
package sparse

// Number is the set of element types a sparse matrix may hold.
// Every member has a literal zero and closed + and * operators, which is all
// the multiply kernel and the accumulate path need.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is the read/write contract shared by COO, CSR and Dense.
//
// Coordinates are 1-based on this surface: At(1,1) is the top-left cell and
// At(Rows(),Cols()) the bottom-right one. A coordinate with no stored entry
// reads as the zero value of T; that is normal, not an error.
//
// Complexity notes are per implementation; see COO and CSR.
type Matrix[T Number] interface {
	// Rows returns the declared number of rows.
	Rows() int

	// Cols returns the declared number of columns.
	Cols() int

	// NNZ returns the number of explicitly stored entries. A stored entry
	// counts even when its value is zero.
	NNZ() int

	// At reads the value at (row, col).
	// Returns ErrOutOfRange unless 1 ≤ row ≤ Rows() and 1 ≤ col ≤ Cols().
	At(row, col int) (T, error)

	// Set writes v at (row, col), materializing the entry on first write.
	// Returns ErrOutOfRange on invalid coordinates and ErrNaNInf when the
	// finite-value policy rejects v.
	Set(row, col int, v T) error

	// Do visits every stored entry in row-major order with 1-based
	// coordinates and stops early when f returns false.
	Do(f func(row, col int, v T) bool)

	// Clone returns an independent deep copy.
	Clone() Matrix[T]
}

// isNonFinite reports whether v is NaN or ±Inf. For integer kinds v-v is
// always 0, so the check is false without a type switch.
func isNonFinite[T Number](v T) bool {
	return v-v != 0
}
