// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Public methods return these sentinels (wrapped with method context)
// and tests MUST check them via errors.Is. No public method panics on a
// user-triggered error condition.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so it can be grepped in logs.
// Call sites wrap with "<Type>.<Method>(row,col): %w"; callers match the
// sentinel with errors.Is.

var (
	// ErrOutOfRange indicates a coordinate outside [1..Rows]×[1..Cols].
	// Row 0 or column 0 is out of range: the public surface is 1-based.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. MulVec with len(v) != Cols().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadShape is returned by constructors when the raw storage cannot
	// describe a matrix: parallel slices of different lengths, negative
	// indices, a row pointer of the wrong length, or an explicit shape
	// smaller than the stored data requires.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrUnsorted signals that stored coordinates are not in strictly
	// ascending row-major order (duplicates included).
	ErrUnsorted = errors.New("sparse: entries not in row-major order")

	// ErrNaNInf signals a NaN or ±Inf write while the finite-value policy is on.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil matrix or nil vector argument.
	ErrNilMatrix = errors.New("sparse: nil argument")
)

// coordErrorf wraps err with a "<Type>.<method>(row,col)" prefix.
func coordErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// sparseErrorf wraps err with a plain operation tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
