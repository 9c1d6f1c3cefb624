// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for coordinate, vector and structural checks.
//  - Keep COO/CSR methods minimal by delegating guards here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly,
//    except the exported validators, which tag themselves.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - Structural checks are a single O(nnz + rows) pass.

package sparse

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return sparseErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *COO, *CSR or *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil[T Number](m Matrix[T]) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNilMatrix reports a nil interface or a nil pointer of a package layout.
func isNilMatrix[T Number](m Matrix[T]) bool {
	switch x := m.(type) {
	case nil:
		return true
	case *COO[T]:
		return x == nil
	case *CSR[T]:
		return x == nil
	case *Dense[T]:
		return x == nil
	}

	return false
}

// ValidateVecLen ensures len(x) == n. A nil vector is accepted only for n == 0.
// Complexity: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if x == nil && n > 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// checkCoord validates a 1-based coordinate against the declared shape.
func checkCoord(row, col, rows, cols int) error {
	if row < 1 || row > rows {
		return ErrOutOfRange
	}
	if col < 1 || col > cols {
		return ErrOutOfRange
	}

	return nil
}

// maxIndex returns the largest element of idx, or -1 when idx is empty, and
// reports whether any element is negative.
func maxIndex(idx []int) (maxIdx int, negative bool) {
	maxIdx = -1
	for _, v := range idx {
		if v < 0 {
			negative = true
		}
		if v > maxIdx {
			maxIdx = v
		}
	}

	return maxIdx, negative
}

// validateTriplets checks the COO invariant on 0-based storage:
// parallel lengths, in-bounds indices and strictly ascending (row, col).
func validateTriplets(nValues int, rows, cols []int, nRows, nCols int) error {
	if len(rows) != nValues || len(cols) != nValues {
		return ErrBadShape
	}
	for i := range rows {
		if rows[i] < 0 || rows[i] >= nRows || cols[i] < 0 || cols[i] >= nCols {
			return ErrBadShape
		}
		if i == 0 {
			continue
		}
		// Strict lexicographic ascent also rules out duplicates.
		if rows[i] < rows[i-1] || (rows[i] == rows[i-1] && cols[i] <= cols[i-1]) {
			return ErrUnsorted
		}
	}

	return nil
}

// validateRowPointer checks the cheap part of the CSR invariant:
// len == nRows+1, starts at 0, non-decreasing, ends at nnz.
func validateRowPointer(rowIdx []int, nRows, nnz int) error {
	if len(rowIdx) != nRows+1 {
		return ErrBadShape
	}
	if rowIdx[0] != 0 || rowIdx[nRows] != nnz {
		return ErrBadShape
	}
	for i := 1; i <= nRows; i++ {
		if rowIdx[i] < rowIdx[i-1] {
			return ErrBadShape
		}
	}

	return nil
}

// validateCompressed checks the full CSR invariant: row pointer shape,
// column bounds, and strictly ascending columns inside each row.
func validateCompressed(nValues int, cols, rowIdx []int, nRows, nCols int) error {
	if len(cols) != nValues {
		return ErrBadShape
	}
	if err := validateRowPointer(rowIdx, nRows, nValues); err != nil {
		return err
	}
	for r := 0; r < nRows; r++ {
		for k := rowIdx[r]; k < rowIdx[r+1]; k++ {
			if cols[k] < 0 || cols[k] >= nCols {
				return ErrBadShape
			}
			if k > rowIdx[r] && cols[k] <= cols[k-1] {
				return ErrUnsorted
			}
		}
	}

	return nil
}
