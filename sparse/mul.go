// SPDX-License-Identifier: MIT

// Package sparse - matrix-vector products.
//
// Both kernels are written once against the Matrix contract and serve every
// layout. MulVec touches stored entries only; MulVecDense is the reference
// full sweep over every logical cell.
//
// Determinism:
//   - Each y[i] starts at zero and accumulates left to right by column.
//   - For a layout whose Do is row-major (COO with its invariant, CSR, Dense)
//     MulVec adds the same non-zero terms in the same order as MulVecDense.

package sparse

import "fmt"

const (
	opMulVec      = "MulVec"
	opMulVecDense = "MulVecDense"
)

// MulVec returns y = m·v, where len(v) == m.Cols() and len(y) == m.Rows().
//
// Implementation:
//   - Stage 1: validate m (ErrNilMatrix) and len(v) (ErrDimensionMismatch).
//   - Stage 2: fast path for *CSR: one loop per row over its column range.
//   - Stage 3: fallback: visit stored entries via Do, y[row] += a(row,col)·v[col].
//
// Behavior highlights:
//   - Implicit zeros are skipped; they contribute nothing to a sum.
//   - Explicitly stored zeros are visited like any other entry.
//
// Complexity: O(rows + nnz).
func MulVec[T Number](m Matrix[T], v []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	y := make([]T, m.Rows())

	// Fast-path: CSR rows are contiguous ranges.
	if s, ok := m.(*CSR[T]); ok {
		var i, k int
		var acc T
		for i = 0; i < s.r; i++ {
			acc = 0
			for k = s.rowIdx[i]; k < s.rowIdx[i+1]; k++ {
				acc = acc + s.values[k]*v[s.cols[k]]
			}
			y[i] = acc
		}

		return y, nil
	}

	m.Do(func(row, col int, a T) bool {
		y[row-1] = y[row-1] + a*v[col-1]
		return true
	})

	return y, nil
}

// MulVecDense returns y = m·v by reading every cell through At, row by row
// and column by column. It reproduces the summation order of a dense sweep
// exactly, implicit zeros included (relevant only when v holds NaN or ±Inf,
// where 0·Inf is NaN).
//
// Complexity: O(rows·cols·cost(At)).
func MulVecDense[T Number](m Matrix[T], v []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMulVecDense, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, sparseErrorf(opMulVecDense, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows)
	var i, j int
	var a T
	var err error
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			a, err = m.At(i, j)
			if err != nil {
				return nil, sparseErrorf(opMulVecDense, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i-1] = y[i-1] + a*v[j-1]
		}
	}

	return y, nil
}
