// SPDX-License-Identifier: MIT

// Package sparse - conversions between COO and CSR.
//
// Both conversions are pure: the source is not modified and the result owns
// fresh storage. Declared dimensions and the value policy are carried over,
// so trailing empty rows or columns survive a round trip.

package sparse

import "slices"

// ToCSR converts a COO matrix into CSR.
//
// Implementation:
//   - Stage 1: walk rows 0..Rows()-1 with one cursor over the stored
//     entries; the cursor is never reset, it continues from where the
//     previous row ended and counts entries while their row matches.
//   - Stage 2: the running count after row i becomes rowIdx[i+1].
//   - Stage 3: values and column indices are copied unchanged.
//
// Behavior highlights:
//   - Column order inside a row is taken as stored. The result is a valid
//     CSR only when the COO invariant holds (see COO.Validate).
//
// Complexity: O(nnz + rows).
func (m *COO[T]) ToCSR() *CSR[T] {
	rowIdx := make([]int, m.r+1) // rowIdx[0] = 0 by convention
	sum := 0
	for i := 0; i < m.r; i++ {
		for sum < len(m.rows) && m.rows[sum] == i {
			sum++
		}
		rowIdx[i+1] = sum
	}

	return &CSR[T]{
		r:      m.r,
		c:      m.c,
		values: slices.Clone(m.values),
		cols:   slices.Clone(m.cols),
		rowIdx: rowIdx,
		pol:    m.pol,
	}
}

// ToCOO converts a CSR matrix into COO by expanding the row pointer: row i
// is repeated once per entry in [rowIdx[i], rowIdx[i+1]). Rows are visited in
// increasing order and each range is column-sorted, so the COO invariant
// holds by construction.
//
// Complexity: O(nnz + rows).
func (m *CSR[T]) ToCOO() *COO[T] {
	rows := make([]int, 0, len(m.values))
	for i := 0; i < m.r; i++ {
		for k := m.rowIdx[i]; k < m.rowIdx[i+1]; k++ {
			rows = append(rows, i)
		}
	}

	return &COO[T]{
		r:      m.r,
		c:      m.c,
		values: slices.Clone(m.values),
		rows:   rows,
		cols:   slices.Clone(m.cols),
		pol:    m.pol,
	}
}
