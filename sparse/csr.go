// SPDX-License-Identifier: MIT

// Package sparse - CSR (compressed sparse row) storage.
//
// Purpose:
//   - Store a sparse matrix as values + column indices + a row pointer of
//     length Rows()+1, so that row r occupies [rowIdx[r], rowIdx[r+1]).
//   - Keep columns strictly ascending inside each row; Set/Add/Slot preserve it.
//
// Complexity quicksheet:
//   - NewCSR: O(nnz + rows); At: O(row length);
//   - Slot/Set/Add: O(row length + nnz + rows) (shift of storage and row boundaries);
//   - ToCOO: O(nnz + rows).

package sparse

import (
	"fmt"
	"slices"
)

const typeCSR = "CSR"

// CSR is a compressed-sparse-row matrix.
//   - r,c hold the declared dimensions.
//   - values and cols are parallel (length nnz); cols are 0-based.
//   - rowIdx has length r+1, rowIdx[0] == 0, rowIdx[r] == nnz, non-decreasing.
type CSR[T Number] struct {
	r, c   int
	values []T
	cols   []int
	rowIdx []int
	pol    policy
}

var (
	_ Matrix[float64] = (*CSR[float64])(nil)
	_ fmt.Stringer    = (*CSR[int])(nil)
)

// NewCSR builds a CSR matrix from raw compressed arrays.
//
// Implementation:
//   - Stage 1: check len(values) == len(cols), non-negative columns, and a
//     non-empty row pointer (ErrBadShape).
//   - Stage 2: infer Rows = len(rowIdx)-1 and Cols = max(cols)+1, or take
//     WithShape. Extra rows beyond the row pointer are padded as empty rows.
//   - Stage 3: check the row pointer (starts at 0, non-decreasing, ends at
//     nnz); copy inputs; apply the finite-value policy and, under
//     WithStrictOrder, the per-row column order check.
//
// Behavior highlights:
//   - Column order inside a row is trusted unless WithStrictOrder is given.
//   - The matrix owns copies of the slices.
//
// Complexity: O(nnz + rows) time and memory.
func NewCSR[T Number](values []T, cols, rowIdx []int, opts ...Option) (*CSR[T], error) {
	o := gatherOptions(opts...)

	if len(cols) != len(values) || len(rowIdx) == 0 {
		return nil, sparseErrorf("NewCSR", ErrBadShape)
	}
	maxCol, negCol := maxIndex(cols)
	if negCol {
		return nil, sparseErrorf("NewCSR", ErrBadShape)
	}

	nRows, nCols := len(rowIdx)-1, maxCol+1
	if o.hasShape {
		if o.nRows < nRows || o.nCols < nCols {
			return nil, sparseErrorf("NewCSR", ErrBadShape)
		}
		nRows, nCols = o.nRows, o.nCols
	}

	ptr := make([]int, nRows+1)
	copy(ptr, rowIdx)
	for i := len(rowIdx); i <= nRows; i++ {
		ptr[i] = rowIdx[len(rowIdx)-1] // trailing empty rows
	}
	if err := validateRowPointer(ptr, nRows, len(values)); err != nil {
		return nil, sparseErrorf("NewCSR", err)
	}

	m := &CSR[T]{
		r:      nRows,
		c:      nCols,
		values: slices.Clone(values),
		cols:   slices.Clone(cols),
		rowIdx: ptr,
		pol:    o.policy(),
	}
	for i, v := range m.values {
		if err := checkValue(m.pol, v); err != nil {
			return nil, fmt.Errorf("%s.New: entry %d: %w", typeCSR, i, err)
		}
	}
	if o.strictOrder {
		if err := m.Validate(); err != nil {
			return nil, sparseErrorf("NewCSR", err)
		}
	}

	return m, nil
}

// NewCSRWithShape is NewCSR with explicit dimensions (WithShape).
func NewCSRWithShape[T Number](values []T, cols, rowIdx []int, nRows, nCols int, opts ...Option) (*CSR[T], error) {
	if nRows < 0 || nCols < 0 {
		return nil, sparseErrorf("NewCSRWithShape", ErrBadShape)
	}

	return NewCSR(values, cols, rowIdx, append(opts[:len(opts):len(opts)], WithShape(nRows, nCols))...)
}

// NewEmptyCSR returns an nRows×nCols matrix with no stored entries.
func NewEmptyCSR[T Number](nRows, nCols int, opts ...Option) (*CSR[T], error) {
	return NewCSRWithShape[T](nil, nil, []int{0}, nRows, nCols, opts...)
}

// Rows returns the declared row count.
func (m *CSR[T]) Rows() int { return m.r }

// Cols returns the declared column count.
func (m *CSR[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *CSR[T]) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSR[T]) NNZ() int { return len(m.values) }

// At returns the value at 1-based (row, col), or zero when nothing is stored.
// An empty row answers without scanning; otherwise only the row's column
// range is scanned. Complexity: O(row length).
func (m *CSR[T]) At(row, col int) (T, error) {
	var zero T
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return zero, coordErrorf(typeCSR, ctxAt, row, col, err)
	}

	r, c := row-1, col-1
	lo, hi := m.rowIdx[r], m.rowIdx[r+1]
	if lo == hi {
		return zero, nil // no stored entries in the row
	}
	for k := lo; k < hi; k++ {
		if m.cols[k] == c {
			return m.values[k], nil
		}
	}

	return zero, nil
}

// Slot returns the storage handle of 1-based (row, col), inserting a
// zero-valued entry when the coordinate is not stored yet.
//
// Implementation:
//   - Stage 1: empty row → insert at rowIdx[r].
//   - Stage 2: scan the row range; equal column → existing handle;
//     greater column → insert before it.
//   - Stage 3: range exhausted → insert at the end of the row (rowIdx[r+1]).
//   - Every insertion shifts rowIdx[k] for k > r by one.
//
// Behavior highlights:
//   - Column order inside the row and the row pointer invariant are preserved.
//   - A handle stays valid until the next insertion into this matrix.
//
// Complexity: O(row length + nnz + rows).
func (m *CSR[T]) Slot(row, col int) (int, error) {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return 0, coordErrorf(typeCSR, ctxSlot, row, col, err)
	}

	return m.slot(row-1, col-1), nil
}

// slot is Slot on 0-based, already validated coordinates.
func (m *CSR[T]) slot(r, c int) int {
	lo, hi := m.rowIdx[r], m.rowIdx[r+1]
	if lo == hi {
		return m.insert(r, lo, c)
	}
	for k := lo; k < hi; k++ {
		if m.cols[k] == c {
			return k
		}
		if m.cols[k] > c {
			return m.insert(r, k, c)
		}
	}

	return m.insert(r, hi, c)
}

// insert places a zero entry with column c at storage position k of row r
// and moves every later row boundary by one.
func (m *CSR[T]) insert(r, k, c int) int {
	var zero T
	m.cols = slices.Insert(m.cols, k, c)
	m.values = slices.Insert(m.values, k, zero)
	for i := r + 1; i <= m.r; i++ {
		m.rowIdx[i]++
	}

	return k
}

// Load reads the value behind handle k (see Slot).
func (m *CSR[T]) Load(k int) (T, error) {
	if k < 0 || k >= len(m.values) {
		var zero T
		return zero, fmt.Errorf("%s.%s(%d): %w", typeCSR, ctxLoad, k, ErrOutOfRange)
	}

	return m.values[k], nil
}

// Store writes v behind handle k (see Slot), honoring the finite-value policy.
func (m *CSR[T]) Store(k int, v T) error {
	if k < 0 || k >= len(m.values) {
		return fmt.Errorf("%s.%s(%d): %w", typeCSR, ctxStore, k, ErrOutOfRange)
	}
	if err := checkValue(m.pol, v); err != nil {
		return fmt.Errorf("%s.%s(%d): %w", typeCSR, ctxStore, k, err)
	}
	m.values[k] = v

	return nil
}

// Set writes v at 1-based (row, col), materializing the entry on first write.
// A value rejected by the policy leaves the matrix untouched.
func (m *CSR[T]) Set(row, col int, v T) error {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return coordErrorf(typeCSR, ctxSet, row, col, err)
	}
	if err := checkValue(m.pol, v); err != nil {
		return coordErrorf(typeCSR, ctxSet, row, col, err)
	}
	k := m.slot(row-1, col-1) // may reallocate m.values
	m.values[k] = v

	return nil
}

// Add accumulates v into 1-based (row, col).
func (m *CSR[T]) Add(row, col int, v T) error {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return coordErrorf(typeCSR, ctxAdd, row, col, err)
	}
	cur, _ := m.At(row, col)
	if err := checkValue(m.pol, cur+v); err != nil {
		return coordErrorf(typeCSR, ctxAdd, row, col, err)
	}
	k := m.slot(row-1, col-1)
	m.values[k] += v

	return nil
}

// Do visits stored entries row by row with 1-based coordinates; it stops
// when f returns false.
func (m *CSR[T]) Do(f func(row, col int, v T) bool) {
	for r := 0; r < m.r; r++ {
		for k := m.rowIdx[r]; k < m.rowIdx[r+1]; k++ {
			if !f(r+1, m.cols[k]+1, m.values[k]) {
				return
			}
		}
	}
}

// Copy returns an independent deep copy with the same policy.
func (m *CSR[T]) Copy() *CSR[T] {
	return &CSR[T]{
		r:      m.r,
		c:      m.c,
		values: slices.Clone(m.values),
		cols:   slices.Clone(m.cols),
		rowIdx: slices.Clone(m.rowIdx),
		pol:    m.pol,
	}
}

// Clone implements Matrix; the dynamic type is *CSR[T].
func (m *CSR[T]) Clone() Matrix[T] { return m.Copy() }

// Values returns a copy of the stored values in storage order.
func (m *CSR[T]) Values() []T { return cloneNonNil(m.values) }

// ColIndices returns a copy of the 0-based column index of every stored entry.
func (m *CSR[T]) ColIndices() []int { return cloneNonNil(m.cols) }

// RowPointer returns a copy of the row pointer (length Rows()+1).
func (m *CSR[T]) RowPointer() []int { return cloneNonNil(m.rowIdx) }

// RowNNZ returns the number of stored entries in 1-based row.
func (m *CSR[T]) RowNNZ(row int) (int, error) {
	if row < 1 || row > m.r {
		return 0, fmt.Errorf("%s.RowNNZ(%d): %w", typeCSR, row, ErrOutOfRange)
	}

	return m.rowIdx[row] - m.rowIdx[row-1], nil
}

// Validate checks the CSR invariant: row pointer shape and monotonicity,
// columns inside the declared shape (ErrBadShape), and strictly ascending
// columns within each row (ErrUnsorted).
// Complexity: O(nnz + rows).
func (m *CSR[T]) Validate() error {
	if err := validateCompressed(len(m.values), m.cols, m.rowIdx, m.r, m.c); err != nil {
		return sparseErrorf("CSR.Validate", err)
	}

	return nil
}

// String renders the matrix as an aligned dense grid (see Format).
func (m *CSR[T]) String() string { return Format[T](m) }
