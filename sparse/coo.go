// SPDX-License-Identifier: MIT

// Package sparse - COO (coordinate list) storage.
//
// Purpose:
//   - Store a sparse matrix as three parallel slices (values, rows, cols).
//   - Keep entries unique per coordinate and in ascending row-major order;
//     every write through Set/Add/Slot preserves that order.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewCOO: O(nnz); At: O(nnz); Slot/Set/Add: O(nnz); ToCSR: O(nnz + rows).

package sparse

import (
	"fmt"
	"slices"
)

const typeCOO = "COO"

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxAdd   = "Add"
	ctxSlot  = "Slot"
	ctxLoad  = "Load"
	ctxStore = "Store"
)

// COO is a coordinate-list sparse matrix.
//   - r,c hold the declared dimensions.
//   - values, rows, cols are parallel; rows/cols are 0-based.
//   - entries are sorted by (row, col) and unique.
type COO[T Number] struct {
	r, c   int
	values []T
	rows   []int
	cols   []int
	pol    policy
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*COO[float64])(nil)
	_ fmt.Stringer    = (*COO[int])(nil)
)

// NewCOO builds a COO matrix from 0-based triplets.
//
// Implementation:
//   - Stage 1: check parallel lengths and non-negative indices (ErrBadShape).
//   - Stage 2: infer Rows = max(rows)+1 and Cols = max(cols)+1, or take
//     WithShape, which must cover the data (ErrBadShape otherwise).
//   - Stage 3: copy inputs; apply the finite-value policy and, under
//     WithStrictOrder, the row-major order check.
//
// Behavior highlights:
//   - Input is NOT sorted. The caller supplies row-major sorted, duplicate-free
//     triplets; unsorted input makes reads and ToCSR unreliable unless
//     WithStrictOrder is used to reject it.
//   - The matrix owns copies of the slices.
//   - Empty input infers a 0×0 matrix.
//
// Complexity: O(nnz) time and memory.
func NewCOO[T Number](values []T, rows, cols []int, opts ...Option) (*COO[T], error) {
	o := gatherOptions(opts...)

	if len(rows) != len(values) || len(cols) != len(values) {
		return nil, sparseErrorf("NewCOO", ErrBadShape)
	}
	maxRow, negRow := maxIndex(rows)
	maxCol, negCol := maxIndex(cols)
	if negRow || negCol {
		return nil, sparseErrorf("NewCOO", ErrBadShape)
	}

	nRows, nCols := maxRow+1, maxCol+1
	if o.hasShape {
		if o.nRows < nRows || o.nCols < nCols {
			return nil, sparseErrorf("NewCOO", ErrBadShape)
		}
		nRows, nCols = o.nRows, o.nCols
	}

	m := &COO[T]{
		r:      nRows,
		c:      nCols,
		values: slices.Clone(values),
		rows:   slices.Clone(rows),
		cols:   slices.Clone(cols),
		pol:    o.policy(),
	}
	for i, v := range m.values {
		if err := checkValue(m.pol, v); err != nil {
			return nil, coordErrorf(typeCOO, "New", m.rows[i]+1, m.cols[i]+1, err)
		}
	}
	if o.strictOrder {
		if err := m.Validate(); err != nil {
			return nil, sparseErrorf("NewCOO", err)
		}
	}

	return m, nil
}

// NewCOOWithShape is NewCOO with explicit dimensions (WithShape).
func NewCOOWithShape[T Number](values []T, rows, cols []int, nRows, nCols int, opts ...Option) (*COO[T], error) {
	if nRows < 0 || nCols < 0 {
		return nil, sparseErrorf("NewCOOWithShape", ErrBadShape)
	}

	return NewCOO(values, rows, cols, append(opts[:len(opts):len(opts)], WithShape(nRows, nCols))...)
}

// NewEmptyCOO returns an nRows×nCols matrix with no stored entries.
func NewEmptyCOO[T Number](nRows, nCols int, opts ...Option) (*COO[T], error) {
	return NewCOOWithShape[T](nil, nil, nil, nRows, nCols, opts...)
}

// Rows returns the declared row count.
func (m *COO[T]) Rows() int { return m.r }

// Cols returns the declared column count.
func (m *COO[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *COO[T]) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries (length of the values slice).
func (m *COO[T]) NNZ() int { return len(m.values) }

// At returns the value at 1-based (row, col), or zero when nothing is stored
// there. Linear scan over stored entries: O(nnz).
func (m *COO[T]) At(row, col int) (T, error) {
	var zero T
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return zero, coordErrorf(typeCOO, ctxAt, row, col, err)
	}

	r, c := row-1, col-1
	for i := range m.rows {
		if m.rows[i] == r && m.cols[i] == c {
			return m.values[i], nil
		}
	}

	return zero, nil
}

// Slot returns the storage handle of 1-based (row, col), inserting a
// zero-valued entry at its row-major position when the coordinate is not
// stored yet.
//
// Implementation:
//   - Stage 1: skip every entry of an earlier row.
//   - Stage 2: inside the target row run, skip entries with a smaller column.
//   - Stage 3: an equal coordinate is returned as is; otherwise the new
//     triplet is inserted right here. This covers an empty target row (the
//     next entry belongs to a later row), a gap inside the row, the end of
//     the row run, and the end of storage (append).
//
// Behavior highlights:
//   - At most one entry per coordinate; order preserved after every insertion.
//   - A handle stays valid until the next insertion into this matrix.
//
// Complexity: O(nnz).
func (m *COO[T]) Slot(row, col int) (int, error) {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return 0, coordErrorf(typeCOO, ctxSlot, row, col, err)
	}

	return m.slot(row-1, col-1), nil
}

// slot is Slot on 0-based, already validated coordinates.
func (m *COO[T]) slot(r, c int) int {
	n := len(m.rows)
	i := 0
	for i < n && m.rows[i] < r {
		i++
	}
	for i < n && m.rows[i] == r && m.cols[i] < c {
		i++
	}
	if i < n && m.rows[i] == r && m.cols[i] == c {
		return i // already allocated
	}

	var zero T
	m.rows = slices.Insert(m.rows, i, r)
	m.cols = slices.Insert(m.cols, i, c)
	m.values = slices.Insert(m.values, i, zero)

	return i
}

// Load reads the value behind handle k (see Slot).
func (m *COO[T]) Load(k int) (T, error) {
	if k < 0 || k >= len(m.values) {
		var zero T
		return zero, fmt.Errorf("%s.%s(%d): %w", typeCOO, ctxLoad, k, ErrOutOfRange)
	}

	return m.values[k], nil
}

// Store writes v behind handle k (see Slot), honoring the finite-value policy.
func (m *COO[T]) Store(k int, v T) error {
	if k < 0 || k >= len(m.values) {
		return fmt.Errorf("%s.%s(%d): %w", typeCOO, ctxStore, k, ErrOutOfRange)
	}
	if err := checkValue(m.pol, v); err != nil {
		return fmt.Errorf("%s.%s(%d): %w", typeCOO, ctxStore, k, err)
	}
	m.values[k] = v

	return nil
}

// Set writes v at 1-based (row, col). Writing to a stored coordinate keeps
// NNZ unchanged; writing to a new one inserts exactly one entry. A value
// rejected by the policy leaves the matrix untouched.
// Complexity: O(nnz).
func (m *COO[T]) Set(row, col int, v T) error {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return coordErrorf(typeCOO, ctxSet, row, col, err)
	}
	if err := checkValue(m.pol, v); err != nil {
		return coordErrorf(typeCOO, ctxSet, row, col, err)
	}
	k := m.slot(row-1, col-1) // may reallocate m.values
	m.values[k] = v

	return nil
}

// Add accumulates v into 1-based (row, col): the entry is created as zero if
// absent, then incremented by v.
// Complexity: O(nnz).
func (m *COO[T]) Add(row, col int, v T) error {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return coordErrorf(typeCOO, ctxAdd, row, col, err)
	}
	cur, _ := m.At(row, col) // coordinate already validated
	if err := checkValue(m.pol, cur+v); err != nil {
		return coordErrorf(typeCOO, ctxAdd, row, col, err)
	}
	k := m.slot(row-1, col-1)
	m.values[k] += v

	return nil
}

// Do visits stored entries in storage order (row-major when the invariant
// holds) with 1-based coordinates; it stops when f returns false.
func (m *COO[T]) Do(f func(row, col int, v T) bool) {
	for i := range m.values {
		if !f(m.rows[i]+1, m.cols[i]+1, m.values[i]) {
			return
		}
	}
}

// Copy returns an independent deep copy with the same policy.
// Complexity: O(nnz).
func (m *COO[T]) Copy() *COO[T] {
	return &COO[T]{
		r:      m.r,
		c:      m.c,
		values: slices.Clone(m.values),
		rows:   slices.Clone(m.rows),
		cols:   slices.Clone(m.cols),
		pol:    m.pol,
	}
}

// Clone implements Matrix; the dynamic type is *COO[T].
func (m *COO[T]) Clone() Matrix[T] { return m.Copy() }

// Values returns a copy of the stored values in storage order.
func (m *COO[T]) Values() []T { return cloneNonNil(m.values) }

// RowIndices returns a copy of the 0-based row index of every stored entry.
func (m *COO[T]) RowIndices() []int { return cloneNonNil(m.rows) }

// ColIndices returns a copy of the 0-based column index of every stored entry.
func (m *COO[T]) ColIndices() []int { return cloneNonNil(m.cols) }

// cloneNonNil copies s; a matrix without entries yields an empty, non-nil slice.
func cloneNonNil[S ~[]E, E any](s S) S {
	return append(make(S, 0, len(s)), s...)
}

// Validate checks the COO invariant: parallel slices of equal length,
// indices inside the declared shape (ErrBadShape), and strictly ascending
// row-major order (ErrUnsorted).
// Complexity: O(nnz).
func (m *COO[T]) Validate() error {
	if err := validateTriplets(len(m.values), m.rows, m.cols, m.r, m.c); err != nil {
		return sparseErrorf("COO.Validate", err)
	}

	return nil
}

// String renders the matrix as an aligned dense grid (see Format).
func (m *COO[T]) String() string { return Format[T](m) }
