// SPDX-License-Identifier: MIT

// Package sparse - Dense storage (row-major) used as the reference layout.
//
// Purpose:
//   - Provide a flat row-major buffer with the index formula (row-1)*cols + (col-1).
//   - Serve as the materialization target of the formatter and as an oracle
//     in tests: every cell is stored, so NNZ() == Rows()*Cols().
//   - Implement the same Matrix contract (1-based, error-returning accessors).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Slot/Load/Store: O(1); Clone: O(r*c); ToDense: O(r*c + nnz).

package sparse

import (
	"fmt"
	"slices"
)

const typeDense = "Dense"

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c.
type Dense[T Number] struct {
	r, c int
	data []T
	pol  policy
}

var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// NewDense creates an r×c zero matrix.
// Zero-sized shapes are legal; negative ones return ErrBadShape.
// Only the value policy of opts is used (WithShape is ignored).
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf("NewDense", ErrBadShape)
	}

	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols), // make() zero-fills deterministically
		pol:  gatherOptions(opts...).policy(),
	}, nil
}

// ToDense materializes any Matrix into a Dense with the same shape.
// Stage 1: allocate a zero buffer. Stage 2: copy stored entries via Do.
// Complexity: O(r*c + nnz).
func ToDense[T Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("ToDense", err)
	}
	d, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, sparseErrorf("ToDense", err)
	}
	m.Do(func(row, col int, v T) bool {
		d.data[(row-1)*d.c+(col-1)] = v
		return true
	})

	return d, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// NNZ returns Rows()*Cols(): every cell of a dense buffer is stored.
func (m *Dense[T]) NNZ() int { return len(m.data) }

// offset computes the row-major offset of 1-based (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) offset(row, col int) (int, error) {
	if err := checkCoord(row, col, m.r, m.c); err != nil {
		return 0, err
	}

	return (row-1)*m.c + (col - 1), nil
}

// At returns the value at 1-based (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.offset(row, col)
	if err != nil {
		var zero T
		return zero, coordErrorf(typeDense, ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at 1-based (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.offset(row, col)
	if err != nil {
		return coordErrorf(typeDense, ctxSet, row, col, err)
	}
	if err = checkValue(m.pol, v); err != nil {
		return coordErrorf(typeDense, ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Slot returns the flat offset of 1-based (row, col). Nothing is ever
// inserted, so Dense handles never go stale.
func (m *Dense[T]) Slot(row, col int) (int, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, coordErrorf(typeDense, ctxSlot, row, col, err)
	}

	return off, nil
}

// Load reads the value behind handle k (see Slot).
func (m *Dense[T]) Load(k int) (T, error) {
	if k < 0 || k >= len(m.data) {
		var zero T
		return zero, fmt.Errorf("%s.%s(%d): %w", typeDense, ctxLoad, k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Store writes v behind handle k (see Slot), honoring the finite-value policy.
func (m *Dense[T]) Store(k int, v T) error {
	if k < 0 || k >= len(m.data) {
		return fmt.Errorf("%s.%s(%d): %w", typeDense, ctxStore, k, ErrOutOfRange)
	}
	if err := checkValue(m.pol, v); err != nil {
		return fmt.Errorf("%s.%s(%d): %w", typeDense, ctxStore, k, err)
	}
	m.data[k] = v

	return nil
}

// Do visits every cell (stored by definition) in row-major order.
func (m *Dense[T]) Do(f func(row, col int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i+1, j+1, m.data[base+j]) {
				return
			}
		}
	}
}

// Clone returns a deep copy (new buffer, same policy).
func (m *Dense[T]) Clone() Matrix[T] {
	return &Dense[T]{r: m.r, c: m.c, data: slices.Clone(m.data), pol: m.pol}
}

// RowSlice returns a copy of 1-based row.
func (m *Dense[T]) RowSlice(row int) ([]T, error) {
	if row < 1 || row > m.r {
		return nil, fmt.Errorf("%s.RowSlice(%d): %w", typeDense, row, ErrOutOfRange)
	}

	return slices.Clone(m.data[(row-1)*m.c : row*m.c]), nil
}

// String renders the matrix as an aligned grid (see Format).
func (m *Dense[T]) String() string { return Format[T](m) }
