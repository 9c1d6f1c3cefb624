// Package sparse implements generic sparse matrices with two interchangeable
// layouts behind one Matrix[T] contract.
//
// What & Why:
//
//	COO keeps parallel (row, col, value) triplets sorted in row-major order;
//	it is simple to build and to edit. CSR keeps values and column indices
//	plus a row pointer of length Rows()+1; rows are contiguous, so row reads
//	and products are fast. ToCSR and ToCOO convert in one linear pass and keep
//	the declared shape. Dense is the plain row-major layout, used to render
//	grids and as a reference in tests.
//
// Coordinates:
//
//	The public surface is 1-based: At(1, 1) is the top-left cell. Raw
//	constructor inputs (row/col index slices, CSR row pointer) are 0-based,
//	the way the storage keeps them.
//
// Reads and writes:
//
//	At never allocates and returns the zero value of T for coordinates with no
//	stored entry. Set, Add and Slot materialize the coordinate on first write
//	and keep the layout's ordering invariant. Slot returns an integer handle
//	(Load/Store) that stays valid until the next insertion into the matrix.
//
// Errors:
//
//	Out-of-range coordinates (including row or col 0) return ErrOutOfRange,
//	and a vector whose length differs from Cols() returns
//	ErrDimensionMismatch. Nothing on the public surface panics on bad input,
//	except WithShape with negative dimensions.
//
// Concurrency:
//
//	A matrix is not safe for concurrent mutation. Distinct matrices never
//	share storage: constructors, Clone and conversions all copy.
package sparse
