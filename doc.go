// Package lvsparse is a small sparse-matrix toolkit: two interchangeable
// storage layouts behind one contract, conversions between them, and
// matrix-vector products.
//
// What is inside?
//
//   - sparse/: the Matrix[T] contract, COO (coordinate list) and CSR
//     (compressed sparse row) storage, Dense reference storage, COO⇄CSR
//     conversions, MulVec, and a grid formatter
//   - solve/: direct solution of A·x = b for square CSR matrices
//     (sparse LU via github.com/edp1096/sparse)
//   - cmd/sparsedemo: a driver that walks through every operation
//
// Why two layouts?
//
//   - COO is cheap to build and to edit entry by entry.
//   - CSR is compact and fast for row-wise reads and products.
//   - Converting between them is a single linear pass either way.
//
// Coordinates on the public surface are 1-based: A.At(1, 1) is the top-left
// cell. Storage is 0-based internally.
//
// Quick example:
//
//	a, _ := sparse.NewCOO(
//		[]float64{3.1, 4, 5},
//		[]int{0, 0, 1}, // rows
//		[]int{2, 4, 2}, // cols
//	)
//	_ = a.Set(2, 5, 1.5)      // inserts a new entry in row-major order
//	y, _ := sparse.MulVec[float64](a, []float64{1, 2, 3, 4, 5})
//	csr := a.ToCSR()
//
//	go get github.com/katalvlaran/lvsparse/sparse
package lvsparse
