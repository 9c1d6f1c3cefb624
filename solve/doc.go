// Package solve provides direct solution of square sparse linear systems
// A·x = b for matrices stored in the sparse package.
//
// LU loads the stored entries of a CSR matrix into the sparse LU engine of
// github.com/edp1096/sparse (Markowitz pivoting, 1-based elements), factors
// it and solves for one right-hand side. The input matrix is never modified.
//
// Residual reports ‖A·x − b‖∞ through sparse.MulVec, which is the natural
// check of a computed solution.
package solve
