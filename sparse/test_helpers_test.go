// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide the fixed 4×5 example and small constructors that fail the test on error.
//   • Provide a wrapper that hides concrete types to force generic code paths.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

// The fixed example: 4×5, third row empty.
//
//	0   0   3.1 0   4
//	0   0   5   0   7.4
//	0   0   0   0   0
//	0   2   0   6   0
var (
	exValues  = []float64{3.1, 4, 5, 7.4, 2, 6}
	exColumns = []int{2, 4, 2, 4, 1, 3}
	exRows    = []int{0, 0, 1, 1, 3, 3}
	exRowIdx  = []int{0, 2, 4, 4, 6}
)

// exDense is the example as a 1-based lookup: exDense[i-1][j-1] == A(i,j).
var exDense = [][]float64{
	{0, 0, 3.1, 0, 4},
	{0, 0, 5, 0, 7.4},
	{0, 0, 0, 0, 0},
	{0, 2, 0, 6, 0},
}

// hide wraps any Matrix to mask its concrete type (disables *CSR fast paths).
type hide[T sparse.Number] struct{ sparse.Matrix[T] }

func mustCOO(t testing.TB, opts ...sparse.Option) *sparse.COO[float64] {
	t.Helper()
	m, err := sparse.NewCOO(exValues, exRows, exColumns, opts...)
	require.NoError(t, err)

	return m
}

func mustCSR(t testing.TB, opts ...sparse.Option) *sparse.CSR[float64] {
	t.Helper()
	m, err := sparse.NewCSR(exValues, exColumns, exRowIdx, opts...)
	require.NoError(t, err)

	return m
}

// requireGrid asserts that m reads exactly as want over its whole shape.
func requireGrid[T sparse.Number](t testing.TB, want [][]T, m sparse.Matrix[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			v, err := m.At(i+1, j+1)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i+1, j+1)
		}
	}
}

// requireSameMatrix asserts equal shape, nnz and every cell.
func requireSameMatrix[T sparse.Number](t testing.TB, a, b sparse.Matrix[T]) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	require.Equal(t, a.NNZ(), b.NNZ())
	for i := 1; i <= a.Rows(); i++ {
		for j := 1; j <= a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			require.Equal(t, av, bv, "cell (%d,%d)", i, j)
		}
	}
}

// randomCOO fills an r×c COO with about density*r*c random small integers
// (as float64) through Set, so the order invariant comes from the write path.
func randomCOO(t testing.TB, r, c int, density float64, seed int64) *sparse.COO[float64] {
	t.Helper()
	m, err := sparse.NewEmptyCOO[float64](r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	n := int(density * float64(r*c))
	for k := 0; k < n; k++ {
		require.NoError(t, m.Set(rng.Intn(r)+1, rng.Intn(c)+1, float64(rng.Intn(19)-9)))
	}

	return m
}

// randomVec returns n random small integers as float64.
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(rng.Intn(21) - 10)
	}

	return v
}
