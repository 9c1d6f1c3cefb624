// Package sparse_test contains tests for the matrix-vector products.
package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

// TestMulVec_Example checks A·(1,2,3,4,5) on every layout.
func TestMulVec_Example(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}
	want := []float64{29.3, 52, 0, 28}

	d, err := sparse.ToDense[float64](mustCOO(t))
	require.NoError(t, err)

	for name, m := range map[string]sparse.Matrix[float64]{
		"COO":   mustCOO(t),
		"CSR":   mustCSR(t),
		"Dense": d,
	} {
		t.Run(name, func(t *testing.T) {
			y, err := sparse.MulVec(m, v)
			require.NoError(t, err)
			require.Len(t, y, 4)
			assert.InDeltaSlice(t, want, y, 1e-12)
			assert.Zero(t, y[2], "empty row gives exactly zero")
		})
	}
}

// TestMulVec_Errors checks argument validation.
func TestMulVec_Errors(t *testing.T) {
	m := mustCSR(t)

	_, err := sparse.MulVec[float64](m, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.MulVecDense[float64](m, []float64{1, 2, 3, 4, 5, 6})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.MulVec[float64](m, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.MulVec[float64](nil, []float64{1})
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.MulVecDense[float64](nil, []float64{1})
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMulVec_MatchesDenseSweep compares the sparse kernels with the full sweep.
func TestMulVec_MatchesDenseSweep(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		coo := randomCOO(t, 12, 9, 0.25, seed)
		csr := coo.ToCSR()
		v := randomVec(9, seed+1000)

		ref, err := sparse.MulVecDense[float64](coo, v)
		require.NoError(t, err)

		yCOO, err := sparse.MulVec[float64](coo, v)
		require.NoError(t, err)
		yCSR, err := sparse.MulVec[float64](csr, v)
		require.NoError(t, err)
		yHidden, err := sparse.MulVec[float64](hide[float64]{csr}, v)
		require.NoError(t, err)

		require.Equal(t, ref, yCOO, "seed %d", seed)
		require.Equal(t, ref, yCSR, "seed %d", seed)
		require.Equal(t, yCSR, yHidden, "fast path vs Do fallback, seed %d", seed)
	}
}

// TestMulVec_RowSums checks (M·1)[i] == Σ_j M(i,j).
func TestMulVec_RowSums(t *testing.T) {
	for _, m := range []sparse.Matrix[float64]{mustCOO(t), mustCSR(t)} {
		ones := []float64{1, 1, 1, 1, 1}
		y, err := sparse.MulVec(m, ones)
		require.NoError(t, err)
		for i := range exDense {
			sum := 0.0
			for _, a := range exDense[i] {
				sum += a
			}
			assert.InDelta(t, sum, y[i], 1e-12, "row %d", i+1)
		}
	}
}

// TestMulVec_BasisColumns checks that M·e_k extracts column k.
func TestMulVec_BasisColumns(t *testing.T) {
	for _, m := range []sparse.Matrix[float64]{mustCOO(t), mustCSR(t)} {
		for k := 0; k < m.Cols(); k++ {
			e := make([]float64, m.Cols())
			e[k] = 1
			y, err := sparse.MulVec(m, e)
			require.NoError(t, err)
			for i := range y {
				require.Equal(t, exDense[i][k], y[i], "(%d,%d)", i+1, k+1)
			}
		}
	}
}

// TestMulVec_Linearity checks M(αx+βy) == αMx + βMy on integer-valued data.
func TestMulVec_Linearity(t *testing.T) {
	m := randomCOO(t, 10, 10, 0.3, 7).ToCSR()
	x, y := randomVec(10, 8), randomVec(10, 9)
	const alpha, beta = 3.0, -2.0

	z := make([]float64, 10)
	for i := range z {
		z[i] = alpha*x[i] + beta*y[i]
	}
	mz, err := sparse.MulVec[float64](m, z)
	require.NoError(t, err)
	mx, err := sparse.MulVec[float64](m, x)
	require.NoError(t, err)
	my, err := sparse.MulVec[float64](m, y)
	require.NoError(t, err)

	for i := range mz {
		require.Equal(t, alpha*mx[i]+beta*my[i], mz[i], "row %d", i+1)
	}
}

// TestMulVec_Int runs the product on an integer element type.
func TestMulVec_Int(t *testing.T) {
	m, err := sparse.NewCSR([]int{3, 4, 5, 7, 2, 6}, exColumns, exRowIdx)
	require.NoError(t, err)
	y, err := sparse.MulVec[int](m, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, []int{29, 50, 0, 28}, y)
}

// TestMulVec_ExplicitZeroAndNonFinite shows the only divergence between kernels:
// implicit zeros are skipped by MulVec but multiplied by MulVecDense.
func TestMulVec_ExplicitZeroAndNonFinite(t *testing.T) {
	m, err := sparse.NewEmptyCOO[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 1))
	v := []float64{1, math.Inf(1)}

	y, err := sparse.MulVec[float64](m, v)
	require.NoError(t, err)
	require.Equal(t, 1.0, y[0])

	ref, err := sparse.MulVecDense[float64](m, v)
	require.NoError(t, err)
	require.True(t, math.IsNaN(ref[0]))

	// A stored zero behaves like the dense sweep.
	require.NoError(t, m.Set(1, 2, 0))
	y, err = sparse.MulVec[float64](m, v)
	require.NoError(t, err)
	require.True(t, math.IsNaN(y[0]))
}

// TestMulVec_EmptyShapes handles 0-column and 0-row matrices.
func TestMulVec_EmptyShapes(t *testing.T) {
	noCols, err := sparse.NewEmptyCSR[float64](3, 0)
	require.NoError(t, err)
	y, err := sparse.MulVec[float64](noCols, []float64{})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, y)

	noRows, err := sparse.NewEmptyCOO[float64](0, 2)
	require.NoError(t, err)
	y, err = sparse.MulVec[float64](noRows, []float64{1, 2})
	require.NoError(t, err)
	require.Empty(t, y)
}
