// Package sparse_test contains tests for the dense grid formatter.
package sparse_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

const exGrid = "0   0   3.1 0   4   \n" +
	"0   0   5   0   7.4 \n" +
	"0   0   0   0   0   \n" +
	"0   2   0   6   0   "

// TestFormat_Example renders the example identically from every layout.
func TestFormat_Example(t *testing.T) {
	d, err := sparse.ToDense[float64](mustCSR(t))
	require.NoError(t, err)

	require.Equal(t, exGrid, sparse.Format[float64](mustCOO(t)))
	require.Equal(t, exGrid, sparse.Format[float64](mustCSR(t)))
	require.Equal(t, exGrid, sparse.Format[float64](d))
	require.Equal(t, exGrid, mustCSR(t).String())
}

// TestFormat_Alignment pads every cell to the widest rendering plus one.
func TestFormat_Alignment(t *testing.T) {
	m, err := sparse.NewCOO([]int{1, -20, 300}, []int{0, 0, 1}, []int{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, "1   -20 \n300 0   ", sparse.Format[int](m))

	for _, line := range strings.Split(sparse.Format[int](m), "\n") {
		require.Len(t, line, 8)
	}
}

// TestFormat_Empty renders shapes without cells as the empty string.
func TestFormat_Empty(t *testing.T) {
	noRows, err := sparse.NewEmptyCSR[float64](0, 3)
	require.NoError(t, err)
	require.Empty(t, sparse.Format[float64](noRows))

	noCols, err := sparse.NewEmptyCOO[float64](2, 0)
	require.NoError(t, err)
	require.Empty(t, noCols.String())

	require.Empty(t, sparse.Format[float64](nil))
}

// TestFormat_TypedNil renders nil layout pointers as "" instead of panicking.
func TestFormat_TypedNil(t *testing.T) {
	var coo *sparse.COO[float64]
	var csr *sparse.CSR[float64]
	var d *sparse.Dense[int]

	require.Empty(t, sparse.Format[float64](coo))
	require.Empty(t, sparse.Format[float64](csr))
	require.Empty(t, sparse.Format[int](d))
	require.Empty(t, coo.String())
	require.Empty(t, csr.String())

	var buf bytes.Buffer
	n, err := sparse.Fprint[float64](&buf, csr)
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestFormat_AllZero keeps the shape of a matrix without entries.
func TestFormat_AllZero(t *testing.T) {
	m, err := sparse.NewEmptyCSR[float64](2, 3)
	require.NoError(t, err)
	require.Equal(t, "0 0 0 \n0 0 0 ", m.String())
}

// TestFprint writes exactly the formatted grid.
func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := sparse.Fprint[float64](&buf, mustCOO(t))
	require.NoError(t, err)
	require.Equal(t, len(exGrid), n)
	require.Equal(t, exGrid, buf.String())
}
