// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvsparse/solve"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Fixed example: a 4×5 matrix with an empty third row.
var (
	demoValues  = []float64{3.1, 4, 5, 7.4, 2, 6}
	demoColumns = []int{2, 4, 2, 4, 1, 3}
	demoRows    = []int{0, 0, 1, 1, 3, 3}
	demoRowIdx  = []int{0, 2, 4, 4, 6}
)

// checker counts failed expectations and logs each one.
type checker struct {
	log    *Logger
	failed int
}

func (c *checker) expect(ok bool, what string, args ...any) {
	if ok {
		c.log.Debug("check passed", append([]any{"check", what}, args...)...)
		return
	}
	c.failed++
	c.log.Error("check failed", append([]any{"check", what}, args...)...)
}

func (c *checker) must(err error, what string) {
	c.expect(err == nil, what, "err", err)
}

func (c *checker) err() error {
	if c.failed > 0 {
		return fmt.Errorf("%d check(s) failed", c.failed)
	}

	return nil
}

// at reads m(row, col) and records a failure on error.
func at[T sparse.Number](c *checker, m sparse.Matrix[T], row, col int) T {
	v, err := m.At(row, col)
	c.must(err, fmt.Sprintf("At(%d,%d)", row, col))

	return v
}

// run executes the demo scenario, printing matrices and vectors to out.
func run(cfg config, log *Logger, out io.Writer) error {
	c := &checker{log: log}

	// ---------- construction ----------
	aCOO, err := sparse.NewCOO(demoValues, demoRows, demoColumns)
	if err != nil {
		return fmt.Errorf("build A (COO): %w", err)
	}
	a5COO, err := sparse.NewCOOWithShape(demoValues, demoRows, demoColumns, cfg.padRows, cfg.padCols)
	if err != nil {
		return fmt.Errorf("build A5 (COO): %w", err)
	}
	aCSR, err := sparse.NewCSR(demoValues, demoColumns, demoRowIdx)
	if err != nil {
		return fmt.Errorf("build A (CSR): %w", err)
	}
	a5CSR, err := sparse.NewCSRWithShape(demoValues, demoColumns, demoRowIdx, len(demoRowIdx)-1, cfg.padCols)
	if err != nil {
		return fmt.Errorf("build A5 (CSR): %w", err)
	}
	bCSR := aCSR.Copy()
	bCOO := aCOO.Copy()
	log.Info("constructors done")

	intValues := []int{3, 4, 5, 7, 2, 6}
	cooInt, err := sparse.NewCOO(intValues, demoRows, demoColumns)
	if err != nil {
		return fmt.Errorf("build int COO: %w", err)
	}
	csrInt, err := sparse.NewCSR(intValues, demoColumns, demoRowIdx)
	if err != nil {
		return fmt.Errorf("build int CSR: %w", err)
	}
	c.expect(at[int](c, cooInt, 2, 3) == 5 && at[int](c, csrInt, 2, 3) == 5, "int element type")

	// ---------- shape and nnz ----------
	c.expect(aCOO.Rows() == 4 && aCOO.Cols() == 5, "A (COO) shape", "rows", aCOO.Rows(), "cols", aCOO.Cols())
	c.expect(a5COO.Rows() == cfg.padRows && a5COO.Cols() == cfg.padCols, "A5 (COO) shape")
	c.expect(bCSR.Rows() == 4 && bCSR.Cols() == 5, "B (CSR) shape")
	c.expect(a5CSR.Rows() == 4 && a5CSR.Cols() == cfg.padCols, "A5 (CSR) shape")
	c.expect(aCOO.NNZ() == 6 && a5COO.NNZ() == 6 && bCSR.NNZ() == 6 && a5CSR.NNZ() == 6, "nnz")

	// ---------- reads ----------
	WithMatrix[float64](log, "A", aCOO).Info("read", "coord", "(2,3)", "value", at[float64](c, aCOO, 2, 3))
	WithMatrix[float64](log, "B", bCSR).Info("read", "coord", "(1,5)", "value", at[float64](c, bCSR, 1, 5))

	// ---------- writes ----------
	c.must(aCOO.Set(2, 3, 3.3), "A(2,3) = 3.3")
	c.must(bCSR.Set(1, 5, 1.2), "B(1,5) = 1.2")
	c.expect(at[float64](c, aCOO, 2, 3) == 3.3 && at[float64](c, bCSR, 1, 5) == 1.2, "write then read")
	c.expect(bCSR.NNZ() == 6, "B nnz after overwrite", "nnz", bCSR.NNZ())

	// Every insertion path: empty row, end of row, past the last row, gap in a row.
	c.must(a5COO.Set(3, 9, 30), "A5 COO (3,9)")
	c.must(a5COO.Set(4, 9, 31), "A5 COO (4,9)")
	c.must(a5COO.Set(9, 9, 32), "A5 COO (9,9)")
	c.expect(at[float64](c, a5COO, 3, 9) == 30 && at[float64](c, a5COO, 4, 9) == 31 &&
		at[float64](c, a5COO, 9, 9) == 32, "A5 COO insertions")
	c.must(a5COO.Validate(), "A5 COO order after insertions")
	c.expect(a5COO.NNZ() == 9, "A5 COO nnz after insertions", "nnz", a5COO.NNZ())

	c.must(a5CSR.Set(2, 9, 30), "A5 CSR (2,9)")
	c.must(a5CSR.Set(3, 9, 31), "A5 CSR (3,9)")
	c.must(a5CSR.Set(4, 9, 32), "A5 CSR (4,9)")
	c.must(a5CSR.Set(2, 4, 33), "A5 CSR (2,4)")
	c.expect(at[float64](c, a5CSR, 2, 9) == 30 && at[float64](c, a5CSR, 3, 9) == 31 &&
		at[float64](c, a5CSR, 4, 9) == 32 && at[float64](c, a5CSR, 2, 4) == 33, "A5 CSR insertions")
	c.must(a5CSR.Validate(), "A5 CSR order after insertions")
	c.expect(a5CSR.NNZ() == 10, "A5 CSR nnz after insertions", "nnz", a5CSR.NNZ())
	log.Info("reads and writes done")

	// ---------- formatting ----------
	printMatrix[float64](out, "A_5 (COO, explicit shape)", a5COO)
	printMatrix[float64](out, "A_5 (CSR, explicit shape)", a5CSR)
	printMatrix[float64](out, "A (COO)", aCOO)
	printMatrix[float64](out, "B (CSR)", bCSR)

	// ---------- products ----------
	v := []float64{1, 2, 3, 4, 5}
	printVector(out, "v", v)
	pa, err := sparse.MulVec[float64](aCOO, v)
	c.must(err, "A * v")
	printVector(out, "A * v", pa)
	pb, err := sparse.MulVec[float64](bCSR, v)
	c.must(err, "B * v")
	printVector(out, "B * v", pb)

	// ---------- conversions ----------
	aFromCOO := aCOO.ToCSR()
	bFromCSR := bCSR.ToCOO()
	c.expect(sameEntries[float64](c, aCOO, aFromCOO) && sameEntries[float64](c, bCSR, bFromCSR), "conversions keep content")
	c.must(aFromCOO.Validate(), "ToCSR result valid")
	c.must(bFromCSR.Validate(), "ToCOO result valid")
	c.expect(at[float64](c, bCOO, 2, 3) == 5, "copy independent of A")
	log.Info("conversions done")

	// ---------- product identities ----------
	for _, m := range []sparse.Matrix[float64]{aCOO, bCSR} {
		checkRowSums(c, m)
		checkBasisColumns(c, m)
	}
	log.Info("product identities done")

	// ---------- direct solve ----------
	if err = demoSolve(c, log, out); err != nil {
		return err
	}

	return c.err()
}

func printMatrix[T sparse.Number](out io.Writer, name string, m sparse.Matrix[T]) {
	fmt.Fprintf(out, "%s =\n", name)
	_, _ = sparse.Fprint(out, m)
	fmt.Fprintln(out)
}

func printVector(out io.Writer, name string, v []float64) {
	fmt.Fprintf(out, "%s = ( ", name)
	for _, x := range v {
		fmt.Fprintf(out, "%v ", x)
	}
	fmt.Fprintln(out, ")")
}

// sameEntries compares two matrices cell by cell over the full shape.
func sameEntries[T sparse.Number](c *checker, a, b sparse.Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.NNZ() != b.NNZ() {
		return false
	}
	for i := 1; i <= a.Rows(); i++ {
		for j := 1; j <= a.Cols(); j++ {
			if at(c, a, i, j) != at(c, b, i, j) {
				return false
			}
		}
	}

	return true
}

// checkRowSums checks (M·1)[i] == Σ_j M(i,j).
func checkRowSums(c *checker, m sparse.Matrix[float64]) {
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1
	}
	y, err := sparse.MulVec(m, ones)
	c.must(err, "M * 1")
	if err != nil {
		return
	}
	for i := 1; i <= m.Rows(); i++ {
		sum := 0.0
		for j := 1; j <= m.Cols(); j++ {
			sum += at(c, m, i, j)
		}
		c.expect(y[i-1] == sum, "row sum", "row", i)
	}
}

// checkBasisColumns checks (M·e_k)[i] == M(i+1, k+1) for every basis vector.
func checkBasisColumns(c *checker, m sparse.Matrix[float64]) {
	for k := 0; k < m.Cols(); k++ {
		e := make([]float64, m.Cols())
		e[k] = 1
		y, err := sparse.MulVec(m, e)
		c.must(err, "M * e_k")
		if err != nil {
			return
		}
		for i := range y {
			c.expect(y[i] == at(c, m, i+1, k+1), "basis column", "row", i+1, "col", k+1)
		}
	}
}

// demoSolve solves a small diagonally dominant system built entry by entry.
func demoSolve(c *checker, log *Logger, out io.Writer) error {
	a, err := sparse.NewEmptyCSR[float64](3, 3)
	if err != nil {
		return fmt.Errorf("build system: %w", err)
	}
	stamps := []struct {
		row, col int
		v        float64
	}{
		{1, 1, 4}, {1, 2, -1},
		{2, 1, -1}, {2, 2, 4}, {2, 3, -1},
		{3, 2, -1}, {3, 3, 4},
	}
	for _, s := range stamps {
		c.must(a.Add(s.row, s.col, s.v), "stamp")
	}
	b := []float64{3, 2, 3}

	x, err := solve.LU(a, b)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	res, err := solve.Residual(a, x, b)
	c.must(err, "residual")
	c.expect(res < 1e-9 && !math.IsNaN(res), "solution residual", "residual", res)
	printVector(out, "x", x)
	WithMatrix[float64](log, "system", a).Info("solved", "residual", res)

	return nil
}
