// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"math"

	spfactor "github.com/edp1096/sparse"

	"github.com/katalvlaran/lvsparse/sparse"
)

const (
	opLU       = "solve.LU"
	opResidual = "solve.Residual"
)

// engineConfig mirrors the real-valued configuration the engine is known to
// run with: expandable storage, no index translation.
func engineConfig() *spfactor.Configuration {
	return &spfactor.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// LU solves a·x = b and returns x (0-based, length a.Rows()).
//
// Implementation:
//   - Stage 1: validate a (non-nil, square, non-empty) and len(b) == a.Rows().
//   - Stage 2: create an engine matrix of size n and stamp every stored entry
//     of a with += (explicit zeros become structural entries).
//   - Stage 3: factor; a failure is reported as ErrSingular.
//   - Stage 4: solve with the engine's 1-based right-hand side and shift the
//     solution back to 0-based.
//
// Errors:
//   - sparse.ErrNilMatrix, ErrNotSquare, ErrEmpty, sparse.ErrDimensionMismatch,
//     ErrSingular (wrapping the engine error), or an engine solve error.
//
// Complexity: dominated by the sparse factorization (fill-in dependent).
func LU(a *sparse.CSR[float64], b []float64) ([]float64, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opLU, sparse.ErrNilMatrix)
	}
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opLU, n, a.Cols(), ErrNotSquare)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opLU, ErrEmpty)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d, rows=%d: %w", opLU, len(b), n, sparse.ErrDimensionMismatch)
	}

	mat, err := spfactor.Create(int64(n), engineConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: create: %w", opLU, err)
	}
	defer mat.Destroy()
	mat.Clear()

	a.Do(func(row, col int, v float64) bool {
		mat.GetElement(int64(row), int64(col)).Real += v
		return true
	})

	if err = mat.Factor(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opLU, ErrSingular, err)
	}

	rhs := make([]float64, n+1) // engine vectors are 1-based
	copy(rhs[1:], b)
	sol, err := mat.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%s: solve: %w", opLU, err)
	}
	if len(sol) < n+1 {
		return nil, fmt.Errorf("%s: solution length %d: %w", opLU, len(sol), sparse.ErrDimensionMismatch)
	}

	x := make([]float64, n)
	copy(x, sol[1:n+1])
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: x[%d]=%v: %w", opLU, i, v, ErrSingular)
		}
	}

	return x, nil
}

// Residual returns max_i |(a·x)_i − b_i|.
func Residual(a sparse.Matrix[float64], x, b []float64) (float64, error) {
	ax, err := sparse.MulVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	if len(b) != len(ax) {
		return 0, fmt.Errorf("%s: %w", opResidual, sparse.ErrDimensionMismatch)
	}

	worst := 0.0
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}
