// SPDX-License-Identifier: MIT

package solve

import "errors"

var (
	// ErrNotSquare is returned when A has Rows() != Cols().
	ErrNotSquare = errors.New("solve: matrix is not square")

	// ErrSingular is returned when the factorization fails (zero or unusable
	// pivot). The engine's own error is wrapped alongside it.
	ErrSingular = errors.New("solve: singular matrix")

	// ErrEmpty is returned for a 0×0 system.
	ErrEmpty = errors.New("solve: empty system")
)
