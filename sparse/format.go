// SPDX-License-Identifier: MIT

// Package sparse - dense grid formatter.
//
// Layout:
//   - Every cell is rendered with %v (shortest representation: 3, not 3.000000;
//     3.1, not 3.100000).
//   - All cells are padded with spaces to one common width: the longest
//     rendered cell plus one separator space.
//   - Rows are separated by a single '\n'; there is no leading or trailing
//     newline, so callers frame the grid themselves.

package sparse

import (
	"fmt"
	"io"
	"strings"
)

const (
	_fmtRowSep  = "\n"
	_fmtPadChar = " "
)

// Format renders m as an aligned grid of its dense values.
// A nil matrix (typed nil included) or one with no rows or no columns
// renders as "".
// Complexity: O(r*c) time and memory.
func Format[T Number](m Matrix[T]) string {
	if ValidateNotNil(m) != nil || m.Rows() == 0 || m.Cols() == 0 {
		return ""
	}
	d, err := ToDense(m)
	if err != nil {
		return ""
	}

	cells := make([]string, len(d.data))
	width := 0
	for i, v := range d.data {
		cells[i] = fmt.Sprintf("%v", v)
		width = max(width, len(cells[i]))
	}
	width++ // values are separated by one space

	var b strings.Builder
	b.Grow(d.r * (d.c*width + len(_fmtRowSep)))
	for i := 0; i < d.r; i++ {
		if i != 0 {
			b.WriteString(_fmtRowSep)
		}
		for _, s := range cells[i*d.c : (i+1)*d.c] {
			b.WriteString(s)
			b.WriteString(strings.Repeat(_fmtPadChar, width-len(s)))
		}
	}

	return b.String()
}

// Fprint writes Format(m) to w and returns the number of bytes written.
func Fprint[T Number](w io.Writer, m Matrix[T]) (int, error) {
	return io.WriteString(w, Format(m))
}
