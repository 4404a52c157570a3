// SPDX-License-Identifier: MIT

// Package matrix - Dense, the host-side expansion of a CSR count matrix.
//
// Purpose:
//   - Hold the row-major expansion produced by CSR.ToDense: one row per
//     cell, one column per gene, absent entries zero.
//   - Read-only after construction; the only writer is CSR.ToDense via
//     accumulate, which applies the numeric policy to every summed cell.
//
// Complexity quicksheet:
//   - At: O(1); Row: O(cols); String: O(rows*cols).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	opDenseAt  = "Dense.At"
	opDenseRow = "Dense.Row"
)

// Dense is a row-major rows×cols matrix (offset = i*cols + j).
// A 0×cols Dense is legal: it is what a filter with no surviving cells
// expands to.
type Dense struct {
	r, c int
	data []float64 // len == r*c
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense allocates a zero rows×cols buffer. Zero dimensions are allowed.
func newDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// accumulate adds v into (i, j). Duplicate CSR entries for one gene land
// on the same cell, so the policy is checked on the sum, not on v alone.
func (m *Dense) accumulate(i, j int, v float64, o Options) error {
	off := i*m.c + j
	sum := m.data[off] + v
	if o.validateNaNInf && (math.IsNaN(sum) || math.IsInf(sum, 0)) {
		return fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf)
	}
	if !o.allowNegative && sum < 0 {
		return fmt.Errorf("(%d,%d) value %g: %w", i, j, sum, ErrNegativeCount)
	}
	m.data[off] = sum

	return nil
}

// Rows returns the number of rows (cells).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns (genes).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opDenseAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of the expression profile of cell i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", opDenseRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String renders one bracketed line per row, e.g. "[1, 0]\n[2, 3]\n".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
