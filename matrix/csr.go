// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse row (CSR) count matrix.
//
// Purpose:
//   - Hold a cells×genes count matrix as three parallel buffers: the row-start
//     index pointer (indptr, len rows+1), column indices and stored values.
//   - Provide the row-oriented primitives batch filtering is built from:
//     row-range slicing, row degrees, boolean row selection and vertical
//     stacking.
//   - Guarantee CSR validity of every value this package hands out.
//
// Invariants (checked by NewCSR, preserved by every operation):
//   - len(indptr) == rows+1, indptr[0] == 0, indptr is non-decreasing.
//   - indptr[rows] == len(indices) == len(data).
//   - 0 <= indices[k] < cols.
//   - indptr[i+1]-indptr[i] is the degree of row i (stored entries in row i).
//
// Complexity quicksheet:
//   - NewCSR: O(rows+nnz); RowSlice: O(rows'+nnz'); SelectRows: O(rows+nnz);
//     VStack: O(Σ rows + Σ nnz); At: O(deg(i)); RowDegrees: O(rows).

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opNewCSR          = "NewCSR"
	opNewCSRFromDense = "NewCSRFromDense"
	opRowSlice        = "CSR.RowSlice"
	opDataRange       = "CSR.DataRange"
	opSelectRows      = "CSR.SelectRows"
	opVStack          = "VStack"
	opRowDegree       = "CSR.RowDegree"
	opRowEntries      = "CSR.RowEntries"
	opCSRAt           = "CSR.At"
)

// matrixErrorf wraps an underlying error with the given op tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CSR is an immutable compressed sparse row matrix of float64 counts.
// The zero value is not usable; construct with NewCSR, NewCSRFromDense or
// EmptyCSR.
type CSR struct {
	r, c    int       // rows (cells) and columns (genes)
	indptr  []int     // row-start offsets, len r+1
	indices []int     // column index per stored entry
	data    []float64 // stored value per entry
}

var (
	_ Matrix       = (*CSR)(nil)
	_ fmt.Stringer = (*CSR)(nil)
)

// NewCSR validates and builds a CSR matrix from its three buffers.
// Implementation:
//   - Stage 1: validate shape (rows>=0, cols>=0).
//   - Stage 2: validate indptr structure against rows and nnz.
//   - Stage 3: validate column indices and the numeric policy.
//   - Stage 4: copy the buffers so the result owns its storage.
//
// Behavior highlights:
//   - Unsorted or duplicate column indices inside a row are accepted; the row
//     degree counts stored entries, not distinct genes.
//
// Errors:
//   - ErrBadShape, ErrBadIndptr, ErrOutOfRange, ErrNaNInf, ErrNegativeCount.
//
// Complexity:
//   - Time O(rows+nnz), Space O(rows+nnz).
func NewCSR(rows, cols int, indptr, indices []int, data []float64, opts ...Option) (*CSR, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape.
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewCSR, ErrBadShape)
	}
	if len(indices) != len(data) {
		return nil, fmt.Errorf("%s: len(indices)=%d len(data)=%d: %w",
			opNewCSR, len(indices), len(data), ErrBadShape)
	}

	// Stage 2: index pointer.
	if err := validateIndptr(indptr, rows, len(data)); err != nil {
		return nil, matrixErrorf(opNewCSR, err)
	}

	// Stage 3: entries.
	var k int
	for k = 0; k < len(indices); k++ {
		if indices[k] < 0 || indices[k] >= cols {
			return nil, fmt.Errorf("%s: entry %d column %d: %w", opNewCSR, k, indices[k], ErrOutOfRange)
		}
	}
	if err := validateValues(data, o); err != nil {
		return nil, matrixErrorf(opNewCSR, err)
	}

	// Stage 4: own the storage.
	return &CSR{
		r:       rows,
		c:       cols,
		indptr:  slices.Clone(indptr),
		indices: slices.Clone(indices),
		data:    slices.Clone(data),
	}, nil
}

// NewCSRFromDense compresses a row-major rows×cols buffer, dropping zeros.
// Column indices come out sorted within each row.
//
// Errors:
//   - ErrBadShape when len(values) != rows*cols or a dimension is negative.
//   - ErrNaNInf, ErrNegativeCount per the numeric policy.
//
// Complexity: O(rows*cols).
func NewCSRFromDense(rows, cols int, values []float64, opts ...Option) (*CSR, error) {
	if rows < 0 || cols < 0 || len(values) != rows*cols {
		return nil, matrixErrorf(opNewCSRFromDense, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if err := validateValues(values, o); err != nil {
		return nil, matrixErrorf(opNewCSRFromDense, err)
	}

	indptr := make([]int, rows+1)
	indices := make([]int, 0)
	data := make([]float64, 0)
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = values[i*cols+j]
			if v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(data)
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}, nil
}

// EmptyCSR returns a legal 0×cols matrix (indptr == [0]).
// Negative cols are clamped to zero.
func EmptyCSR(cols int) *CSR {
	if cols < 0 {
		cols = 0
	}

	return &CSR{r: 0, c: cols, indptr: []int{0}, indices: []int{}, data: []float64{}}
}

// validateIndptr checks the index pointer contract for rows and nnz.
func validateIndptr(indptr []int, rows, nnz int) error {
	if len(indptr) != rows+1 {
		return fmt.Errorf("len(indptr)=%d want %d: %w", len(indptr), rows+1, ErrBadIndptr)
	}
	if indptr[0] != 0 {
		return fmt.Errorf("indptr[0]=%d: %w", indptr[0], ErrBadIndptr)
	}
	var i int
	for i = 0; i < rows; i++ {
		if indptr[i+1] < indptr[i] {
			return fmt.Errorf("indptr decreases at row %d: %w", i, ErrBadIndptr)
		}
	}
	if indptr[rows] != nnz {
		return fmt.Errorf("indptr[%d]=%d nnz=%d: %w", rows, indptr[rows], nnz, ErrBadIndptr)
	}

	return nil
}

// validateValues enforces the numeric policy on stored values.
func validateValues(data []float64, o Options) error {
	for k, v := range data {
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return fmt.Errorf("entry %d: %w", k, ErrNaNInf)
		}
		if !o.allowNegative && v < 0 {
			return fmt.Errorf("entry %d value %g: %w", k, v, ErrNegativeCount)
		}
	}

	return nil
}

// Rows returns the number of rows (cells).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns (genes).
func (m *CSR) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *CSR) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// Indptr returns the row-start offsets. The slice aliases internal storage
// and MUST NOT be modified.
func (m *CSR) Indptr() []int { return m.indptr }

// Indices returns the column index of every stored entry. The slice aliases
// internal storage and MUST NOT be modified.
func (m *CSR) Indices() []int { return m.indices }

// Data returns the stored values. The slice aliases internal storage and
// MUST NOT be modified.
func (m *CSR) Data() []float64 { return m.data }

// RowDegree returns indptr[i+1]-indptr[i], the stored-entry count of row i.
func (m *CSR) RowDegree(i int) (int, error) {
	if i < 0 || i >= m.r {
		return 0, fmt.Errorf("%s(%d): %w", opRowDegree, i, ErrOutOfRange)
	}

	return m.indptr[i+1] - m.indptr[i], nil
}

// RowDegrees returns the degree of every row, i.e. the first difference of
// indptr. Computed fresh on each call.
// Complexity: O(rows).
func (m *CSR) RowDegrees() []int {
	deg := make([]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		deg[i] = m.indptr[i+1] - m.indptr[i]
	}

	return deg
}

// RowEntries returns copies of the column indices and values stored in row i.
func (m *CSR) RowEntries(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, fmt.Errorf("%s(%d): %w", opRowEntries, i, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return slices.Clone(m.indices[lo:hi]), slices.Clone(m.data[lo:hi]), nil
}

// At returns the value at (i, j); absent entries read as zero and duplicate
// entries for the same column are summed.
// Complexity: O(deg(i)).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opCSRAt, i, j, ErrOutOfRange)
	}
	var sum float64
	var k int
	for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
		if m.indices[k] == j {
			sum += m.data[k]
		}
	}

	return sum, nil
}

// RowSlice returns rows [start, stop) as an independent CSR.
// Implementation:
//   - Stage 1: validate 0 <= start <= stop <= rows.
//   - Stage 2: rebase indptr[start:stop+1] so that the slice starts at 0.
//   - Stage 3: copy indices/data in [indptr[start], indptr[stop]).
//
// Behavior highlights:
//   - start == stop yields a legal 0×cols matrix.
//
// Errors:
//   - ErrOutOfRange for an invalid range.
//
// Complexity:
//   - Time O((stop-start) + nnz'), Space the same.
func (m *CSR) RowSlice(start, stop int) (*CSR, error) {
	if err := ValidateRowRange(m.r, start, stop); err != nil {
		return nil, matrixErrorf(opRowSlice, err)
	}

	base := m.indptr[start]
	indptr := make([]int, stop-start+1)
	var i int
	for i = start; i <= stop; i++ {
		indptr[i-start] = m.indptr[i] - base
	}
	lo, hi := m.indptr[start], m.indptr[stop]

	return &CSR{
		r:       stop - start,
		c:       m.c,
		indptr:  indptr,
		indices: slices.Clone(m.indices[lo:hi]),
		data:    slices.Clone(m.data[lo:hi]),
	}, nil
}

// DataRange returns a copy of the stored values of rows [start, stop), i.e.
// data[indptr[start]:indptr[stop]]. Values of consecutive rows are
// contiguous by construction.
//
// Errors:
//   - ErrOutOfRange for an invalid range.
func (m *CSR) DataRange(start, stop int) ([]float64, error) {
	if err := ValidateRowRange(m.r, start, stop); err != nil {
		return nil, matrixErrorf(opDataRange, err)
	}

	return slices.Clone(m.data[m.indptr[start]:m.indptr[stop]]), nil
}

// SelectRows keeps the rows whose mask entry is true, in their original order.
// Implementation:
//   - Stage 1: validate len(keep) == rows.
//   - Stage 2: size the result (surviving rows and entries).
//   - Stage 3: copy surviving rows in ascending order.
//
// Errors:
//   - ErrDimensionMismatch when len(keep) != rows.
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows' + nnz').
func (m *CSR) SelectRows(keep []bool) (*CSR, error) {
	if err := ValidateMaskLen(keep, m.r); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}

	// Stage 2: count survivors to allocate once.
	var i, rows, nnz int
	for i = 0; i < m.r; i++ {
		if keep[i] {
			rows++
			nnz += m.indptr[i+1] - m.indptr[i]
		}
	}

	// Stage 3: copy.
	indptr := make([]int, 1, rows+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	for i = 0; i < m.r; i++ {
		if !keep[i] {
			continue
		}
		lo, hi := m.indptr[i], m.indptr[i+1]
		indices = append(indices, m.indices[lo:hi]...)
		data = append(data, m.data[lo:hi]...)
		indptr = append(indptr, len(data))
	}

	return &CSR{r: rows, c: m.c, indptr: indptr, indices: indices, data: data}, nil
}

// VStack stacks same-width matrices vertically, in argument order.
// Implementation:
//   - Stage 1: validate at least one part, no nil part, equal column counts.
//   - Stage 2: concatenate indices/data; shift each part's indptr by the
//     running entry offset.
//
// Behavior highlights:
//   - Zero-row parts are legal and contribute nothing.
//
// Errors:
//   - ErrBadShape when called with no parts (the width is unknown).
//   - ErrNilMatrix for a nil part; ErrDimensionMismatch for differing widths.
//
// Complexity:
//   - Time O(Σ rows + Σ nnz), Space the same.
func VStack(parts ...*CSR) (*CSR, error) {
	if len(parts) == 0 {
		return nil, matrixErrorf(opVStack, ErrBadShape)
	}
	var rows, nnz int
	for k, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("%s: part %d: %w", opVStack, k, ErrNilMatrix)
		}
		if err := ValidateSameCols(parts[0], p); err != nil {
			return nil, fmt.Errorf("%s: part %d has %d cols, want %d: %w", opVStack, k, p.c, parts[0].c, err)
		}
		rows += p.r
		nnz += len(p.data)
	}

	indptr := make([]int, 1, rows+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	var i, offset int
	for _, p := range parts {
		for i = 1; i <= p.r; i++ {
			indptr = append(indptr, offset+p.indptr[i])
		}
		indices = append(indices, p.indices...)
		data = append(data, p.data...)
		offset += len(p.data)
	}

	return &CSR{r: rows, c: parts[0].c, indptr: indptr, indices: indices, data: data}, nil
}

// Clone returns a deep copy.
func (m *CSR) Clone() *CSR {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  slices.Clone(m.indptr),
		indices: slices.Clone(m.indices),
		data:    slices.Clone(m.data),
	}
}

// Equal reports structural equality: same shape and identical buffers.
// Two matrices holding the same values with a different entry order are
// not Equal; compare ToDense outputs for value equality.
func (m *CSR) Equal(other *CSR) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.r == other.r &&
		m.c == other.c &&
		slices.Equal(m.indptr, other.indptr) &&
		slices.Equal(m.indices, other.indices) &&
		slices.Equal(m.data, other.data)
}

// String renders a one-line summary for logs.
func (m *CSR) String() string {
	return fmt.Sprintf("CSR(%dx%d, nnz=%d)", m.r, m.c, len(m.data))
}
