// SPDX-License-Identifier: MIT

// Package matrix - exports of a CSR count matrix to dense representations.
//
// Purpose:
//   - ToDense: host-side *Dense owned by this package (zero-row legal).
//   - ToGonum: *mat.Dense for handing filtered data to gonum-based analysis.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToDense = "CSR.ToDense"
	opToGonum = "CSR.ToGonum"
)

// ToDense expands the matrix into a row-major *Dense.
// Implementation:
//   - Stage 1: allocate a zero rows×cols buffer.
//   - Stage 2: add every stored entry into its cell; duplicate entries for
//     the same (row, col) are summed.
//   - Stage 3: check each summed cell against the numeric policy, which
//     defaults to finite and non-negative and is relaxed with opts.
//
// Behavior highlights:
//   - A 0×c or r×0 matrix yields a legal zero-area Dense.
//   - A CSR built with WithNoValidateNaNInf still fails here unless the
//     same option is passed again.
//
// Errors:
//   - ErrNaNInf, ErrNegativeCount per the numeric policy.
//
// Complexity:
//   - Time O(rows*cols + nnz), Space O(rows*cols).
func (m *CSR) ToDense(opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	d, err := newDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	var i, k int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			if err = d.accumulate(i, m.indices[k], m.data[k], o); err != nil {
				return nil, matrixErrorf(opToDense, err)
			}
		}
	}

	return d, nil
}

// ToGonum expands the matrix into a gonum *mat.Dense.
// gonum forbids zero-sized matrices, so an empty shape is reported as
// ErrBadShape instead of panicking inside mat.NewDense. opts are passed to
// ToDense.
//
// Complexity:
//   - Time O(rows*cols + nnz), Space O(rows*cols).
func (m *CSR) ToGonum(opts ...Option) (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGonum, m.r, m.c, ErrBadShape)
	}
	d, err := m.ToDense(opts...)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(m.r, m.c, d.data), nil
}
