// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and operations MUST return these sentinels and
// tests MUST check them via errors.Is. No operation should panic on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX)
// to attach an op tag; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> indptr structure -> column index -> numeric policy.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0),
	// or when a buffer length disagrees with the declared shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row/column index or a row range is
	// outside valid bounds. Public accessors MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. stacking matrices with different column counts, or a row mask whose
	// length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadIndptr signals a broken CSR index pointer: wrong length,
	// indptr[0] != 0, a decreasing step, or indptr[rows] != nnz.
	ErrBadIndptr = errors.New("matrix: invalid index pointer")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeCount signals a negative stored value in a count matrix.
	ErrNegativeCount = errors.New("matrix: negative count")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
