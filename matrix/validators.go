// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep CSR operations minimal by delegating nil/range/mask checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil, including a typed
// nil *CSR or *Dense stored in the interface.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *CSR:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateRowRange ensures [start, stop) is a legal half-open row range for
// a matrix with the given row count: 0 <= start <= stop <= rows.
//
// Returns wrapped ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateRowRange(rows, start, stop int) error {
	if start < 0 || stop > rows || start > stop {
		return fmt.Errorf("ValidateRowRange: [%d,%d) of %d rows: %w", start, stop, rows, ErrOutOfRange)
	}

	return nil
}

// ValidateMaskLen ensures a boolean row mask covers exactly n rows.
//
// Returns wrapped ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateMaskLen(keep []bool, n int) error {
	if len(keep) != n {
		return fmt.Errorf("ValidateMaskLen: len=%d want %d: %w", len(keep), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameCols – Ensures two matrices share a column count (stackable).
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameCols(a, b Matrix) error {
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameCols", ErrDimensionMismatch)
	}

	return nil
}
