// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by the CSR and Dense
// representations. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix is the read-only two-dimensional view implemented by both *CSR and
// *Dense. Filtering code never mutates a matrix in place; every filtering
// step produces a new value.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) on Dense and
// O(deg(i)) on CSR.
type Matrix interface {
	// Rows returns the number of rows (cells) in the matrix.
	Rows() int

	// Cols returns the number of columns (genes) in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
