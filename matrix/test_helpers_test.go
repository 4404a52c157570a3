// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic CSR fixtures for slicing/stacking tests.
//   • Keep all data finite and non-negative to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/scfilter/matrix"
	"github.com/stretchr/testify/require"
)

// MustCSRFromDense builds a CSR from a row-major buffer or fails the test.
func MustCSRFromDense(t testing.TB, rows, cols int, values []float64) *matrix.CSR {
	t.Helper()
	m, err := matrix.NewCSRFromDense(rows, cols, values)
	require.NoError(t, err)

	return m
}

// fixture4x5 returns a 4×5 count matrix with row degrees [2, 5, 1, 0].
//
//	row 0: 1 . 3 . .
//	row 1: 2 2 2 2 2
//	row 2: . . . 7 .
//	row 3: . . . . .
func fixture4x5(t testing.TB) *matrix.CSR {
	t.Helper()

	return MustCSRFromDense(t, 4, 5, []float64{
		1, 0, 3, 0, 0,
		2, 2, 2, 2, 2,
		0, 0, 0, 7, 0,
		0, 0, 0, 0, 0,
	})
}

// randomCounts returns a deterministic rows×cols count buffer with the given
// density of non-zeros, values in 1..9.
func randomCounts(rows, cols int, density float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, rows*cols)
	for i := range out {
		if rng.Float64() < density {
			out[i] = float64(1 + rng.Intn(9))
		}
	}

	return out
}

// denseRows renders a matrix into [][]float64 via At for readable asserts.
func denseRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		out[i] = make([]float64, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
