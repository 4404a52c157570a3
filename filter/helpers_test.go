// SPDX-License-Identifier: MIT
// Package filter_test contains shared fixtures for the filter tests.

package filter_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/scfilter/matrix"
	"github.com/katalvlaran/scfilter/series"
	"github.com/stretchr/testify/require"
)

// csrWithDegrees builds a rows×cols matrix whose row i stores degrees[i]
// entries in columns 0..degrees[i]-1, with value i+1.
func csrWithDegrees(t testing.TB, cols int, degrees ...int) *matrix.CSR {
	t.Helper()
	indptr := []int{0}
	var indices []int
	var data []float64
	for i, d := range degrees {
		for j := 0; j < d; j++ {
			indices = append(indices, j)
			data = append(data, float64(i+1))
		}
		indptr = append(indptr, len(data))
	}
	m, err := matrix.NewCSR(len(degrees), cols, indptr, indices, data)
	require.NoError(t, err)

	return m
}

// csrWithRowValues builds a matrix whose row i stores rows[i] as its values
// in columns 0..len(rows[i])-1.
func csrWithRowValues(t testing.TB, cols int, rows ...[]float64) *matrix.CSR {
	t.Helper()
	indptr := []int{0}
	var indices []int
	var data []float64
	for _, r := range rows {
		for j, v := range r {
			indices = append(indices, j)
			data = append(data, v)
		}
		indptr = append(indptr, len(data))
	}
	m, err := matrix.NewCSR(len(rows), cols, indptr, indices, data)
	require.NoError(t, err)

	return m
}

// randomCSR returns a deterministic count matrix with values in 1..5.
func randomCSR(t testing.TB, rows, cols int, density float64, seed int64) *matrix.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, rows*cols)
	for i := range values {
		if rng.Float64() < density {
			values[i] = float64(1 + rng.Intn(5))
		}
	}
	m, err := matrix.NewCSRFromDense(rows, cols, values)
	require.NoError(t, err)

	return m
}

// barcodes returns "cell-0".."cell-(n-1)".
func barcodes(n int) *series.Series {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("cell-%d", i)
	}

	return series.New(out)
}

// referenceKeep is the unbatched keep-mask over the whole matrix.
func referenceKeep(m *matrix.CSR, minGenes, maxGenes int) []bool {
	deg := m.RowDegrees()
	keep := make([]bool, len(deg))
	for i, d := range deg {
		keep[i] = minGenes <= d && d <= maxGenes
	}

	return keep
}
