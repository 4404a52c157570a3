// Package matrix_test provides benchmarks for CSR row operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/scfilter/matrix"
)

// benchRows are the row counts to benchmark (2000 genes each, 5% density).
var benchRows = []int{1000, 10000}

// sinks to defeat dead-code elimination
var (
	sinkCSR *matrix.CSR
	sinkDeg []int
)

func BenchmarkRowSlice(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			m := MustCSRFromDense(b, n, 2000, randomCounts(n, 2000, 0.05, 1337))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := m.RowSlice(n/4, n/2)
				if err != nil {
					b.Fatal(err)
				}
				sinkCSR = s
			}
		})
	}
}

func BenchmarkSelectRowsByDegree(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			m := MustCSRFromDense(b, n, 2000, randomCounts(n, 2000, 0.05, 4242))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkDeg = m.RowDegrees()
				keep := make([]bool, len(sinkDeg))
				for r, d := range sinkDeg {
					keep[r] = d >= 100
				}
				s, err := m.SelectRows(keep)
				if err != nil {
					b.Fatal(err)
				}
				sinkCSR = s
			}
		})
	}
}
