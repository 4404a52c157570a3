package filter_test

import (
	"fmt"

	"github.com/katalvlaran/scfilter/filter"
	"github.com/katalvlaran/scfilter/matrix"
	"github.com/katalvlaran/scfilter/series"
)

// ExampleFilterCells keeps cells with 2..3 detected genes.
func ExampleFilterCells() {
	m, _ := matrix.NewCSRFromDense(4, 4, []float64{
		1, 1, 0, 0, // 2 genes
		1, 1, 1, 1, // 4 genes
		0, 5, 0, 0, // 1 gene
		2, 0, 2, 2, // 3 genes
	})
	ids := series.New([]string{"AAAC", "AAAG", "AAAT", "AACA"})

	res, _ := filter.FilterCells(m, 2, 3,
		filter.WithBatchCapacity(2),
		filter.WithIdentifiers(ids),
	)
	fmt.Println(res.Matrix.RowDegrees())
	fmt.Println(res.Identifiers.Values())
	fmt.Println(res.KeptRows())
	// Output:
	// [2 3]
	// [AAAC AACA]
	// [0 3]
}

// ExampleFilterGenes shows how the batch split changes the prevalence segment.
func ExampleFilterGenes() {
	m, _ := matrix.NewCSR(2, 4,
		[]int{0, 1, 4},
		[]int{0, 0, 1, 2},
		[]float64{3, 3, 7, 9},
	)

	one, _ := filter.FilterGenes(m, 1, 2, 100, 2, filter.WithBatchCapacity(2))
	two, _ := filter.FilterGenes(m, 1, 2, 100, 2, filter.WithBatchCapacity(1))
	global, _ := filter.FilterGenes(m, 1, 2, 100, 2,
		filter.WithBatchCapacity(1), filter.WithPrevalenceScope(filter.Global))

	fmt.Println(one.SegmentByCounts, one.SegmentByCells)
	fmt.Println(two.SegmentByCounts, two.SegmentByCells)
	fmt.Println(global.SegmentByCells)
	// Output:
	// [3 3 7 9] [3]
	// [3 3 7 9] []
	// [3]
}
