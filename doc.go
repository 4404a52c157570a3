// Package scfilter is a batched quality-control filter for single-cell
// count matrices: cells×genes data held as a compressed sparse row (CSR)
// matrix, processed a bounded number of rows at a time.
//
// What is in the box?
//
//   - Cell filtering: keep cells whose detected-gene count is in range,
//     with barcodes kept aligned to the surviving rows
//   - Gene/value filtering: value-range and prevalence segments grown
//     batch by batch, with per-batch or matrix-wide counting
//   - An explicit device→host transfer boundary with a capacity budget
//   - YAML configuration and structured (slog) logging
//
// Everything is organized under these subpackages:
//
//	matrix/   - CSR and Dense matrices, validators, gonum export
//	series/   - positional string series (cell barcodes) with labels
//	batch/    - row and data-pointer batch partitioning
//	device/   - Transfer interface: Host (no-op) and Budget
//	filter/   - FilterCells, FilterGenes, Accumulator, options
//	config/   - YAML thresholds → filter options and logger
//	examples/ - a runnable end-to-end QC pass
//
// Quick example:
//
//	m, _ := matrix.NewCSRFromDense(2, 3, []float64{1, 0, 2, 0, 0, 5})
//	res, _ := filter.FilterCells(m, 2, 3, filter.WithBatchCapacity(1))
//	fmt.Println(res.Matrix) // CSR(1x3, nnz=2)
//
//	go get github.com/katalvlaran/scfilter
package scfilter
