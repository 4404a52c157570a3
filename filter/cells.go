// SPDX-License-Identifier: MIT

// Package filter - cell filtering by genes detected per cell.
//
// Purpose:
//   - Drop cells (rows) whose degree, the number of stored genes, lies
//     outside [minGenes, maxGenes], batch by batch, then merge.
//   - Keep an optional barcode series aligned to the surviving rows.
//
// Determinism:
//   - Batches run strictly in ascending row order; survivors keep their
//     original relative order regardless of the batch capacity.

package filter

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/scfilter/batch"
	"github.com/katalvlaran/scfilter/matrix"
	"github.com/katalvlaran/scfilter/series"
)

const opFilterCells = "FilterCells"

// CellResult is the merged output of FilterCells.
type CellResult struct {
	// Matrix holds the surviving rows in original order.
	Matrix *matrix.CSR

	// Identifiers holds the surviving barcodes, row-aligned to Matrix with
	// labels reset to 0..n-1. Nil when no identifiers were supplied.
	Identifiers *series.Series

	// Kept is the set of original row indices that survived.
	Kept *roaring.Bitmap

	// Batches is the number of batches processed.
	Batches int
}

// KeptRows returns the surviving original row indices in ascending order.
func (r *CellResult) KeptRows() []int {
	out := make([]int, 0, r.Kept.GetCardinality())
	it := r.Kept.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// cellBatch is the filtered output of one row batch.
type cellBatch struct {
	matrix *matrix.CSR
	ids    *series.Series // nil without identifiers
	kept   int
}

// FilterCells keeps the rows of m whose degree d satisfies
// minGenes <= d <= maxGenes.
// Implementation:
//   - Stage 1: validate matrix, bounds, capacity and identifier length.
//   - Stage 2: a zero-row matrix short-circuits to an empty 0×cols result.
//   - Stage 3: per batch, slice rows, mask by degree, select rows (and the
//     same positions of the identifier series), transfer to host.
//   - Stage 4: VStack the batches; Concat + ResetIndex the identifiers.
//
// Behavior highlights:
//   - The result is identical for every batch capacity.
//   - A batch without survivors contributes a 0-row piece to the stack.
//   - On any error no partial result is returned.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidRange, ErrInvalidCapacity, ErrShapeMismatch,
//     ErrTooManyRows, and transfer errors wrapped with the batch range.
//   - ErrShapeMismatch also when a transfer returns a matrix whose shape
//     differs from the batch it was given.
//   - Every failure is logged through FilterDone before it is returned.
//
// Complexity:
//   - Time O(rows + nnz), peak extra space O(capacity + nnz of one batch)
//     on the device side plus the merged result.
func FilterCells(m *matrix.CSR, minGenes, maxGenes int, opts ...Option) (*CellResult, error) {
	o := gatherOptions(opts...)
	log := o.logger.WithOp(opFilterCells)

	// Stage 1: validate.
	if err := validateCellArgs(m, minGenes, maxGenes, o); err != nil {
		log.FilterDone(rowsOf(m), 0, 0, err)
		return nil, err
	}

	// Stage 2: empty input.
	if m.Rows() == 0 {
		res := &CellResult{Matrix: matrix.EmptyCSR(m.Cols()), Kept: roaring.New()}
		if o.identifiers != nil {
			res.Identifiers = series.New(nil)
		}
		log.FilterDone(0, 0, 0, nil)

		return res, nil
	}

	ranges, err := batch.Rows(m.Rows(), o.batchCapacity)
	if err != nil {
		err = fmt.Errorf("%s: %w", opFilterCells, err)
		log.FilterDone(m.Rows(), 0, 0, err)
		return nil, err
	}

	// Stage 3: filter batch by batch.
	kept := roaring.New()
	parts := make([]*matrix.CSR, 0, len(ranges))
	var idParts []*series.Series
	if o.identifiers != nil {
		idParts = make([]*series.Series, 0, len(ranges))
	}
	var total int
	for k, r := range ranges {
		b, err := filterCellBatch(m, r, minGenes, maxGenes, o, kept)
		if err != nil {
			err = fmt.Errorf("%s: batch %d %s: %w", opFilterCells, k, r, err)
			log.FilterDone(m.Rows(), len(ranges), 0, err)
			return nil, err
		}
		parts = append(parts, b.matrix)
		if b.ids != nil {
			idParts = append(idParts, b.ids)
		}
		total += b.kept
		log.BatchDone(k, r.Start, r.Stop, b.kept)
	}

	// Stage 4: merge.
	merged, err := matrix.VStack(parts...)
	if err != nil {
		err = fmt.Errorf("%s: merge: %w", opFilterCells, err)
		log.FilterDone(m.Rows(), len(ranges), 0, err)
		return nil, err
	}
	res := &CellResult{Matrix: merged, Kept: kept, Batches: len(ranges)}
	if o.identifiers != nil {
		ids, err := series.Concat(idParts...)
		if err != nil {
			err = fmt.Errorf("%s: merge identifiers: %w", opFilterCells, err)
			log.FilterDone(m.Rows(), len(ranges), 0, err)
			return nil, err
		}
		res.Identifiers = ids.ResetIndex()
	}
	log.FilterDone(m.Rows(), len(ranges), total, nil)

	return res, nil
}

// ValidateCellBounds reports ErrInvalidRange for a negative degree bound or
// minGenes > maxGenes.
func ValidateCellBounds(minGenes, maxGenes int) error {
	if minGenes < 0 || maxGenes < 0 {
		return fmt.Errorf("min_genes=%d max_genes=%d: negative bound: %w", minGenes, maxGenes, ErrInvalidRange)
	}
	if minGenes > maxGenes {
		return fmt.Errorf("min_genes=%d > max_genes=%d: %w", minGenes, maxGenes, ErrInvalidRange)
	}

	return nil
}

// validateCellArgs checks FilterCells inputs in priority order:
// nil -> bounds -> capacity -> identifier alignment -> bitmap width.
func validateCellArgs(m *matrix.CSR, minGenes, maxGenes int, o Options) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", opFilterCells, err)
	}
	if err := ValidateCellBounds(minGenes, maxGenes); err != nil {
		return fmt.Errorf("%s: %w", opFilterCells, err)
	}
	if o.batchCapacity <= 0 {
		return fmt.Errorf("%s: batch capacity %d: %w", opFilterCells, o.batchCapacity, ErrInvalidCapacity)
	}
	if o.identifiers != nil && o.identifiers.Len() != m.Rows() {
		return fmt.Errorf("%s: %d identifiers for %d rows: %w",
			opFilterCells, o.identifiers.Len(), m.Rows(), ErrShapeMismatch)
	}
	if int64(m.Rows()) > math.MaxUint32 {
		return fmt.Errorf("%s: %d rows: %w", opFilterCells, m.Rows(), ErrTooManyRows)
	}

	return nil
}

// rowsOf returns m.Rows(), or 0 for a nil matrix.
func rowsOf(m *matrix.CSR) int {
	if m == nil {
		return 0
	}

	return m.Rows()
}

// filterCellBatch filters rows [r.Start, r.Stop) of m and records the
// surviving original row indices in kept.
func filterCellBatch(m *matrix.CSR, r batch.Range, minGenes, maxGenes int, o Options, kept *roaring.Bitmap) (cellBatch, error) {
	slice, err := m.RowSlice(r.Start, r.Stop)
	if err != nil {
		return cellBatch{}, err
	}

	// Keep-mask from the batch-local indptr; both bounds inclusive.
	degrees := slice.RowDegrees()
	keep := make([]bool, len(degrees))
	var n int
	for i, d := range degrees {
		if minGenes <= d && d <= maxGenes {
			keep[i] = true
			kept.Add(uint32(r.Start + i))
			n++
		}
	}

	filtered, err := slice.SelectRows(keep)
	if err != nil {
		return cellBatch{}, err
	}
	out := cellBatch{kept: n}

	// Identifiers: slice the same range first, then apply the same mask.
	if o.identifiers != nil {
		ids, err := o.identifiers.Slice(r.Start, r.Stop)
		if err != nil {
			return cellBatch{}, err
		}
		if out.ids, err = ids.Mask(keep); err != nil {
			return cellBatch{}, err
		}
	}

	if out.matrix, err = o.transfer.ToHost(filtered); err != nil {
		return cellBatch{}, err
	}
	// The host copy must keep the surviving rows one-to-one with kept and ids.
	if out.matrix == nil || out.matrix.Rows() != n || out.matrix.Cols() != filtered.Cols() {
		return cellBatch{}, fmt.Errorf("transfer returned %v, want %dx%d: %w",
			out.matrix, n, filtered.Cols(), ErrShapeMismatch)
	}

	return out, nil
}
