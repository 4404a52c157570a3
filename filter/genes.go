// SPDX-License-Identifier: MIT

// Package filter - gene/value filtering by expression count and prevalence.
//
// Purpose:
//   - Walk the stored values of a CSR matrix batch by batch, where a batch's
//     values are data[indptr[start]:indptr[stop]] for a row batch [start, stop).
//   - Grow two segments: raw values inside [minCounts, maxCounts], and
//     distinct values whose occurrence count is inside [minCells, maxCells].
//
// Determinism:
//   - Segments are concatenated in batch order, then in-batch order; distinct
//     values are emitted in first-occurrence order. No dedup, no sort.

package filter

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/scfilter/batch"
	"github.com/katalvlaran/scfilter/matrix"
)

const (
	opFilterGenes    = "FilterGenes"
	opNewAccumulator = "NewAccumulator"
)

// GeneSegments is the result record of FilterGenes.
type GeneSegments struct {
	// SegmentByCounts holds every stored value v with
	// minCounts <= v <= maxCounts, duplicates kept.
	SegmentByCounts []float64

	// SegmentByCells holds the distinct values whose occurrence count lies
	// in [minCells, maxCells], counted per the prevalence scope.
	SegmentByCells []float64
}

// GeneBounds are the inclusive thresholds of the gene/value filter.
type GeneBounds struct {
	MinCounts float64
	MaxCounts float64
	MinCells  int
	MaxCells  int
}

// Validate reports ErrInvalidRange for a NaN count bound, a negative cell
// bound, or a lower bound above its upper bound.
func (b GeneBounds) Validate() error {
	if math.IsNaN(b.MinCounts) || math.IsNaN(b.MaxCounts) {
		return fmt.Errorf("NaN count bound: %w", ErrInvalidRange)
	}
	if b.MinCounts > b.MaxCounts {
		return fmt.Errorf("min_counts=%g > max_counts=%g: %w", b.MinCounts, b.MaxCounts, ErrInvalidRange)
	}
	if b.MinCells < 0 || b.MaxCells < 0 {
		return fmt.Errorf("min_cells=%d max_cells=%d: negative bound: %w", b.MinCells, b.MaxCells, ErrInvalidRange)
	}
	if b.MinCells > b.MaxCells {
		return fmt.Errorf("min_cells=%d > max_cells=%d: %w", b.MinCells, b.MaxCells, ErrInvalidRange)
	}

	return nil
}

// Accumulator carries the gene-filter state through the batch loop. It is
// owned by a single call and must not be used from two goroutines.
type Accumulator struct {
	bounds   GeneBounds
	scope    PrevalenceScope
	segments GeneSegments
	batches  int

	// Global scope only: running counts and first-occurrence order.
	counts map[float64]int
	order  []float64
}

// NewAccumulator returns an empty accumulator for the given thresholds.
//
// Errors:
//   - ErrInvalidRange from bounds validation; ErrUnknownScope.
func NewAccumulator(bounds GeneBounds, scope PrevalenceScope) (*Accumulator, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewAccumulator, err)
	}
	if scope != PerBatch && scope != Global {
		return nil, fmt.Errorf("%s: %v: %w", opNewAccumulator, scope, ErrUnknownScope)
	}
	a := &Accumulator{
		bounds: bounds,
		scope:  scope,
		segments: GeneSegments{
			SegmentByCounts: []float64{},
			SegmentByCells:  []float64{},
		},
	}
	if scope == Global {
		a.counts = make(map[float64]int)
	}

	return a, nil
}

// Accumulate folds one batch of raw values into the accumulator and returns
// it. values is only read; the accumulator keeps no reference to it.
// Implementation:
//   - Stage 1: append values inside [MinCounts, MaxCounts] in order.
//   - Stage 2 (PerBatch): count distinct values of this batch and append the
//     ones whose count is inside [MinCells, MaxCells].
//   - Stage 2 (Global): add this batch's counts to the running totals.
//
// Complexity:
//   - Time O(len(values)) expected, Space O(distinct values).
func (a *Accumulator) Accumulate(values []float64) *Accumulator {
	// Stage 1: value range.
	for _, v := range values {
		if a.bounds.MinCounts <= v && v <= a.bounds.MaxCounts {
			a.segments.SegmentByCounts = append(a.segments.SegmentByCounts, v)
		}
	}

	// Stage 2: prevalence.
	order, counts := countDistinct(values)
	switch a.scope {
	case Global:
		for _, v := range order {
			if _, seen := a.counts[v]; !seen {
				a.order = append(a.order, v)
			}
			a.counts[v] += counts[v]
		}
	default:
		a.segments.SegmentByCells = appendInRange(a.segments.SegmentByCells, order, counts, a.bounds)
	}
	a.batches++

	return a
}

// Batches returns how many batches were accumulated.
func (a *Accumulator) Batches() int { return a.batches }

// Segments returns a copy of the accumulated segments. Under Global scope
// SegmentByCells is computed from the totals seen so far.
func (a *Accumulator) Segments() GeneSegments {
	out := GeneSegments{
		SegmentByCounts: slices.Clone(a.segments.SegmentByCounts),
		SegmentByCells:  slices.Clone(a.segments.SegmentByCells),
	}
	if a.scope == Global {
		out.SegmentByCells = appendInRange([]float64{}, a.order, a.counts, a.bounds)
	}

	return out
}

// countDistinct counts occurrences of each value, returning the distinct
// values in first-occurrence order. NaN never equals itself and is skipped.
func countDistinct(values []float64) ([]float64, map[float64]int) {
	counts := make(map[float64]int)
	order := make([]float64, 0)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	return order, counts
}

// appendInRange appends, in order, every value whose count is inside
// [MinCells, MaxCells].
func appendInRange(dst, order []float64, counts map[float64]int, b GeneBounds) []float64 {
	for _, v := range order {
		if c := counts[v]; b.MinCells <= c && c <= b.MaxCells {
			dst = append(dst, v)
		}
	}

	return dst
}

// FilterGenes accumulates the value-range and prevalence segments of m's
// stored values, one row batch at a time.
// Implementation:
//   - Stage 1: validate matrix, bounds, capacity and scope.
//   - Stage 2: derive data-pointer ranges from indptr at row-batch boundaries.
//   - Stage 3: fold each batch's raw values into an Accumulator.
//
// Behavior highlights:
//   - SegmentByCounts does not depend on the batch capacity.
//   - Under the default PerBatch scope SegmentByCells does: a value's count
//     is its count inside one batch. Use WithPrevalenceScope(Global) for
//     matrix-wide counting.
//   - A zero-row matrix yields empty, non-nil segments.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidRange, ErrInvalidCapacity, ErrUnknownScope.
//   - Every failure is logged through FilterDone before it is returned.
//
// Complexity:
//   - Time O(nnz) expected, Space O(nnz) for the segments.
func FilterGenes(m *matrix.CSR, minCounts float64, minCells int, maxCounts float64, maxCells int, opts ...Option) (*GeneSegments, error) {
	o := gatherOptions(opts...)
	log := o.logger.WithOp(opFilterGenes)

	// Stage 1: validate.
	if err := matrix.ValidateNotNil(m); err != nil {
		err = fmt.Errorf("%s: %w", opFilterGenes, err)
		log.FilterDone(0, 0, 0, err)
		return nil, err
	}
	acc, err := NewAccumulator(GeneBounds{
		MinCounts: minCounts,
		MaxCounts: maxCounts,
		MinCells:  minCells,
		MaxCells:  maxCells,
	}, o.scope)
	if err != nil {
		err = fmt.Errorf("%s: %w", opFilterGenes, err)
		log.FilterDone(m.Rows(), 0, 0, err)
		return nil, err
	}
	if o.batchCapacity <= 0 {
		err = fmt.Errorf("%s: batch capacity %d: %w", opFilterGenes, o.batchCapacity, ErrInvalidCapacity)
		log.FilterDone(m.Rows(), 0, 0, err)
		return nil, err
	}

	// Stage 2: batch boundaries in data-pointer space.
	ranges, err := batch.DataRanges(m.Indptr(), o.batchCapacity)
	if err != nil {
		err = fmt.Errorf("%s: %w", opFilterGenes, err)
		log.FilterDone(m.Rows(), 0, 0, err)
		return nil, err
	}

	// Stage 3: accumulate.
	data := m.Data()
	for k, d := range ranges {
		acc = acc.Accumulate(data[d.Start:d.Stop])
		log.BatchDone(k, d.Start, d.Stop, d.Len())
	}

	seg := acc.Segments()
	log.FilterDone(m.Rows(), acc.Batches(), len(seg.SegmentByCounts), nil)

	return &seg, nil
}
