// Package filter implements batched quality-control filtering of a
// single-cell count matrix stored as a CSR cells×genes matrix.
//
// Two independent pipelines share one pattern: partition the rows into
// batches of at most a configured capacity, apply a local filter per batch,
// merge the batch results.
//
//   - FilterCells keeps cells whose number of detected genes (row degree)
//     lies in [minGenes, maxGenes]. An optional barcode series is sliced and
//     masked exactly like the rows, so the returned series stays aligned.
//     The result does not depend on the batch capacity.
//
//   - FilterGenes walks the stored values and grows two segments: values in
//     [minCounts, maxCounts] (SegmentByCounts), and distinct values whose
//     occurrence count lies in [minCells, maxCells] (SegmentByCells).
//
// Prevalence scope:
//
// By default SegmentByCells counts occurrences within each batch, so a value
// can qualify in several batches (and appear several times), or be missed
// although its matrix-wide count qualifies. This per-batch behavior is kept
// as the default; WithPrevalenceScope(Global) switches to matrix-wide counts.
//
// Batches run sequentially. Each call owns its state; nothing persists
// across calls. Batch capacity is the only knob bounding peak memory: when a
// device.Transfer reports device.ErrCapacityExceeded, retry with a smaller
// WithBatchCapacity.
package filter
