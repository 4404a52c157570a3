// Package batch partitions a matrix's rows into contiguous half-open ranges
// bounded by a batch capacity.
//
// Rows yields ceil(n/capacity) ranges [k*capacity, min((k+1)*capacity, n))
// in ascending order, covering every row exactly once. DataRanges maps the
// same row batches onto a CSR index pointer, giving the [indptr[start],
// indptr[stop]) slice of stored values each batch owns.
//
// Capacity is the only knob controlling how much of a matrix is
// materialized at once; a larger capacity means fewer, bigger batches.
package batch
