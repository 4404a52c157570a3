// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of rows per batch when none is configured.
const DefaultCapacity = 10000

var (
	// ErrInvalidCapacity indicates a batch capacity <= 0.
	ErrInvalidCapacity = errors.New("batch: capacity must be > 0")

	// ErrInvalidRows indicates a negative row count.
	ErrInvalidRows = errors.New("batch: row count must be >= 0")

	// ErrBadIndptr indicates an index pointer that cannot describe any rows
	// (empty, or decreasing at a batch boundary).
	ErrBadIndptr = errors.New("batch: invalid index pointer")
)

// Range is a half-open interval [Start, Stop).
type Range struct {
	Start int
	Stop  int
}

// Len returns Stop-Start.
func (r Range) Len() int { return r.Stop - r.Start }

// String renders the range as "[start,stop)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.Stop) }

// Count returns ceil(nRows/capacity), the number of batches Rows yields.
func Count(nRows, capacity int) (int, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("Count(%d, %d): %w", nRows, capacity, ErrInvalidCapacity)
	}
	if nRows < 0 {
		return 0, fmt.Errorf("Count(%d, %d): %w", nRows, capacity, ErrInvalidRows)
	}

	return (nRows + capacity - 1) / capacity, nil
}

// Rows partitions [0, nRows) into consecutive batches of at most capacity
// rows. The final batch may be shorter. nRows == 0 yields no batches.
//
// Errors:
//   - ErrInvalidCapacity when capacity <= 0.
//   - ErrInvalidRows when nRows < 0.
//
// Complexity: O(nRows/capacity).
func Rows(nRows, capacity int) ([]Range, error) {
	n, err := Count(nRows, capacity)
	if err != nil {
		return nil, err
	}
	out := make([]Range, n)
	var k int
	for k = 0; k < n; k++ {
		out[k] = Range{Start: k * capacity, Stop: min((k+1)*capacity, nRows)}
	}

	return out, nil
}

// DataRanges returns, for each row batch of a CSR index pointer, the
// data-pointer range [indptr[start], indptr[stop]). The ranges are
// contiguous and together cover [0, indptr[len(indptr)-1]).
//
// Errors:
//   - ErrBadIndptr when indptr is empty or decreases across a batch boundary.
//   - ErrInvalidCapacity when capacity <= 0.
func DataRanges(indptr []int, capacity int) ([]Range, error) {
	if len(indptr) == 0 {
		return nil, fmt.Errorf("DataRanges: %w", ErrBadIndptr)
	}
	rows, err := Rows(len(indptr)-1, capacity)
	if err != nil {
		return nil, err
	}
	out := make([]Range, len(rows))
	for k, r := range rows {
		lo, hi := indptr[r.Start], indptr[r.Stop]
		if hi < lo {
			return nil, fmt.Errorf("DataRanges: batch %s: %w", r, ErrBadIndptr)
		}
		out[k] = Range{Start: lo, Stop: hi}
	}

	return out, nil
}
