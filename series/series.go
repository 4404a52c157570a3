// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"slices"
)

// Series is an ordered sequence of identifiers with one integer index label
// per position. The zero value is an empty series.
type Series struct {
	index  []int    // label per position
	values []string // identifier per position
}

// New builds a series over values with labels 0..n-1. The values are copied.
func New(values []string) *Series {
	index := make([]int, len(values))
	for i := range index {
		index[i] = i
	}

	return &Series{index: index, values: slices.Clone(values)}
}

// Len returns the number of positions.
func (s *Series) Len() int { return len(s.values) }

// Values returns a copy of the identifiers in positional order.
func (s *Series) Values() []string { return slices.Clone(s.values) }

// Index returns a copy of the index labels in positional order.
func (s *Series) Index() []int { return slices.Clone(s.index) }

// At returns the identifier and label at position i.
func (s *Series) At(i int) (string, int, error) {
	if i < 0 || i >= len(s.values) {
		return "", 0, fmt.Errorf("Series.At(%d): %w", i, ErrOutOfRange)
	}

	return s.values[i], s.index[i], nil
}

// Slice returns positions [start, stop) as a new series, keeping labels.
// Complexity: O(stop-start).
func (s *Series) Slice(start, stop int) (*Series, error) {
	if start < 0 || stop > len(s.values) || start > stop {
		return nil, fmt.Errorf("Series.Slice[%d:%d] of %d: %w", start, stop, len(s.values), ErrOutOfRange)
	}

	return &Series{
		index:  slices.Clone(s.index[start:stop]),
		values: slices.Clone(s.values[start:stop]),
	}, nil
}

// Mask keeps the positions whose mask entry is true, in order, keeping labels.
// Complexity: O(n).
func (s *Series) Mask(keep []bool) (*Series, error) {
	if len(keep) != len(s.values) {
		return nil, fmt.Errorf("Series.Mask: len(keep)=%d len=%d: %w", len(keep), len(s.values), ErrLengthMismatch)
	}
	out := &Series{index: make([]int, 0, len(keep)), values: make([]string, 0, len(keep))}
	for i, k := range keep {
		if k {
			out.index = append(out.index, s.index[i])
			out.values = append(out.values, s.values[i])
		}
	}

	return out, nil
}

// ResetIndex returns a copy whose labels are renumbered 0..n-1.
func (s *Series) ResetIndex() *Series {
	return New(s.values)
}

// Concat joins the parts in argument order, keeping each part's labels.
// A call with no parts yields an empty series.
//
// Errors:
//   - ErrNilSeries when any part is nil.
func Concat(parts ...*Series) (*Series, error) {
	var n int
	for k, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("Concat: part %d: %w", k, ErrNilSeries)
		}
		n += len(p.values)
	}
	out := &Series{index: make([]int, 0, n), values: make([]string, 0, n)}
	for _, p := range parts {
		out.index = append(out.index, p.index...)
		out.values = append(out.values, p.values...)
	}

	return out, nil
}
