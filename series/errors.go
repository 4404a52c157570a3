// SPDX-License-Identifier: MIT

package series

import "errors"

var (
	// ErrNilSeries indicates that a nil *Series was passed where one is required.
	ErrNilSeries = errors.New("series: nil series")

	// ErrOutOfRange indicates that a position or a [start, stop) range lies
	// outside the series.
	ErrOutOfRange = errors.New("series: index out of range")

	// ErrLengthMismatch indicates a boolean mask whose length differs from
	// the series length.
	ErrLengthMismatch = errors.New("series: length mismatch")
)
