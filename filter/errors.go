// SPDX-License-Identifier: MIT
// Package filter: sentinel error set.
// Every message is prefixed with "filter: ...". Sentinels shared with lower
// layers are aliases, so errors.Is matches whichever package raised them.

package filter

import (
	"errors"

	"github.com/katalvlaran/scfilter/batch"
	"github.com/katalvlaran/scfilter/matrix"
)

var (
	// ErrInvalidRange indicates a lower bound above its upper bound
	// (min_genes > max_genes, min_counts > max_counts, min_cells > max_cells),
	// a negative gene or cell bound, or a NaN count bound.
	ErrInvalidRange = errors.New("filter: invalid range")

	// ErrShapeMismatch indicates that rows and identifiers would fall out of
	// step: an identifier series whose length differs from the matrix row
	// count, or a transfer that changed the shape of a batch.
	ErrShapeMismatch = errors.New("filter: shape mismatch")

	// ErrTooManyRows indicates a matrix whose row indices do not fit the
	// 32-bit survivor bitmap.
	ErrTooManyRows = errors.New("filter: too many rows")

	// ErrUnknownScope indicates an unrecognized prevalence scope name.
	ErrUnknownScope = errors.New("filter: unknown prevalence scope")
)

// Aliases of lower-layer sentinels.
var (
	// ErrNilMatrix is matrix.ErrNilMatrix.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrInvalidCapacity is batch.ErrInvalidCapacity.
	ErrInvalidCapacity = batch.ErrInvalidCapacity
)
