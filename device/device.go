// SPDX-License-Identifier: MIT

// Package device isolates the compute-device/host boundary of batch
// filtering behind a single capability: materialize a batch result on the
// host before it is merged.
//
// Host is the pure-Go implementation where the matrix already lives in host
// memory, so transfer is a no-op. Budget models a device with bounded
// capacity: a batch that would not fit fails with ErrCapacityExceeded, and
// the caller's remedy is a smaller batch capacity, never an automatic retry.
package device

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scfilter/matrix"
)

var (
	// ErrCapacityExceeded signals that a batch does not fit the device budget.
	ErrCapacityExceeded = errors.New("device: capacity exceeded")

	// ErrNilMatrix signals a nil batch handed to a transfer.
	ErrNilMatrix = errors.New("device: nil matrix")
)

// Transfer materializes a batch result in the representation the merge step
// consumes. Implementations must not retain or mutate m, and must return a
// matrix with the same shape as m; filter rejects any other result.
type Transfer interface {
	ToHost(m *matrix.CSR) (*matrix.CSR, error)
}

// TransferFunc adapts an ordinary function to the Transfer interface.
type TransferFunc func(m *matrix.CSR) (*matrix.CSR, error)

// ToHost calls f(m).
func (f TransferFunc) ToHost(m *matrix.CSR) (*matrix.CSR, error) { return f(m) }

// Host is the no-op transfer: the matrix already lives in host memory.
type Host struct{}

// ToHost returns m unchanged.
func (Host) ToHost(m *matrix.CSR) (*matrix.CSR, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return m, nil
}

// Budget is a transfer that rejects batches carrying more than MaxNNZ
// stored entries. MaxNNZ <= 0 means unbounded.
type Budget struct {
	MaxNNZ int
}

// ToHost returns m when it fits the budget, ErrCapacityExceeded otherwise.
func (b Budget) ToHost(m *matrix.CSR) (*matrix.CSR, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if b.MaxNNZ > 0 && m.NNZ() > b.MaxNNZ {
		return nil, fmt.Errorf("Budget.ToHost: nnz=%d max=%d: %w", m.NNZ(), b.MaxNNZ, ErrCapacityExceeded)
	}

	return m, nil
}

var (
	_ Transfer = Host{}
	_ Transfer = Budget{}
	_ Transfer = TransferFunc(nil)
)
