// SPDX-License-Identifier: MIT

// Package filter: functional configuration shared by FilterCells and
// FilterGenes.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Option constructors only record values; FilterCells/FilterGenes
//     validate them and return sentinel errors (ErrInvalidCapacity), because
//     a batch capacity usually comes from user configuration.
package filter

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/scfilter/batch"
	"github.com/katalvlaran/scfilter/device"
	"github.com/katalvlaran/scfilter/internal/logging"
	"github.com/katalvlaran/scfilter/series"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBatchCapacity is the number of rows processed per batch.
	DefaultBatchCapacity = batch.DefaultCapacity

	// DefaultPrevalenceScope keeps the per-batch prevalence counting.
	DefaultPrevalenceScope = PerBatch
)

// PrevalenceScope selects how FilterGenes counts value occurrences for the
// segment_by_cells test.
type PrevalenceScope int

const (
	// PerBatch counts occurrences within each batch independently. A value
	// qualifying in several batches is appended once per qualifying batch,
	// and a value whose matrix-wide count is in range but whose per-batch
	// counts never are is missed. Results depend on the batch capacity.
	PerBatch PrevalenceScope = iota

	// Global counts occurrences across all batches and emits each
	// qualifying distinct value once, after the last batch. Results do not
	// depend on the batch capacity.
	Global
)

// String returns "per-batch" or "global".
func (s PrevalenceScope) String() string {
	switch s {
	case PerBatch:
		return "per-batch"
	case Global:
		return "global"
	default:
		return fmt.Sprintf("PrevalenceScope(%d)", int(s))
	}
}

// ParsePrevalenceScope maps "per-batch" (or "") and "global" to a scope.
func ParsePrevalenceScope(s string) (PrevalenceScope, error) {
	switch s {
	case "", "per-batch":
		return PerBatch, nil
	case "global":
		return Global, nil
	default:
		return PerBatch, fmt.Errorf("ParsePrevalenceScope(%q): %w", s, ErrUnknownScope)
	}
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	batchCapacity int             // DefaultBatchCapacity
	identifiers   *series.Series  // nil: no identifiers
	transfer      device.Transfer // device.Host{}
	logger        *logging.Logger // logging.Noop()
	scope         PrevalenceScope // DefaultPrevalenceScope
}

// WithBatchCapacity sets the number of rows per batch. Values <= 0 are
// reported as ErrInvalidCapacity by the filter call.
func WithBatchCapacity(n int) Option {
	return func(o *Options) {
		o.batchCapacity = n
	}
}

// WithIdentifiers attaches a barcode series aligned to the matrix rows.
// FilterCells then returns the filtered series alongside the matrix.
func WithIdentifiers(ids *series.Series) Option {
	return func(o *Options) {
		o.identifiers = ids
	}
}

// WithTransfer sets the device→host transfer applied to every filtered
// batch before merging. A nil transfer restores device.Host{}.
func WithTransfer(t device.Transfer) Option {
	return func(o *Options) {
		if t == nil {
			t = device.Host{}
		}
		o.transfer = t
	}
}

// WithLogger routes batch and summary records to l. A nil logger disables
// logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = logging.From(l)
	}
}

// WithPrevalenceScope selects per-batch (default) or global prevalence
// counting in FilterGenes. FilterCells ignores it.
func WithPrevalenceScope(s PrevalenceScope) Option {
	return func(o *Options) {
		o.scope = s
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		batchCapacity: DefaultBatchCapacity,
		transfer:      device.Host{},
		logger:        logging.Noop(),
		scope:         DefaultPrevalenceScope,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
