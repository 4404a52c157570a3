// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for CSR construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - A count matrix holds finite, non-negative values. Both checks are on by
//     default and can be relaxed for matrices that carry transformed values.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultAllowNegative permits negative stored values when true.
	// Count matrices never carry negatives, so the default is false.
	DefaultAllowNegative = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	allowNegative  bool // DefaultAllowNegative
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables rejection of NaN/±Inf stored values.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables NaN/±Inf rejection on ingestion.
// Use only for matrices that are known to be sanitized upstream.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// WithAllowNegative accepts negative stored values (e.g. log-ratios).
// Complexity: O(1).
func WithAllowNegative() Option {
	return func(o *Options) {
		o.allowNegative = true
	}
}

// NewMatrixOptions resolves the given setters into an Options snapshot.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowNegative:  DefaultAllowNegative,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
