// Package matrix holds the sparse count matrix that single-cell filtering
// operates on.
//
// The matrix package provides:
//
//   - CSR, a compressed sparse row cells×genes matrix with row-range slicing,
//     row degrees, boolean row selection and vertical stacking (VStack).
//   - Dense, a row-major host matrix produced by CSR.ToDense, plus a gonum
//     export (CSR.ToGonum) for downstream linear algebra.
//   - Validators and sentinel errors shared by the filter pipeline.
//
// Every operation returns a new value; a CSR is never modified in place.
//
// See the examples in this package and in filter for usage patterns.
package matrix
