// Package series implements the identifier series that travels alongside a
// count matrix: an ordered sequence of cell barcodes, positionally aligned to
// matrix rows.
//
// A Series carries two parallel slices: the values (barcodes) and an integer
// index label per position. Slicing and masking keep the labels of the
// original positions, which makes misalignment visible in tests; ResetIndex
// renumbers them to 0..n-1 once a filtered series is final.
//
// Any row subset applied to a matrix must apply the identical subset and
// order to its series. The filter package does exactly that per batch.
package series
