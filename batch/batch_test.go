// SPDX-License-Identifier: MIT
package batch_test

import (
	"testing"

	"github.com/katalvlaran/scfilter/batch"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	t.Parallel()

	got, err := batch.Rows(10, 4)
	require.NoError(t, err)
	require.Equal(t, []batch.Range{{0, 4}, {4, 8}, {8, 10}}, got)

	got, err = batch.Rows(4, 10)
	require.NoError(t, err)
	require.Equal(t, []batch.Range{{0, 4}}, got)

	got, err = batch.Rows(0, 3)
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestRows_Coverage checks that ranges tile [0, n) without gap or overlap.
func TestRows_Coverage(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 40; n++ {
		for c := 1; c <= n+2; c++ {
			ranges, err := batch.Rows(n, c)
			require.NoError(t, err)

			want, err := batch.Count(n, c)
			require.NoError(t, err)
			require.Len(t, ranges, want)

			next := 0
			for _, r := range ranges {
				require.Equal(t, next, r.Start, "n=%d c=%d", n, c)
				require.Greater(t, r.Len(), 0)
				require.LessOrEqual(t, r.Len(), c)
				next = r.Stop
			}
			require.Equal(t, n, next, "n=%d c=%d", n, c)
		}
	}
}

func TestRows_Errors(t *testing.T) {
	t.Parallel()

	_, err := batch.Rows(5, 0)
	require.ErrorIs(t, err, batch.ErrInvalidCapacity)
	_, err = batch.Rows(5, -3)
	require.ErrorIs(t, err, batch.ErrInvalidCapacity)
	_, err = batch.Rows(-1, 3)
	require.ErrorIs(t, err, batch.ErrInvalidRows)
}

func TestDataRanges(t *testing.T) {
	t.Parallel()

	// Row degrees [2, 5, 1, 0].
	indptr := []int{0, 2, 7, 8, 8}
	got, err := batch.DataRanges(indptr, 3)
	require.NoError(t, err)
	require.Equal(t, []batch.Range{{0, 8}, {8, 8}}, got)

	got, err = batch.DataRanges(indptr, 1)
	require.NoError(t, err)
	require.Equal(t, []batch.Range{{0, 2}, {2, 7}, {7, 8}, {8, 8}}, got)

	got, err = batch.DataRanges([]int{0}, 5)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = batch.DataRanges(nil, 5)
	require.ErrorIs(t, err, batch.ErrBadIndptr)
	_, err = batch.DataRanges([]int{0, 3, 1}, 1)
	require.ErrorIs(t, err, batch.ErrBadIndptr)
	_, err = batch.DataRanges(indptr, 0)
	require.ErrorIs(t, err, batch.ErrInvalidCapacity)
}

func TestRangeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[3,7)", batch.Range{Start: 3, Stop: 7}.String())
}
