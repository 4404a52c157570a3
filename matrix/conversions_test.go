// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/scfilter/matrix"
	"github.com/stretchr/testify/require"
)

func TestToDense(t *testing.T) {
	t.Parallel()

	m := fixture4x5(t)
	d, err := m.ToDense()
	require.NoError(t, err)
	require.Equal(t, denseRows(t, m), denseRows(t, d))
}

func TestToDense_ZeroRows(t *testing.T) {
	t.Parallel()

	d, err := matrix.EmptyCSR(3).ToDense()
	require.NoError(t, err)
	r, c := d.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
}

func TestToGonum(t *testing.T) {
	t.Parallel()

	m := fixture4x5(t)
	g, err := m.ToGonum()
	require.NoError(t, err)

	r, c := g.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 5, c)
	require.Equal(t, 7.0, g.At(2, 3))
	require.Equal(t, 0.0, g.At(3, 0))

	_, err = matrix.EmptyCSR(5).ToGonum()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
