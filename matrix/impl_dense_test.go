// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense host expansion.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scfilter/matrix"
	"github.com/stretchr/testify/require"
)

// TestDense_Accessors checks Shape, At and Row on an expanded fixture.
func TestDense_Accessors(t *testing.T) {
	t.Parallel()

	d, err := fixture4x5(t).ToDense()
	require.NoError(t, err)

	r, c := d.Shape()
	require.Equal(t, 4, r)
	require.Equal(t, 5, c)

	v, err := d.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	row, err := d.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 3, 0, 0}, row)

	// Row hands out a copy.
	row[0] = 99
	v, err = d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestDense_OutOfRange ensures At and Row return ErrOutOfRange on invalid access.
func TestDense_OutOfRange(t *testing.T) {
	t.Parallel()

	d, err := fixture4x5(t).ToDense()
	require.NoError(t, err)

	_, err = d.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.Row(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestToDense_SumsDuplicates verifies duplicate column entries add up.
func TestToDense_SumsDuplicates(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR(1, 3, []int{0, 3}, []int{1, 1, 2}, []float64{2, 3, 4})
	require.NoError(t, err)

	d, err := m.ToDense()
	require.NoError(t, err)
	require.Equal(t, "[0, 5, 4]\n", d.String())
}

// TestToDense_NumericPolicy verifies the policy applies to the expansion and
// that the matching option relaxes it.
func TestToDense_NumericPolicy(t *testing.T) {
	t.Parallel()

	nan, err := matrix.NewCSR(1, 2, []int{0, 1}, []int{0}, []float64{math.NaN()},
		matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = nan.ToDense()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = nan.ToDense(matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	// Two finite entries overflowing into +Inf once summed.
	big, err := matrix.NewCSR(1, 1, []int{0, 2}, []int{0, 0}, []float64{math.MaxFloat64, math.MaxFloat64})
	require.NoError(t, err)
	_, err = big.ToDense()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = big.ToGonum()
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	neg, err := matrix.NewCSR(1, 2, []int{0, 1}, []int{1}, []float64{-1}, matrix.WithAllowNegative())
	require.NoError(t, err)
	_, err = neg.ToDense()
	require.ErrorIs(t, err, matrix.ErrNegativeCount)
	d, err := neg.ToDense(matrix.WithAllowNegative())
	require.NoError(t, err)
	require.Equal(t, "[0, -1]\n", d.String())
}
