// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestReductions_Ordered(t *testing.T) {
	m := FromRows(t, [][]int{{3, -1, 4}, {1, 5, -1}})

	idx, v := matrix.ArgMin(m)
	require.Equal(t, 1, idx, "first occurrence wins on ties")
	require.Equal(t, -1, v)

	idx, v = matrix.ArgMax(m)
	require.Equal(t, 4, idx)
	require.Equal(t, 5, v)

	require.Equal(t, -1, matrix.Min(m))
	require.Equal(t, 5, matrix.Max(m))
}

func TestReductions_Strings(t *testing.T) {
	m := FromRows(t, [][]string{{"pear", "apple"}, {"zucchini", "fig"}})
	require.Equal(t, "apple", matrix.Min(m))
	require.Equal(t, "zucchini", matrix.Max(m))
}

func TestReductions_Float(t *testing.T) {
	m := FromRows(t, [][]float64{{0.5, -2.25}, {8, 8}})

	idx, v := matrix.ArgMinFloat(m)
	require.Equal(t, 1, idx)
	require.Equal(t, -2.25, v)

	idx, v = matrix.ArgMaxFloat(m)
	require.Equal(t, 2, idx)
	require.Equal(t, 8.0, v)

	require.Equal(t, -2.25, matrix.MinFloat(m))
	require.Equal(t, 8.0, matrix.MaxFloat(m))
}

func TestReductions_NaNPanics(t *testing.T) {
	m := FromRows(t, [][]float64{{1, math.NaN()}})
	ExpectPanicIs(t, matrix.ErrNaN, func() { matrix.MinFloat(m) })
	ExpectPanicIs(t, matrix.ErrNaN, func() { matrix.MaxFloat(m) })
	ExpectPanicIs(t, matrix.ErrNaN, func() { matrix.ArgMinFloat(m) })
	ExpectPanicIs(t, matrix.ErrNaN, func() { matrix.ArgMaxFloat(m) })
}
