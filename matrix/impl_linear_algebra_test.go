// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestMatMul(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]float64
		want [][]float64
	}{
		{
			name: "2x3 by 3x2",
			a:    [][]float64{{1, 2, 3}, {4, 5, 6}},
			b:    [][]float64{{7, 8}, {9, 10}, {11, 12}},
			want: [][]float64{{58, 64}, {139, 154}},
		},
		{
			name: "row by column",
			a:    [][]float64{{1, 2, 3}},
			b:    [][]float64{{4}, {5}, {6}},
			want: [][]float64{{32}},
		},
		{
			name: "column by row",
			a:    [][]float64{{1}, {2}},
			b:    [][]float64{{3, 4}},
			want: [][]float64{{3, 4}, {6, 8}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := matrix.MatMul(FromRows(t, tc.a), FromRows(t, tc.b))
			CompareExact(t, tc.want, got)
		})
	}
}

func TestMatMul_Identity(t *testing.T) {
	a := RandFilled(4, 3, 7)
	CompareClose(t, a, matrix.MatMul(matrix.Identity[float64](4, 4), a), 0)
	CompareClose(t, a, matrix.MatMul(a, matrix.Identity[float64](3, 3)), 0)
}

func TestMatMul_Integers(t *testing.T) {
	a := FromRows(t, [][]int{{1, 2}, {3, 4}})
	CompareExact(t, [][]int{{7, 10}, {15, 22}}, matrix.MatMul(a, a))
}

func TestMatMul_Mismatch(t *testing.T) {
	a := matrix.Zeros[float64](2, 3)
	ExpectPanicIs(t, matrix.ErrDimensionMismatch, func() { matrix.MatMul(a, a) })
}

func TestTrace(t *testing.T) {
	require.Equal(t, 15, matrix.Trace(FromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})))
	require.Equal(t, 6.0, matrix.Trace(FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})))
	require.Equal(t, 3, matrix.Trace(matrix.Identity[int](3, 3)))
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    [][]int
		want int
	}{
		{"1x1", [][]int{{-7}}, -7},
		{"2x2", [][]int{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]int{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"3x3 zero leading", [][]int{{0, 2, 1}, {1, 0, 3}, {4, 1, 0}}, 25},
		{"4x4 identity", [][]int{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 1},
		{"singular", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.Determinant(FromRows(t, tc.m)))
		})
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	ExpectPanicIs(t, matrix.ErrNonSquare, func() { matrix.Determinant(matrix.Zeros[int](2, 3)) })
}

func TestAddNonDiagonalInPlace(t *testing.T) {
	lhs := FromRows(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	rhs := FromRows(t, [][]int{{9, 2, 3}, {4, 9, 6}, {7, 8, 9}})

	matrix.AddNonDiagonalInPlace(lhs, rhs)
	CompareExact(t, [][]int{{1, 2, 3}, {4, 1, 6}, {7, 8, 1}}, lhs)

	ExpectPanicIs(t, matrix.ErrDimensionMismatch, func() {
		matrix.AddNonDiagonalInPlace(lhs, matrix.Zeros[int](2, 2))
	})
}
