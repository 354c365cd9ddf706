// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"zero leading", [][]float64{{0, 2, 1}, {1, 0, 3}, {4, 1, 0}}, 25},
		{"singular rows", [][]float64{{1, 2}, {2, 4}}, 0},
		{"zero column", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
	}
	for _, p := range []linalg.Pivoting{linalg.PivotPartial, linalg.PivotAdjacent} {
		for _, tc := range tests {
			t.Run(p.String()+"/"+tc.name, func(t *testing.T) {
				got := linalg.Determinant(fromRows(t, tc.a), linalg.WithPivoting(p))
				require.InDelta(t, tc.want, got, tol)
			})
		}
	}
}

// TestDeterminant_MatchesCofactor compares the PLU determinant with the Laplace expansion.
func TestDeterminant_MatchesCofactor(t *testing.T) {
	for n := 2; n <= 6; n++ {
		a := randSquare(n, int64(100+n))
		want := matrix.Determinant(a)
		require.InDelta(t, want, linalg.Determinant(a), tol, "n=%d partial", n)
		require.InDelta(t, want, linalg.Determinant(a, linalg.WithPivoting(linalg.PivotAdjacent)), tol, "n=%d adjacent", n)
	}
}

func TestDeterminant_NonSquarePanics(t *testing.T) {
	expectPanicIs(t, matrix.ErrNonSquare, func() { linalg.Determinant(matrix.Zeros[float64](3, 2)) })
}
