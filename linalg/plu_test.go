// SPDX-License-Identifier: MIT

package linalg_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// requireFactors checks the structural properties of a decomposition and P·A ≈ L·U.
func requireFactors(t *testing.T, a *matrix.Dense[float64], f *linalg.Factors) {
	t.Helper()
	n := a.Rows()

	// P is a permutation matrix
	for i := 0; i < n; i++ {
		var rowSum, colSum float64
		for j := 0; j < n; j++ {
			require.Contains(t, []float64{0, 1}, f.P.At(i, j))
			rowSum += f.P.At(i, j)
			colSum += f.P.At(j, i)
		}
		require.Equal(t, 1.0, rowSum)
		require.Equal(t, 1.0, colSum)
	}

	for i := 0; i < n; i++ {
		require.Equal(t, 1.0, f.L.At(i, i), "unit diagonal of L")
		for j := i + 1; j < n; j++ {
			require.Zero(t, f.L.At(i, j), "L[%d,%d] above diagonal", i, j)
			require.InDelta(t, 0, f.U.At(j, i), 1e-12, "U[%d,%d] below diagonal", j, i)
		}
	}

	requireClose(t, matrix.MatMul(f.P, a), matrix.MatMul(f.L, f.U), tol)
}

func TestDecompose_Reconstructs(t *testing.T) {
	cases := map[string]*matrix.Dense[float64]{
		"2x2":          fromRows(t, [][]float64{{1, 2}, {3, 4}}),
		"3x3":          fromRows(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}}),
		"zero leading": fromRows(t, [][]float64{{0, 2, 1}, {1, 0, 3}, {4, 1, 0}}),
		"identity":     matrix.Identity[float64](4, 4),
		"random 5x5":   randSquare(5, 42),
		"dominant 8x8": diagDominant(8, 7),
	}
	for _, p := range []linalg.Pivoting{linalg.PivotPartial, linalg.PivotAdjacent} {
		for name, a := range cases {
			t.Run(fmt.Sprintf("%s/%s", p, name), func(t *testing.T) {
				f, err := linalg.Decompose(a, linalg.WithPivoting(p))
				require.NoError(t, err)
				requireFactors(t, a, f)
			})
		}
	}
}

func TestDecompose_InputUntouched(t *testing.T) {
	a := fromRows(t, [][]float64{{0, 2, 1}, {1, 0, 3}, {4, 1, 0}})
	before := a.Clone()
	_, err := linalg.Decompose(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(before, a))
}

func TestDecompose_SwapCount(t *testing.T) {
	// adjacent: right-scan swap (0,1), then bubble swaps at column 0 and column 1
	a := fromRows(t, [][]float64{{0, 2, 1}, {1, 0, 3}, {4, 1, 0}})
	f, err := linalg.Decompose(a, linalg.WithPivoting(linalg.PivotAdjacent))
	require.NoError(t, err)
	require.Equal(t, 3, f.Swaps)
	require.Equal(t, -1.0, f.Sign())
	require.InDeltaSlice(t, []float64{1, 2, -12.5}, f.U.Diag(), tol)

	f, err = linalg.Decompose(matrix.Identity[float64](3, 3))
	require.NoError(t, err)
	require.Zero(t, f.Swaps)
	require.Equal(t, 1.0, f.Sign())
}

func TestDecompose_Singular(t *testing.T) {
	a := fromRows(t, [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}})
	for _, p := range []linalg.Pivoting{linalg.PivotPartial, linalg.PivotAdjacent} {
		t.Run(p.String(), func(t *testing.T) {
			_, err := linalg.Decompose(a, linalg.WithPivoting(p))
			require.ErrorIs(t, err, linalg.ErrSingular)

			pm, l, u, err := linalg.PLU(a, linalg.WithPivoting(p))
			require.ErrorIs(t, err, linalg.ErrSingular)
			require.Nil(t, pm)
			require.Nil(t, l)
			require.Nil(t, u)
		})
	}
}

// TestDecompose_AdjacentRejectsInvertible pins the adjacent pass moving a zero onto the
// diagonal of an invertible matrix; partial pivoting and Determinant still succeed.
func TestDecompose_AdjacentRejectsInvertible(t *testing.T) {
	a := fromRows(t, [][]float64{{-1, 1}, {0, 1}})

	_, err := linalg.Decompose(a, linalg.WithPivoting(linalg.PivotAdjacent))
	require.ErrorIs(t, err, linalg.ErrSingular)

	f, err := linalg.Decompose(a, linalg.WithPivoting(linalg.PivotPartial))
	require.NoError(t, err)
	requireFactors(t, a, f)

	require.InDelta(t, -1, linalg.Determinant(a, linalg.WithPivoting(linalg.PivotAdjacent)), tol)
}

func TestDecompose_NonSquarePanics(t *testing.T) {
	expectPanicIs(t, matrix.ErrNonSquare, func() { _, _ = linalg.Decompose(matrix.Zeros[float64](2, 3)) })
}

func TestPLU_Factors(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	p, l, u, err := linalg.PLU(a)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1, 0}, p.Values())
	requireClose(t, fromRows(t, [][]float64{{1, 0}, {1.0 / 3, 1}}), l, tol)
	requireClose(t, fromRows(t, [][]float64{{3, 4}, {0, 2.0 / 3}}), u, tol)
}

func TestDecompose_LogsPivotSwaps(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := linalg.Decompose(fromRows(t, [][]float64{{1, 2}, {3, 4}}), linalg.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"pivot swap"`)
	require.Contains(t, buf.String(), `"op":"PLU"`)
}
