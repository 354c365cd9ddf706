// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/stretchr/testify/require"
)

func TestNewOptions_Defaults(t *testing.T) {
	o := linalg.NewOptions()
	require.Equal(t, linalg.PivotPartial, o.Pivoting())
	require.Equal(t, linalg.DefaultRankTolerance, o.RankTolerance())

	o = linalg.NewOptions(nil, linalg.WithPivoting(linalg.PivotAdjacent), linalg.WithRankTolerance(0.5))
	require.Equal(t, linalg.PivotAdjacent, o.Pivoting())
	require.Equal(t, 0.5, o.RankTolerance())
}

func TestWithRankTolerance_Invalid(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { linalg.WithRankTolerance(v) })
	}
}

func TestParsePivoting(t *testing.T) {
	tests := []struct {
		in      string
		want    linalg.Pivoting
		wantErr bool
	}{
		{"partial", linalg.PivotPartial, false},
		{"Adjacent", linalg.PivotAdjacent, false},
		{" PARTIAL ", linalg.PivotPartial, false},
		{"full", linalg.PivotPartial, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := linalg.ParsePivoting(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, linalg.ErrUnknownPivoting)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, got, must(linalg.ParsePivoting(got.String())))
		})
	}
	require.Equal(t, "Pivoting(9)", linalg.Pivoting(9).String())
}

func must(p linalg.Pivoting, err error) linalg.Pivoting {
	if err != nil {
		panic(err)
	}

	return p
}
