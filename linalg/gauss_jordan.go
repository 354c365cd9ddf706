// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vec"
)

// PivotTolerance is the minimum magnitude a replacement pivot must exceed when
// GaussJordan meets a zero on the diagonal.
const PivotTolerance = 1e-4

const (
	opGaussJordan = "GaussJordan"
	opInverse     = "Inverse"
)

// GaussJordan solves C·X = R for X by full Gauss-Jordan elimination.
// Implementation:
//   - Stage 1: validate C square and rows(R) == rows(C); work on copies.
//   - Stage 2: for each column i, if C[i,i] == 0 swap in the first row k > i with
//     |C[k,i]| > PivotTolerance (in both C and R).
//   - Stage 3: clear column i from every other row j: row_j -= (C[j,i]/C[i,i])·row_i.
//   - Stage 4: divide each row i of R by C[i,i].
//
// Inputs are not modified. Only rows below the pivot are searched, so rows that
// already hold a pivot are never displaced.
//
// Errors:
//   - ErrSingular when a zero pivot has no replacement below it.
//
// Panics:
//   - matrix.ErrNonSquare when C is not square.
//   - matrix.ErrDimensionMismatch when rows(R) != rows(C).
//
// Complexity:
//   - Time O(n²·(n+m)) for C n×n and R n×m, Space O(n·(n+m)).
func GaussJordan(c, r *matrix.Dense[float64], opts ...Option) (*matrix.Dense[float64], error) {
	must(opGaussJordan, matrix.ValidateSquare(c))
	must(opGaussJordan, matrix.ValidateNotNil(r))
	if r.Rows() != c.Rows() {
		panic(linalgErrorf(opGaussJordan,
			fmt.Errorf("C has %d rows, R has %d: %w", c.Rows(), r.Rows(), matrix.ErrDimensionMismatch)))
	}

	o := NewOptions(opts...)
	n := c.Rows()
	cw, rw := c.Clone(), r.Clone()

	var (
		i, j, k      int
		ratio        float64
		pivotC, rowC []float64
		pivotR, rowR []float64
	)
	for i = 0; i < n; i++ {
		if cw.At(i, i) == 0 {
			for k = i + 1; k < n; k++ {
				if math.Abs(cw.At(k, i)) > PivotTolerance {
					break
				}
			}
			if k == n {
				return nil, linalgErrorf(opGaussJordan, fmt.Errorf("column %d: %w", i, ErrSingular))
			}
			cw.SwapRows(i, k)
			rw.SwapRows(i, k)
			o.log.Debug().Str("op", opGaussJordan).Int("col", i).Int("row", k).Msg("pivot swap")
		}

		pivotC, pivotR = cw.Row(i), rw.Row(i)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			ratio = cw.At(j, i) / pivotC[i]
			if ratio == 0 {
				continue
			}
			rowC, rowR = cw.Row(j), rw.Row(j)
			vec.SubInPlace(rowC, scaled(pivotC, ratio))
			vec.SubInPlace(rowR, scaled(pivotR, ratio))
			cw.SetRow(j, rowC)
			rw.SetRow(j, rowR)
		}
	}

	var row []float64
	for i = 0; i < n; i++ {
		row = rw.Row(i)
		vec.DivInPlace(row, cw.At(i, i))
		rw.SetRow(i, row)
	}

	return rw, nil
}

// scaled returns a copy of v multiplied by s.
func scaled(v []float64, s float64) []float64 {
	out := append([]float64(nil), v...)
	vec.ScaleInPlace(out, s)

	return out
}

// Inverse returns A⁻¹ as GaussJordan(A, I).
//
// Errors:
//   - ErrSingular when A has no inverse.
//
// Panics:
//   - matrix.ErrNonSquare for rectangular A.
func Inverse(a *matrix.Dense[float64], opts ...Option) (*matrix.Dense[float64], error) {
	must(opInverse, matrix.ValidateSquare(a))
	inv, err := GaussJordan(a, matrix.IdentityLike(a), opts...)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}

	return inv, nil
}
