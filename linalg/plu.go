// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

const opPLU = "PLU"

// Factors is the result of a PLU decomposition: P·A = L·U.
//
// P is a permutation matrix, L is unit lower-triangular and U is upper-triangular.
// Swaps counts the row exchanges applied to P, so det(P) = (−1)^Swaps.
type Factors struct {
	P, L, U *matrix.Dense[float64]
	Swaps   int
}

// Sign returns det(P): +1 for an even number of swaps, −1 for an odd one.
func (f *Factors) Sign() float64 {
	if f.Swaps%2 == 0 {
		return 1
	}

	return -1
}

// decomposer carries the working state of one decomposition.
type decomposer struct {
	p, l, u *matrix.Dense[float64]
	swaps   int
	opts    Options
}

// swap exchanges rows i and j in U and P, the off-diagonal part of L, and counts it.
func (d *decomposer) swap(i, j int) {
	d.u.SwapRows(i, j)
	d.p.SwapRows(i, j)
	d.l.SwapRowsOffDiag(i, j)
	d.swaps++
	d.opts.log.Debug().Str("op", opPLU).Int("row_a", i).Int("row_b", j).Int("swaps", d.swaps).Msg("pivot swap")
}

// pivotPartial moves the largest |U[p,i]|, p >= i, onto the diagonal.
func (d *decomposer) pivotPartial(i int) error {
	n := d.u.Rows()
	best, bestAbs := i, math.Abs(d.u.At(i, i))
	for k := i + 1; k < n; k++ {
		if v := math.Abs(d.u.At(k, i)); v > bestAbs {
			best, bestAbs = k, v
		}
	}
	if bestAbs == 0 {
		return fmt.Errorf("column %d: %w", i, ErrSingular)
	}
	if best != i {
		d.swap(i, best)
	}

	return nil
}

// pivotAdjacent applies the right-scan and the single adjacent bubble pass.
func (d *decomposer) pivotAdjacent(i int) error {
	n := d.u.Rows()
	if d.u.At(i, i) == 0 {
		off := 1
		for d.u.At(i, i+off) == 0 {
			off++
			if i+off >= n {
				return fmt.Errorf("column %d: no nonzero to the right: %w", i, ErrSingular)
			}
		}
		d.swap(i, i+off)
	}
	for j := i + 1; j < n; j++ {
		if d.u.At(j, i) > d.u.At(j-1, i) {
			d.swap(j, j-1)
		}
	}
	if d.u.At(i, i) == 0 {
		return fmt.Errorf("column %d: zero pivot after reordering: %w", i, ErrSingular)
	}

	return nil
}

// eliminate clears U below the pivot (i,i) and folds the multipliers into L.
func (d *decomposer) eliminate(i int) error {
	n := d.u.Rows()
	ln := matrix.Identity[float64](n, n)
	pivot := d.u.At(i, i)
	for j := i + 1; j < n; j++ {
		ln.Set(j, i, d.u.At(j, i)/pivot)
	}

	lnInv, err := GaussJordan(ln, matrix.IdentityLike(ln))
	if err != nil {
		return err
	}
	d.u = matrix.MatMul(lnInv, d.u)
	matrix.AddNonDiagonalInPlace(d.l, ln)
	d.opts.log.Debug().Str("op", opPLU).Int("col", i).Float64("pivot", pivot).Msg("column eliminated")

	return nil
}

// Decompose factors a square matrix A into P·A = L·U.
// Implementation:
//   - Stage 1: P = L = I, U = copy of A.
//   - Stage 2: for each column i < n−1, select a pivot (WithPivoting), then build
//     Ln = I with Ln[j,i] = U[j,i]/U[i,i] (j > i), set U = Ln⁻¹·U and L += offdiag(Ln).
//
// Errors:
//   - ErrSingular when the strategy finds no nonzero pivot. Under PivotPartial this
//     means A is singular; under PivotAdjacent it may also reject invertible input.
//
// Panics:
//   - matrix.ErrNonSquare for rectangular A.
//
// Complexity:
//   - Time O(n⁴), Space O(n²).
func Decompose(a *matrix.Dense[float64], opts ...Option) (*Factors, error) {
	must(opPLU, matrix.ValidateSquare(a))
	n := a.Rows()
	d := &decomposer{
		p:    matrix.Identity[float64](n, n),
		l:    matrix.Identity[float64](n, n),
		u:    a.Clone(),
		opts: NewOptions(opts...),
	}

	var err error
	for i := 0; i < n-1; i++ {
		switch d.opts.pivoting {
		case PivotAdjacent:
			err = d.pivotAdjacent(i)
		default:
			err = d.pivotPartial(i)
		}
		if err == nil {
			err = d.eliminate(i)
		}
		if err != nil {
			return nil, linalgErrorf(opPLU, err)
		}
	}

	return &Factors{P: d.p, L: d.l, U: d.u, Swaps: d.swaps}, nil
}

// PLU is Decompose returning the three factors separately.
func PLU(a *matrix.Dense[float64], opts ...Option) (p, l, u *matrix.Dense[float64], err error) {
	f, err := Decompose(a, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return f.P, f.L, f.U, nil
}
