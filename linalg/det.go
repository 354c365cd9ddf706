// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/lvlinalg/matrix"

const opDeterminant = "Determinant"

// Determinant returns det(A) = (−1)^Swaps · Π diag(U) from the PLU factorization.
//
// A singular matrix yields 0. If PivotAdjacent gives up on a column, the
// factorization is retried with PivotPartial, which fails only for singular input.
//
// Panics:
//   - matrix.ErrNonSquare for rectangular A.
func Determinant(a *matrix.Dense[float64], opts ...Option) float64 {
	must(opDeterminant, matrix.ValidateSquare(a))
	o := NewOptions(opts...)

	f, err := Decompose(a, opts...)
	if err != nil && o.pivoting != PivotPartial {
		o.log.Debug().Str("op", opDeterminant).Err(err).Msg("retrying with partial pivoting")
		f, err = Decompose(a, append(opts[:len(opts):len(opts)], WithPivoting(PivotPartial))...)
	}
	if err != nil {
		return 0 // ErrSingular
	}

	det := f.Sign()
	for v := range f.U.DiagSeq() {
		det *= v
	}

	return det
}
