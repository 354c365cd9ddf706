// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vec"
)

const opGramSchmidt = "GramSchmidt"

// GramSchmidt computes A = Q·R by classical Gram-Schmidt on the columns of A (m×n).
// Implementation:
//   - Stage 1: transpose A so that column i becomes the row a_i.
//   - Stage 2: u_i = a_i − Σ_{j<i} proj(u_j, a_i); q_i = u_i / ‖u_i‖.
//   - Stage 3: R = [q_0; …; q_{n−1}]·A (n×n), Q = the q_i as columns (m×n).
//
// Errors:
//   - ErrRankDeficient when ‖u_i‖ <= tol·max(1, ‖a_i‖) (tol from WithRankTolerance),
//     i.e. column i is numerically dependent on the previous ones.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n).
func GramSchmidt(a *matrix.Dense[float64], opts ...Option) (q, r *matrix.Dense[float64], err error) {
	must(opGramSchmidt, matrix.ValidateNotNil(a))
	o := NewOptions(opts...)

	at := a.Transpose()
	n, m := at.Shape()
	qt := matrix.Zeros[float64](n, m)
	us := make([][]float64, 0, n)

	var ai, ui []float64
	var norm float64
	for i := 0; i < n; i++ {
		ai = at.Row(i)
		ui = at.Row(i)
		for _, uj := range us {
			vec.SubInPlace(ui, vec.Proj(uj, ai))
		}
		norm = vec.Norm(ui)
		if norm <= o.rankTol*max(1, vec.Norm(ai)) {
			return nil, nil, linalgErrorf(opGramSchmidt, fmt.Errorf("column %d: %w", i, ErrRankDeficient))
		}
		us = append(us, append([]float64(nil), ui...))

		vec.DivInPlace(ui, norm)
		qt.SetRow(i, ui)
		o.log.Debug().Str("op", opGramSchmidt).Int("col", i).Float64("norm", norm).Msg("column orthogonalized")
	}

	r = matrix.MatMul(qt, a)
	qt.TransposeInPlace()

	return qt, r, nil
}
