// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/vec"
)

// Axis values accepted by Norm.
const (
	AxisAll  = -1 // Frobenius norm of every element
	AxisRows = 0  // one norm per row
	AxisCols = 1  // one norm per column
)

const opNorm = "Norm"

// Norm returns Euclidean norms of A along axis:
//   - AxisAll: a 1×1 matrix holding the Frobenius norm.
//   - AxisRows: rows×1, one norm per row.
//   - AxisCols: cols×1, one norm per column (computed as AxisRows of Aᵗ).
//
// Panics with ErrUnsupportedAxis for any other axis.
func Norm[T matrix.Scalar](a *matrix.Dense[T], axis int) *matrix.Dense[float64] {
	must(opNorm, matrix.ValidateNotNil(a))

	switch axis {
	case AxisAll:
		return matrix.NewFilled(vec.Norm(a.Values()), 1, 1)
	case AxisRows:
		out := make([]float64, 0, a.Rows())
		for _, row := range a.RowsSeq() {
			out = append(out, vec.Norm(row))
		}
		return matrix.New(out, a.Rows(), 1)
	case AxisCols:
		return Norm(a.Transpose(), AxisRows)
	default:
		panic(linalgErrorf(opNorm, fmt.Errorf("axis %d: %w", axis, ErrUnsupportedAxis)))
	}
}
