// SPDX-License-Identifier: MIT

// Package matrix: scalar capability constraints.
// The canonical definitions live in package num; the aliases below let callers
// write matrix.Scalar next to matrix.Dense without a second import.
package matrix

import "github.com/katalvlaran/lvlinalg/num"

// Scalar is the arithmetic capability (integers and floats).
type Scalar = num.Scalar

// Ordered is the total-order capability (integers and strings).
type Ordered = num.Ordered

// Floating is the IEEE-754 capability (float32, float64).
type Floating = num.Floating
