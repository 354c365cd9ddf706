// SPDX-License-Identifier: MIT

// Package linalg implements the float64 factorizations and solvers layered on
// matrix.Dense: PLU decomposition, Gauss-Jordan elimination, inversion, the
// PLU determinant, Gram-Schmidt QR and vector norms along an axis.
//
// What & Why:
//
//	PLU runs column by column. Each step selects a pivot (see Pivoting), builds the
//	elementary matrix Ln, inverts it with GaussJordan and left-multiplies U by the
//	inverse. The accumulated off-diagonal parts of every Ln form L, and every row
//	swap is mirrored into P so that P·A = L·U holds on success.
//
// Errors:
//
//	Shape violations (non-square input, mismatched right-hand side, unsupported axis)
//	panic with a wrapped sentinel, as in package matrix. Numerical failures are data
//	dependent and are returned: ErrSingular and ErrRankDeficient.
//
// Logging:
//
//	Functions are silent unless WithLogger supplies a zerolog.Logger; pivot swaps and
//	eliminations are then reported at Debug level.
//
// Complexity:
//
//	GaussJordan O(n²·(n+m)); PLU O(n⁴) because each of the n−1 steps performs an
//	n×n inversion and product; GramSchmidt O(m·n²); Norm O(r·c).
package linalg
