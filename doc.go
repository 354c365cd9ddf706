// SPDX-License-Identifier: MIT

// Package lvlinalg is a small dense linear-algebra toolkit for Go: a generic
// row-major matrix container and the classic direct methods built on it.
//
// What is inside?
//
//	num/       : numeric constraint interfaces (Scalar, Integer, Floating, Ordered)
//	vec/       : slice helpers: Dot, in-place add/sub/scale/div, Norm, Proj
//	matrix/    : Dense[T]: indexing, transpose, iteration, element-wise ops,
//	             MatMul, Trace, cofactor Determinant, reductions
//	linalg/    : PLU (partial or adjacent pivoting), Gauss-Jordan, Inverse,
//	             PLU Determinant, Gram-Schmidt QR, axis norms
//	textio/    : tab-separated text save/load
//	cmd/lvla/  : command-line front end over text files
//
// Quick example:
//
//	a := matrix.New([]float64{4, 3, 6, 3}, 2, 2)
//	f, err := linalg.Decompose(a)      // P·A = L·U
//	det := linalg.Determinant(a)       // -6
//	inv, err := linalg.Inverse(a)      // A⁻¹
//
// Errors:
//
//	Shape and index violations are programmer errors and panic with an error
//	value wrapping a package sentinel, so errors.Is works after recover.
//	Data-dependent failures (singular, rank deficient, malformed text) are
//	returned as errors.
//
// Scope:
//
//	Dense storage only, no blocking or SIMD, no eigenvalue/SVD solvers. The
//	pivoting is heuristic; ill-conditioned inputs are not specially handled.
package lvlinalg
