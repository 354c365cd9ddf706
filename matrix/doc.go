// SPDX-License-Identifier: MIT

// Package matrix implements Dense[T], a generic row-major two-dimensional container,
// together with element-wise arithmetic and the basic numeric kernels built on it.
//
// What & Why:
//
//	Dense stores rows*cols elements in one flat slice (offset = i*cols + j). Every
//	matrix is an independent value: constructors copy or take ownership, and the
//	backing slice is never handed out. Bulk mutation happens only through
//	shape-preserving primitives (SwapRows, SwapCols, SwapRowsOffDiag, SetRow,
//	TransposeInPlace) and the element-wise operators.
//
// Element types:
//
//	The container accepts any T. Arithmetic requires Scalar (integers and floats),
//	total-order reductions require Ordered, NaN-aware reductions require Floating.
//
// Errors:
//
//	Shape, bounds and divisor violations are programmer errors and panic with an
//	error value wrapping a sentinel from errors.go. Use the Validate* helpers to
//	check operands first when inputs come from outside the program.
//
// Complexity:
//
//	At/Set O(1); Row/Col O(c)/O(r); Transpose, element-wise ops, reductions O(r*c);
//	MatMul O(r*n*c); Determinant O(n!) (use linalg.Determinant for O(n³)).
package matrix
