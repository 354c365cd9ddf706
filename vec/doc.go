// SPDX-License-Identifier: MIT

// Package vec provides free functions over plain slices: dot product, in-place
// element-wise add/sub/scale/divide, Euclidean norm and vector projection.
//
// The functions are the innermost kernels of package matrix (MatMul is a grid of Dot
// calls) and package linalg (Gram-Schmidt is built from Proj, SubInPlace and DivInPlace).
//
// Contract:
//   - Length mismatches and zero divisors are programmer errors and panic with an error
//     value wrapping ErrLengthMismatch / ErrZeroDivisor.
//   - Nothing allocates except Proj, which returns a fresh slice.
//
// Complexity: every function is O(n) time, O(1) extra space (Proj: O(n) space).
package vec
