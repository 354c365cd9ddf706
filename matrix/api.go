// SPDX-License-Identifier: MIT

// Package matrix: public constructors and comparison facades.
//
// Purpose:
//   - Provide intention-revealing constructors (Zeros, Identity and the *Like variants).
//   - Provide structural equality (exact) and a tolerance-based variant for floats.

package matrix

import "math"

// ---------- Constructors ----------

// Zeros returns a rows×cols matrix of zeros.
// Complexity: O(r*c) zeroing by the runtime.
func Zeros[T Scalar](rows, cols int) *Dense[T] {
	mustDims("Zeros", rows, cols)

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Identity returns a rows×cols matrix with ones on the diagonal and zeros elsewhere.
// For rectangular shapes the diagonal holds min(rows, cols) ones; tall shapes with
// rows > cols+1 get no ones below row cols-1, although offset k(cols+1) is still in range.
func Identity[T Scalar](rows, cols int) *Dense[T] {
	m := Zeros[T](rows, cols)
	step := cols + 1
	for k, off := 0, 0; k < m.diagLen(); k, off = k+1, off+step {
		m.data[off] = 1
	}

	return m
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[T Scalar](m *Dense[T]) *Dense[T] {
	return Zeros[T](m.r, m.c)
}

// IdentityLike returns I with the same shape as m.
func IdentityLike[T Scalar](m *Dense[T]) *Dense[T] {
	return Identity[T](m.r, m.c)
}

// ---------- Comparison ----------

// Equal reports structural equality: same rows, same cols, every element identical.
// No tolerance is applied; NaN is never equal to itself.
func Equal[T comparable](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether a and b have the same shape and |a[k]−b[k]| ≤ tol for
// every element. Equal infinities compare equal; NaN never does.
func EqualApprox[T Floating](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	var x, y float64
	for k := range a.data {
		x, y = float64(a.data[k]), float64(b.data[k])
		if x == y {
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x-y) > tol {
			return false
		}
	}

	return true
}
