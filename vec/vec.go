// SPDX-License-Identifier: MIT

package vec

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/num"
)

var (
	// ErrLengthMismatch is the panic cause when two operands differ in length.
	ErrLengthMismatch = errors.New("vec: length mismatch")

	// ErrZeroDivisor is the panic cause when a divisor is zero.
	ErrZeroDivisor = errors.New("vec: zero divisor")
)

// Operation tags used as panic prefixes.
const (
	opDot = "Dot"
	opAdd = "AddInPlace"
	opSub = "SubInPlace"
	opDiv = "DivInPlace"
	opPrj = "Proj"
)

// mustSameLen panics when len(a) != len(b).
func mustSameLen(op string, na, nb int) {
	if na != nb {
		panic(fmt.Errorf("%s: %d vs %d: %w", op, na, nb, ErrLengthMismatch))
	}
}

// Dot returns Σ a[i]*b[i].
// Panics with ErrLengthMismatch when the lengths differ.
func Dot[T num.Scalar](a, b []T) T {
	mustSameLen(opDot, len(a), len(b))

	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// AddInPlace performs dst[i] += src[i].
func AddInPlace[T num.Scalar](dst, src []T) {
	mustSameLen(opAdd, len(dst), len(src))
	for i := range dst {
		dst[i] += src[i]
	}
}

// SubInPlace performs dst[i] -= src[i].
func SubInPlace[T num.Scalar](dst, src []T) {
	mustSameLen(opSub, len(dst), len(src))
	for i := range dst {
		dst[i] -= src[i]
	}
}

// ScaleInPlace performs dst[i] *= s.
func ScaleInPlace[T num.Scalar](dst []T, s T) {
	for i := range dst {
		dst[i] *= s
	}
}

// DivInPlace performs dst[i] /= d for floating vectors.
// Panics with ErrZeroDivisor when d == 0.
func DivInPlace[T num.Floating](dst []T, d T) {
	if d == 0 {
		panic(fmt.Errorf("%s: %w", opDiv, ErrZeroDivisor))
	}
	for i := range dst {
		dst[i] /= d
	}
}

// Norm returns the Euclidean length sqrt(Σ v[i]²) computed in float64.
// Each square is formed in T before widening, matching element-wise semantics
// of integer matrices.
func Norm[T num.Scalar](v []T) float64 {
	sum := 0.0
	for _, x := range v {
		sum += float64(x * x)
	}

	return math.Sqrt(sum)
}

// Proj returns the projection of a onto u: u · (u·a / u·u).
// Panics with ErrZeroDivisor when u is the zero vector.
func Proj[T num.Floating](u, a []T) []T {
	mustSameLen(opPrj, len(u), len(a))
	uu := Dot(u, u)
	if uu == 0 {
		panic(fmt.Errorf("%s: %w", opPrj, ErrZeroDivisor))
	}
	fact := Dot(u, a) / uu

	out := make([]T, len(u))
	for i, x := range u {
		out[i] = x * fact
	}

	return out
}
