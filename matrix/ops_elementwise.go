// SPDX-License-Identifier: MIT

// Package matrix - element-wise arithmetic.
//
// Purpose:
//   - Scalar operators (+, −, ×, ÷) as fresh-result and in-place forms.
//   - Matrix ⊕ matrix (+, −, ⊙) with identical shapes.
//   - Negation.
//
// Policy:
//   - Shapes must match exactly (ErrDimensionMismatch panic).
//   - Division by a scalar panics on a zero divisor (ErrZeroDivisor) and routes every
//     element through float64: T(float64(e) / float64(s)). Integer matrices therefore
//     get truncated quotients; callers needing exact integer division should loop themselves.
//
// Determinism:
//   - Single flat loop 0..n-1 over the row-major buffer.

package matrix

const (
	opDivScalar = "DivScalar"
	opAdd       = "Add"
	opSub       = "Sub"
	opAddInto   = "AddInPlace"
	opSubInto   = "SubInPlace"
	opHadamard  = "Hadamard"
)

// mapNew returns a same-shape matrix with out[k] = f(m[k]).
func mapNew[T any](m *Dense[T], f func(T) T) *Dense[T] {
	out := make([]T, len(m.data))
	for k, v := range m.data {
		out[k] = f(v)
	}

	return &Dense[T]{r: m.r, c: m.c, data: out}
}

// mapInPlace sets m[k] = f(m[k]).
func mapInPlace[T any](m *Dense[T], f func(T) T) {
	for k, v := range m.data {
		m.data[k] = f(v)
	}
}

// zipNew returns out[k] = f(a[k], b[k]) after a shape check tagged with op.
func zipNew[T any](op string, a, b *Dense[T], f func(x, y T) T) *Dense[T] {
	must(op, ValidateSameShape(a, b))
	out := make([]T, len(a.data))
	for k := range a.data {
		out[k] = f(a.data[k], b.data[k])
	}

	return &Dense[T]{r: a.r, c: a.c, data: out}
}

// mustNonZero panics with ErrZeroDivisor when s == 0.
func mustNonZero[T Scalar](op string, s T) {
	if s == 0 {
		panic(matrixErrorf(op, ErrZeroDivisor))
	}
}

// AddScalar returns m + s element-wise.
func AddScalar[T Scalar](m *Dense[T], s T) *Dense[T] {
	return mapNew(m, func(v T) T { return v + s })
}

// SubScalar returns m − s element-wise.
func SubScalar[T Scalar](m *Dense[T], s T) *Dense[T] {
	return mapNew(m, func(v T) T { return v - s })
}

// MulScalar returns m × s element-wise.
func MulScalar[T Scalar](m *Dense[T], s T) *Dense[T] {
	return mapNew(m, func(v T) T { return v * s })
}

// DivScalar returns m ÷ s element-wise via a float64 round-trip.
// Panics with ErrZeroDivisor when s == 0.
func DivScalar[T Scalar](m *Dense[T], s T) *Dense[T] {
	mustNonZero(opDivScalar, s)
	fs := float64(s)

	return mapNew(m, func(v T) T { return T(float64(v) / fs) })
}

// AddScalarInPlace performs m += s.
func AddScalarInPlace[T Scalar](m *Dense[T], s T) {
	mapInPlace(m, func(v T) T { return v + s })
}

// SubScalarInPlace performs m -= s.
func SubScalarInPlace[T Scalar](m *Dense[T], s T) {
	mapInPlace(m, func(v T) T { return v - s })
}

// MulScalarInPlace performs m *= s.
func MulScalarInPlace[T Scalar](m *Dense[T], s T) {
	mapInPlace(m, func(v T) T { return v * s })
}

// DivScalarInPlace performs m /= s via a float64 round-trip.
// Panics with ErrZeroDivisor when s == 0.
func DivScalarInPlace[T Scalar](m *Dense[T], s T) {
	mustNonZero(opDivScalar, s)
	fs := float64(s)
	mapInPlace(m, func(v T) T { return T(float64(v) / fs) })
}

// Neg returns −m.
func Neg[T Scalar](m *Dense[T]) *Dense[T] {
	return mapNew(m, func(v T) T { return -v })
}

// Add returns a + b. Panics with ErrDimensionMismatch on different shapes.
func Add[T Scalar](a, b *Dense[T]) *Dense[T] {
	return zipNew(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a − b. Panics with ErrDimensionMismatch on different shapes.
func Sub[T Scalar](a, b *Dense[T]) *Dense[T] {
	return zipNew(opSub, a, b, func(x, y T) T { return x - y })
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard[T Scalar](a, b *Dense[T]) *Dense[T] {
	return zipNew(opHadamard, a, b, func(x, y T) T { return x * y })
}

// AddInPlace performs dst += src. Panics with ErrDimensionMismatch on different shapes.
func AddInPlace[T Scalar](dst, src *Dense[T]) {
	must(opAddInto, ValidateSameShape(dst, src))
	for k := range dst.data {
		dst.data[k] += src.data[k]
	}
}

// SubInPlace performs dst -= src. Panics with ErrDimensionMismatch on different shapes.
func SubInPlace[T Scalar](dst, src *Dense[T]) {
	must(opSubInto, ValidateSameShape(dst, src))
	for k := range dst.data {
		dst.data[k] -= src.data[k]
	}
}
