// SPDX-License-Identifier: MIT

// Package num declares the scalar capability interfaces shared by vec, matrix and linalg.
//
// One constraint per operation family:
//   - Scalar  : arithmetic (+, −, ×, ÷) on every integer and floating kind.
//   - Ordered : total order (<, >) without incomparable values: integers and strings.
//   - Floating: IEEE-754 kinds; ordered only partially (NaN compares false with everything).
package num

// Signed is the set of signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer kinds.
type Integer interface {
	Signed | Unsigned
}

// Floating is the set of floating-point kinds.
type Floating interface {
	~float32 | ~float64
}

// Scalar is the arithmetic capability: every type in the set supports +, −, ×, ÷,
// conversion from and to float64, and the literals 0 and 1.
type Scalar interface {
	Integer | Floating
}

// Ordered is the total-order capability. Floats are absent: use the
// *Float reductions for them, which treat NaN as a precondition violation.
type Ordered interface {
	Integer | ~string
}
