// SPDX-License-Identifier: MIT

// Package matrix - reductions over the flattened element sequence.
//
// Two families:
//   - Min / Max / ArgMin / ArgMax for totally ordered element types (Ordered).
//   - MinFloat / MaxFloat / ArgMinFloat / ArgMaxFloat for floating types. Floats are only
//     partially ordered, so meeting a NaN is a precondition violation and panics with ErrNaN.
//
// Ties resolve to the first occurrence in row-major order. Arg variants report the
// flat offset (row*cols + col) together with the value.
//
// Complexity: O(r*c) time, O(1) space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMinFloat = "MinFloat"
	opMaxFloat = "MaxFloat"
)

// argBest scans m.data keeping the first element for which better(candidate, best) holds.
func argBest[T any](m *Dense[T], better func(x, best T) bool) (int, T) {
	idx, best := 0, m.data[0]
	for k := 1; k < len(m.data); k++ {
		if better(m.data[k], best) {
			idx, best = k, m.data[k]
		}
	}

	return idx, best
}

// mustNoNaN panics with ErrNaN at the first NaN element.
func mustNoNaN[T Floating](op string, m *Dense[T]) {
	for k, v := range m.data {
		if math.IsNaN(float64(v)) {
			panic(matrixErrorf(op, fmt.Errorf("offset %d: %w", k, ErrNaN)))
		}
	}
}

// ArgMin returns the flat offset and value of the smallest element.
func ArgMin[T Ordered](m *Dense[T]) (int, T) {
	return argBest(m, func(x, best T) bool { return x < best })
}

// ArgMax returns the flat offset and value of the largest element.
func ArgMax[T Ordered](m *Dense[T]) (int, T) {
	return argBest(m, func(x, best T) bool { return x > best })
}

// Min returns the smallest element.
func Min[T Ordered](m *Dense[T]) T {
	_, v := ArgMin(m)
	return v
}

// Max returns the largest element.
func Max[T Ordered](m *Dense[T]) T {
	_, v := ArgMax(m)
	return v
}

// ArgMinFloat returns the flat offset and value of the smallest element.
// Panics with ErrNaN if any element is NaN.
func ArgMinFloat[T Floating](m *Dense[T]) (int, T) {
	mustNoNaN(opMinFloat, m)

	return argBest(m, func(x, best T) bool { return x < best })
}

// ArgMaxFloat returns the flat offset and value of the largest element.
// Panics with ErrNaN if any element is NaN.
func ArgMaxFloat[T Floating](m *Dense[T]) (int, T) {
	mustNoNaN(opMaxFloat, m)

	return argBest(m, func(x, best T) bool { return x > best })
}

// MinFloat returns the smallest element. Panics with ErrNaN on NaN input.
func MinFloat[T Floating](m *Dense[T]) T {
	_, v := ArgMinFloat(m)
	return v
}

// MaxFloat returns the largest element. Panics with ErrNaN on NaN input.
func MaxFloat[T Floating](m *Dense[T]) T {
	_, v := ArgMaxFloat(m)
	return v
}
