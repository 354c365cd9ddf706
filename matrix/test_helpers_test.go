// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Centralize panic assertions: precondition violations panic with wrapped sentinels.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

// FromRows builds a *Dense from a literal [][]T (all rows must share one length).
func FromRows[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	require.NotEmpty(t, rows)
	c := len(rows[0])
	buf := make([]T, 0, len(rows)*c)
	for i, r := range rows {
		require.Len(t, r, c, "row %d", i)
		buf = append(buf, r...)
	}

	return matrix.New(buf, len(rows), c)
}

// CompareExact fails unless m has exactly the shape and values of want.
func CompareExact[T comparable](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], m.At(i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose fails unless a and b agree element-wise within tol.
func CompareClose(t *testing.T, a, b *matrix.Dense[float64], tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	require.InDeltaSlice(t, a.Values(), b.Values(), tol)
}

// RandFilled returns an r×c float64 matrix with entries in [-1, 1) from a fixed seed.
func RandFilled(r, c int, seed int64) *matrix.Dense[float64] {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for k := range buf {
		buf[k] = rng.Float64()*2 - 1
	}

	return matrix.New(buf, r, c)
}

// ExpectPanicIs asserts that fn panics with an error value matching target.
func ExpectPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic, got nil")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		require.True(t, errors.Is(err, target), "want %v; got %v", target, err)
	}()
	fn()
}

// mustDense allocates an n×m random matrix for benchmarks.
func mustDense(b *testing.B, r, c int, seed int64) *matrix.Dense[float64] {
	b.Helper()

	return RandFilled(r, c, seed)
}
