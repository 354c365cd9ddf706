// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// fromRows builds a float64 matrix from a rectangular literal.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	require.NotEmpty(t, rows)
	buf := make([]float64, 0, len(rows)*len(rows[0]))
	for i, r := range rows {
		require.Len(t, r, len(rows[0]), "row %d", i)
		buf = append(buf, r...)
	}

	return matrix.New(buf, len(rows), len(rows[0]))
}

// randSquare returns an n×n matrix with entries in [-1, 1) from a fixed seed.
func randSquare(n int, seed int64) *matrix.Dense[float64] {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, n*n)
	for k := range buf {
		buf[k] = rng.Float64()*2 - 1
	}

	return matrix.New(buf, n, n)
}

// diagDominant returns randSquare(n, seed) + n·I, which is well conditioned.
func diagDominant(n int, seed int64) *matrix.Dense[float64] {
	m := randSquare(n, seed)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+float64(n))
	}

	return m
}

// requireClose fails unless a and b share a shape and agree within eps.
func requireClose(t *testing.T, want, got *matrix.Dense[float64], eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.InDeltaSlice(t, want.Values(), got.Values(), eps)
}

// expectPanicIs asserts that fn panics with an error matching target.
func expectPanicIs(t *testing.T, target error, fn func()) {
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
