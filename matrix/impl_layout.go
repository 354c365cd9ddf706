// SPDX-License-Identifier: MIT

// Package matrix - layout transformations and the swap primitives.
//
// Purpose:
//   - TransposeInPlace rewrites the flat buffer without a second r*c buffer.
//   - SubMatrix / Flatten materialize new matrices.
//   - SwapRows / SwapCols / SwapRowsOffDiag are the only bulk mutation primitives
//     used by the elimination code in package linalg; each one preserves the shape.

package matrix

import "fmt"

const (
	ctxSubMatrix = "SubMatrix"
	ctxSwapRows  = "SwapRows"
	ctxSwapCols  = "SwapCols"
	ctxSwapOff   = "SwapRowsOffDiag"
)

// transposeDest maps an old flat offset k to its offset after transposition.
// For an r×c matrix with n = r*c, element k = a*c + b moves to b*r + a, which equals
// k*r mod (n-1) for 0 < k < n-1 (offsets 0 and n-1 are fixed points).
func transposeDest(k, rows, n int) int {
	if k == n-1 {
		return k
	}

	return (k * rows) % (n - 1)
}

// TransposeInPlace replaces m with mᵀ, exchanging Rows and Cols.
// Implementation:
//   - Stage 1: square fast path, swap across the diagonal.
//   - Stage 2: rectangular case, follow the permutation k → k*r mod (n-1) cycle by cycle.
//     A cycle is rotated only from its smallest offset (its leader), which is detected by
//     walking the cycle once; this keeps extra memory at O(1).
//   - Stage 3: swap the dimension fields.
//
// Complexity:
//   - Square: O(n). Rectangular: O(n · L) worst case with L the longest cycle, O(1) extra space.
func (m *Dense[T]) TransposeInPlace() {
	r, c := m.r, m.c
	if r == c {
		for i := 0; i < r; i++ {
			for j := i + 1; j < c; j++ {
				m.data[i*c+j], m.data[j*c+i] = m.data[j*c+i], m.data[i*c+j]
			}
		}
		return
	}

	n := len(m.data)
	var start, k int
	var leader bool
	for start = 1; start < n-1; start++ {
		// leader check: no offset on the cycle may be smaller than start
		leader = true
		for k = transposeDest(start, r, n); k != start; k = transposeDest(k, r, n) {
			if k < start {
				leader = false
				break
			}
		}
		if !leader {
			continue
		}
		// rotate the cycle: carry the displaced value forward until we return to start
		carry := m.data[start]
		for k = transposeDest(start, r, n); ; k = transposeDest(k, r, n) {
			carry, m.data[k] = m.data[k], carry
			if k == start {
				break
			}
		}
	}
	m.r, m.c = c, r
}

// Transpose returns mᵀ as a new matrix; m is not modified.
// Complexity: O(r*c) time and space.
func (m *Dense[T]) Transpose() *Dense[T] {
	t := m.Clone()
	t.TransposeInPlace()

	return t
}

// SubMatrix returns the (rows-1)×(cols-1) matrix of every element outside
// excludeRow and excludeCol, preserving relative order.
// Panics with ErrOutOfRange for bad indices and ErrBadShape when either
// dimension is 1 (the result would be empty).
func (m *Dense[T]) SubMatrix(excludeRow, excludeCol int) *Dense[T] {
	if excludeRow < 0 || excludeRow >= m.r || excludeCol < 0 || excludeCol >= m.c {
		panic(denseErrorf(ctxSubMatrix, excludeRow, excludeCol, ErrOutOfRange))
	}
	if m.r < 2 || m.c < 2 {
		panic(fmt.Errorf("Dense.%s: %dx%d: %w", ctxSubMatrix, m.r, m.c, ErrBadShape))
	}

	out := make([]T, 0, (m.r-1)*(m.c-1))
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i == excludeRow {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j != excludeCol {
				out = append(out, m.data[base+j])
			}
		}
	}

	return &Dense[T]{r: m.r - 1, c: m.c - 1, data: out}
}

// Flatten returns a 1×(rows*cols) copy holding the elements in row-major order.
func (m *Dense[T]) Flatten() *Dense[T] {
	return &Dense[T]{r: 1, c: len(m.data), data: m.Values()}
}

// SwapRows exchanges rows i and j in place.
func (m *Dense[T]) SwapRows(i, j int) {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		panic(denseErrorf(ctxSwapRows, i, j, ErrOutOfRange))
	}
	if i == j {
		return
	}
	a, b := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// SwapCols exchanges columns i and j in place.
func (m *Dense[T]) SwapCols(i, j int) {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		panic(denseErrorf(ctxSwapCols, i, j, ErrOutOfRange))
	}
	if i == j {
		return
	}
	for base := 0; base < len(m.data); base += m.c {
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}
}

// SwapRowsOffDiag exchanges rows i and j everywhere except columns i and j.
// On a unit lower-triangular factor this moves the already computed multipliers
// with their rows while leaving the unit diagonal where it is.
func (m *Dense[T]) SwapRowsOffDiag(i, j int) {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		panic(denseErrorf(ctxSwapOff, i, j, ErrOutOfRange))
	}
	if i == j {
		return
	}
	a, b := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range a {
		if k != i && k != j {
			a[k], b[k] = b[k], a[k]
		}
	}
}
