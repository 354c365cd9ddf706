// SPDX-License-Identifier: MIT

package matrix

import "iter"

// diagLen is the number of diagonal cells: min(rows, cols).
func (m *Dense[T]) diagLen() int {
	return min(m.r, m.c)
}

// RowsSeq returns a lazy, restartable sequence of (index, row copy) pairs.
// Each yielded row is an independent slice; mutating it does not touch m.
//
//	for i, row := range m.RowsSeq() { ... }
func (m *Dense[T]) RowsSeq() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.r; i++ {
			if !yield(i, m.Row(i)) {
				return
			}
		}
	}
}

// DiagSeq returns a lazy, restartable sequence over the diagonal:
// flat offsets 0, cols+1, 2(cols+1), ... for min(rows, cols) cells.
// Stepping stops at min(rows, cols) even when further offsets are still inside the
// buffer, so a 4×2 matrix yields m[0,0], m[1,1] and not the off-diagonal m[3,0].
func (m *Dense[T]) DiagSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		step, n := m.c+1, m.diagLen()
		for k, off := 0, 0; k < n; k, off = k+1, off+step {
			if !yield(m.data[off]) {
				return
			}
		}
	}
}

// Diag returns a copy of the diagonal.
func (m *Dense[T]) Diag() []T {
	out := make([]T, 0, m.diagLen())
	for v := range m.DiagSeq() {
		out = append(out, v)
	}

	return out
}

// isDiagOffset reports whether flat offset off lies on the diagonal.
func (m *Dense[T]) isDiagOffset(off int) bool {
	return off%(m.c+1) == 0 && off/(m.c+1) < m.diagLen()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
