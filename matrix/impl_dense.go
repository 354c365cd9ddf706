// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & bounds-checked accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep the invariant len(data) == rows*cols from construction to destruction.
//   - Never hand out the backing slice: reads return copies, writes go through Set,
//     SetRow or the shape-preserving swap primitives (impl_layout.go).
//
// Error policy:
//   - Out-of-range indices, shape mismatches and non-positive dimensions are caller bugs
//     and panic with an error wrapping ErrOutOfRange / ErrBadShape / ErrInvalidDimensions.
//
// Complexity quicksheet:
//   - New/NewFilled: O(r*c); At/Set: O(1); Row/Col: O(c)/O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"    // ctor tag
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over any element type.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; build matrices with New, NewFilled, Zeros or Identity.
type Dense[T any] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// mustDims panics unless rows > 0 and cols > 0.
func mustDims(op string, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Errorf("%s(%d,%d): %w", op, rows, cols, ErrInvalidDimensions))
	}
}

// New wraps buf as a rows×cols matrix. Ownership of buf moves to the matrix;
// the caller must not keep writing to it.
//
// Panics:
//   - ErrInvalidDimensions when rows or cols is not positive.
//   - ErrBadShape when len(buf) != rows*cols.
//
// Complexity: O(1).
func New[T any](buf []T, rows, cols int) *Dense[T] {
	mustDims(ctxNew, rows, cols)
	if len(buf) != rows*cols {
		panic(fmt.Errorf("%s: len %d for %dx%d: %w", ctxNew, len(buf), rows, cols, ErrBadShape))
	}

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// NewFilled creates a rows×cols matrix whose every cell equals value.
// Complexity: O(r*c).
func NewFilled[T any](value T, rows, cols int) *Dense[T] {
	mustDims("NewFilled", rows, cols)
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = value
	}

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// NewFrom returns an element-wise copy of m (never an alias).
// Complexity: O(r*c).
func NewFrom[T any](m *Dense[T]) *Dense[T] {
	return m.Clone()
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols, the number of stored elements.
func (m *Dense[T]) Len() int { return len(m.data) }

// IsSquare reports rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or panics with ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) int {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(denseErrorf(method, row, col, ErrOutOfRange))
	}

	// Row-major offset: i*c + j.
	return row*m.c + col
}

// At returns the value at (row, col).
// Panics with ErrOutOfRange on invalid indices.
func (m *Dense[T]) At(row, col int) T {
	return m.data[m.indexOf(ctxAt, row, col)]
}

// Set stores v at (row, col).
// Panics with ErrOutOfRange on invalid indices.
func (m *Dense[T]) Set(row, col int, v T) {
	m.data[m.indexOf(ctxSet, row, col)] = v
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// SetRow overwrites row i with values.
// Panics with ErrOutOfRange for a bad i and ErrDimensionMismatch when len(values) != Cols().
func (m *Dense[T]) SetRow(i int, values []T) {
	if i < 0 || i >= m.r {
		panic(denseErrorf(ctxSetRow, i, 0, ErrOutOfRange))
	}
	if len(values) != m.c {
		panic(fmt.Errorf("Dense.%s(%d): len %d, cols %d: %w", ctxSetRow, i, len(values), m.c, ErrDimensionMismatch))
	}
	copy(m.data[i*m.c:(i+1)*m.c], values)
}

// Col returns a copy of column j, built by striding through the buffer with step = cols.
// Complexity: O(r).
func (m *Dense[T]) Col(j int) []T {
	if j < 0 || j >= m.c {
		panic(denseErrorf(ctxCol, 0, j, ErrOutOfRange))
	}
	out := make([]T, m.r)
	for i, off := 0, j; i < m.r; i, off = i+1, off+m.c {
		out[i] = m.data[off]
	}

	return out
}

// Values returns a copy of the flat row-major buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy with the same shape.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Values()}
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// Not the persistence format; see package textio for that.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
