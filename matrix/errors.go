// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every precondition violation (shape, bounds, divisor) is a programmer
// error and panics with an error value that wraps one of these sentinels, so a
// recovering caller can still match it with errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Panic values are built as fmt.Errorf("<Op>: %w", ErrX) via matrixErrorf, so the
// rendered message reads "MatMul: matrix: dimension mismatch".

var (
	// ErrBadShape is raised when a buffer length disagrees with rows*cols, or when a
	// derived shape would be empty (e.g. SubMatrix of a 1×n matrix).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrZeroDivisor signals a scalar division by zero.
	ErrZeroDivisor = errors.New("matrix: zero divisor")

	// ErrNaN signals an incomparable (NaN) element met by a floating reduction.
	ErrNaN = errors.New("matrix: NaN is not comparable")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
