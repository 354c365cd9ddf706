// SPDX-License-Identifier: MIT

// Package matrix provides the numeric kernels layered on Dense:
// matrix multiplication, trace, the cofactor determinant and the
// off-diagonal accumulation used by the PLU factorization in package linalg.
//
// Notes:
//   - Kernels validate through validators.go and panic via must(op, err) on a
//     precondition violation; they never return partially built results.
//   - Package linalg holds the float64 factorizations (PLU, Gauss-Jordan, QR).

package matrix

import "github.com/katalvlaran/lvlinalg/vec"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatMul      = "MatMul"
	opDeterminant = "Determinant"
	opAddNonDiag  = "AddNonDiagonalInPlace"
)

// MatMul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate A.Cols == B.Rows.
//   - Stage 2: transpose B once so that every column of B is a contiguous row.
//   - Stage 3: C[i,j] = Dot(row_i(A), row_j(Bᵀ)) over the flat buffers (no row copies).
//
// Panics:
//   - ErrDimensionMismatch when the inner dimensions differ.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for the result and the transposed operand.
func MatMul[T Scalar](a, b *Dense[T]) *Dense[T] {
	must(opMatMul, ValidateMulCompatible(a, b))

	bt := b.Transpose()
	rows, cols, inner := a.r, b.c, a.c
	out := make([]T, rows*cols)
	var i, j int
	var rowA []T
	for i = 0; i < rows; i++ {
		rowA = a.data[i*inner : (i+1)*inner]
		for j = 0; j < cols; j++ {
			out[i*cols+j] = vec.Dot(rowA, bt.data[j*inner:(j+1)*inner])
		}
	}

	return &Dense[T]{r: rows, c: cols, data: out}
}

// Trace returns the sum of the diagonal sequence.
// Meaningful for square matrices; for rectangular ones it sums the min(r,c) leading
// diagonal cells.
func Trace[T Scalar](m *Dense[T]) T {
	var sum T
	for v := range m.DiagSeq() {
		sum += v
	}

	return sum
}

// Determinant computes det(m) by cofactor (Laplace) expansion along the first row:
//
//	det = Σ_i (−1)^i · m[0,i] · det(SubMatrix(m, 0, i))
//
// Base cases: 1×1 returns the element, 2×2 returns m00*m11 − m01*m10.
//
// This is the brute-force reference (factorial cost); linalg.Determinant uses PLU.
//
// Panics:
//   - ErrNonSquare for rectangular input.
func Determinant[T Scalar](m *Dense[T]) T {
	must(opDeterminant, ValidateSquare(m))

	return cofactorDet(m)
}

// cofactorDet is the recursive body of Determinant; m is known to be square.
func cofactorDet[T Scalar](m *Dense[T]) T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var det, term T
	for i := 0; i < m.c; i++ {
		if m.data[i] == 0 {
			continue // zero cofactor weight, skip the recursion
		}
		term = m.data[i] * cofactorDet(m.SubMatrix(0, i))
		if i%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}

// AddNonDiagonalInPlace adds rhs into lhs everywhere except the diagonal positions
// (the same offsets DiagSeq visits).
// Panics with ErrDimensionMismatch on different shapes.
func AddNonDiagonalInPlace[T Scalar](lhs, rhs *Dense[T]) {
	must(opAddNonDiag, ValidateSameShape(lhs, rhs))
	for k := range lhs.data {
		if !lhs.isDiagOffset(k) {
			lhs.data[k] += rhs.data[k]
		}
	}
}
