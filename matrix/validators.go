// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Exported Validate* functions return plain wrapped sentinels so callers can
//     pre-check operands and branch instead of triggering a panic.
//   - Kernels call must(op, err), which turns a failed check into the panic
//     described in errors.go.
//
// Determinism & Performance:
//   - All checks are O(1), pure and allocation-free on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// must panics with matrixErrorf(op, err) when err is non-nil.
func must(op string, err error) {
	if err != nil {
		panic(matrixErrorf(op, err))
	}
}

// ValidateNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T any](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and rows == cols.
// Returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare[T any](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have identical dimensions.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateSameShape[T any](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateMulCompatible[T any](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}
