// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular reports that no usable pivot exists: the matrix has no inverse
	// and no PLU factorization under the selected strategy.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrRankDeficient reports linearly dependent columns met by GramSchmidt.
	ErrRankDeficient = errors.New("linalg: columns are linearly dependent")

	// ErrUnsupportedAxis is the panic sentinel for Norm axes other than -1, 0 and 1.
	ErrUnsupportedAxis = errors.New("linalg: unsupported axis")

	// ErrUnknownPivoting is returned by ParsePivoting for unrecognized names.
	ErrUnknownPivoting = errors.New("linalg: unknown pivoting strategy")
)

// linalgErrorf wraps err with an operation tag. Use only when err != nil.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// must panics with linalgErrorf(op, err) when err is non-nil.
func must(op string, err error) {
	if err != nil {
		panic(linalgErrorf(op, err))
	}
}
