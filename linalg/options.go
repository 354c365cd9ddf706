// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// Pivoting selects how PLU picks the pivot row of each column.
type Pivoting int

const (
	// PivotPartial chooses, at or below the diagonal, the row with the largest
	// absolute value in the current column. Zero means the column is exhausted.
	PivotPartial Pivoting = iota

	// PivotAdjacent reproduces the classic heuristic: when the diagonal is zero, scan the
	// pivot row to the right for the first nonzero offset n and swap rows i and i+n; then
	// make a single forward pass swapping adjacent rows j, j-1 whenever U[j,i] > U[j-1,i].
	// The pass compares signed values and can move a zero onto the diagonal of an
	// invertible matrix (e.g. [[-1,1],[0,1]]); Decompose and PLU then report ErrSingular.
	// Determinant falls back to PivotPartial in that case.
	PivotAdjacent
)

// DefaultRankTolerance is the relative threshold GramSchmidt uses to declare a column dependent.
const DefaultRankTolerance = 1e-10

const panicRankToleranceInvalid = "linalg: WithRankTolerance requires a finite tol >= 0"

// String returns the canonical lowercase name, as accepted by ParsePivoting.
func (p Pivoting) String() string {
	switch p {
	case PivotPartial:
		return "partial"
	case PivotAdjacent:
		return "adjacent"
	default:
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}
}

// ParsePivoting maps "partial" or "adjacent" (case-insensitive) to a Pivoting.
// Returns ErrUnknownPivoting otherwise.
func ParsePivoting(s string) (Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "partial":
		return PivotPartial, nil
	case "adjacent":
		return PivotAdjacent, nil
	}

	return PivotPartial, fmt.Errorf("%q: %w", s, ErrUnknownPivoting)
}

// Options holds the knobs shared by PLU, Determinant and GramSchmidt.
type Options struct {
	pivoting Pivoting
	rankTol  float64
	log      zerolog.Logger
}

// Option mutates Options; apply with the variadic arguments of each entry point.
type Option func(*Options)

// WithPivoting selects the PLU pivot strategy. Default PivotPartial.
func WithPivoting(p Pivoting) Option {
	return func(o *Options) { o.pivoting = p }
}

// WithRankTolerance sets the relative tolerance used by GramSchmidt: a column whose
// orthogonal remainder has norm <= tol*max(1, ‖a‖) counts as dependent.
//
// Panics when tol is negative, NaN or infinite.
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithLogger routes Debug events (pivot swaps, eliminations) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// Pivoting reports the configured strategy.
func (o Options) Pivoting() Pivoting { return o.pivoting }

// RankTolerance reports the configured GramSchmidt tolerance.
func (o Options) RankTolerance() float64 { return o.rankTol }

func defaultOptions() Options {
	return Options{
		pivoting: PivotPartial,
		rankTol:  DefaultRankTolerance,
		log:      zerolog.Nop(),
	}
}

// NewOptions resolves opts over the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
