// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/spf13/cobra"
)

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose FILE",
		Short: "Print the transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}
			ms[0].TransposeInPlace()

			return a.emit(cmd, named{"transpose", ms[0]})
		}),
	}
}

func (a *app) traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Print the sum of the diagonal",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}

			return a.emit(cmd, named{"trace", scalar(matrix.Trace(ms[0]))})
		}),
	}
}

func (a *app) detCmd() *cobra.Command {
	var laplace bool
	cmd := &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}
			var det float64
			if laplace {
				det = matrix.Determinant(ms[0])
			} else {
				det = linalg.Determinant(ms[0], a.opts()...)
			}

			return a.emit(cmd, named{"det", scalar(det)})
		}),
	}
	cmd.Flags().BoolVar(&laplace, "laplace", false, "use cofactor expansion instead of PLU")

	return cmd
}

func (a *app) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul A B",
		Short: "Print the matrix product A·B",
		Args:  cobra.ExactArgs(2),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}

			return a.emit(cmd, named{"product", matrix.MatMul(ms[0], ms[1])})
		}),
	}
}

func (a *app) invCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inv FILE",
		Short: "Print the inverse of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}
			inv, err := linalg.Inverse(ms[0], a.opts()...)
			if err != nil {
				return err
			}

			return a.emit(cmd, named{"inverse", inv})
		}),
	}
}

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve C R",
		Short: "Solve C·X = R by Gauss-Jordan elimination",
		Args:  cobra.ExactArgs(2),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}
			x, err := linalg.GaussJordan(ms[0], ms[1], a.opts()...)
			if err != nil {
				return err
			}

			return a.emit(cmd, named{"solution", x})
		}),
	}
}

func (a *app) pluCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plu FILE",
		Short: "Print the P, L and U factors with P·A = L·U",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}
			f, err := linalg.Decompose(ms[0], a.opts()...)
			if err != nil {
				return err
			}
			a.logger.Info().Int("swaps", f.Swaps).Msg("decomposed")

			return a.emit(cmd, named{"p", f.P}, named{"l", f.L}, named{"u", f.U})
		}),
	}
}

func (a *app) qrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qr FILE",
		Short: "Print Q and R from Gram-Schmidt orthogonalization",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}
			q, r, err := linalg.GramSchmidt(ms[0], a.opts()...)
			if err != nil {
				return err
			}

			return a.emit(cmd, named{"q", q}, named{"r", r})
		}),
	}
}

func (a *app) normCmd() *cobra.Command {
	var axis int
	cmd := &cobra.Command{
		Use:   "norm FILE",
		Short: "Print Euclidean norms: --axis -1 (all), 0 (rows) or 1 (columns)",
		Args:  cobra.ExactArgs(1),
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args...)
			if err != nil {
				return err
			}

			return a.emit(cmd, named{"norm", linalg.Norm(ms[0], axis)})
		}),
	}
	cmd.Flags().IntVar(&axis, "axis", linalg.AxisAll, "-1 for Frobenius, 0 per row, 1 per column")

	return cmd
}
