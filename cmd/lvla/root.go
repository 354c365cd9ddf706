// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/lvlinalg/internal/config"
	"github.com/katalvlaran/lvlinalg/internal/metrics"
	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/textio"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	pivot    pivotFlag
	out      string
	metrics  string

	cfg    *config.Config
	logger zerolog.Logger
	reg    *metrics.Registry
}

// Execute builds the command tree and runs it with args.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{logger: zerolog.Nop(), reg: metrics.NewRegistry()}
	root := &cobra.Command{
		Use:           "lvla",
		Short:         "Dense matrix and linear-algebra operations on text matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	pf.Var(&a.pivot, "pivoting", "PLU pivot strategy: partial or adjacent (overrides config)")
	pf.StringVarP(&a.out, "out", "o", "", "write the result to this file instead of stdout")
	pf.StringVar(&a.metrics, "metrics-file", "", "write Prometheus metrics to this textfile (overrides config)")

	root.AddCommand(
		a.transposeCmd(),
		a.traceCmd(),
		a.detCmd(),
		a.mulCmd(),
		a.invCmd(),
		a.solveCmd(),
		a.pluCmd(),
		a.qrCmd(),
		a.normCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and configures logging.
func (a *app) setup(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("pivoting") {
		cfg.Linalg.Pivoting = a.pivot.String()
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = a.metrics
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	console := isTerminal(stderr)
	if cfg.Log.Console != nil {
		console = *cfg.Log.Console
	}
	var w io.Writer = stderr
	if console {
		w = zerolog.ConsoleWriter{Out: stderr}
	}
	a.logger = zerolog.New(w).Level(cfg.LogLevel()).With().Timestamp().Str("cmd", cmd.Name()).Logger()
	log.Logger = a.logger
	a.logger.Debug().Str("pivoting", cfg.Linalg.Pivoting).Msg("configured")

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) opts() []linalg.Option {
	return a.cfg.LinalgOptions(a.logger)
}

// guard turns precondition panics from the matrix packages into command errors
// and records the outcome in the metrics registry.
func (a *app) guard(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				perr, ok := r.(error)
				if !ok {
					panic(r)
				}
				err = fmt.Errorf("%s: %w", cmd.Name(), perr)
			}
			a.reg.Observe(cmd.Name(), start, err)
			if path := a.cfg.Metrics.Textfile; path != "" {
				if werr := a.reg.WriteTextfile(path); werr != nil {
					a.logger.Warn().Err(werr).Str("path", path).Msg("metrics not written")
				}
			}
		}()
		if err = cmd.Context().Err(); err != nil {
			return err
		}

		return fn(cmd, args)
	}
}

// load reads every path as a float64 matrix.
func (a *app) load(paths ...string) ([]*matrix.Dense[float64], error) {
	out := make([]*matrix.Dense[float64], 0, len(paths))
	for _, p := range paths {
		m, err := textio.LoadFloat(p)
		if err != nil {
			return nil, err
		}
		a.logger.Debug().Str("path", p).Int("rows", m.Rows()).Int("cols", m.Cols()).Msg("loaded")
		a.reg.Elements.Add(float64(m.Len()))
		out = append(out, m)
	}

	return out, nil
}

// named is one labelled result matrix.
type named struct {
	name string
	m    *matrix.Dense[float64]
}

// emit writes results to stdout, or to --out. With several results each goes to
// its own file, <out> with ".<name>" inserted before the extension.
func (a *app) emit(cmd *cobra.Command, results ...named) error {
	if a.out == "" {
		w := cmd.OutOrStdout()
		for i, r := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "# %s\n", r.name)
			}
			if err := textio.Write(w, r.m); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range results {
		path := a.out
		if len(results) > 1 {
			ext := filepath.Ext(a.out)
			path = strings.TrimSuffix(a.out, ext) + "." + r.name + ext
		}
		if err := textio.Save(path, r.m); err != nil {
			return err
		}
		a.logger.Info().Str("path", path).Msg("result written")
	}

	return nil
}

func scalar(v float64) *matrix.Dense[float64] {
	return matrix.NewFilled(v, 1, 1)
}
