// SPDX-License-Identifier: MIT

// Package metrics records per-invocation operation counters and durations for
// the lvla command and writes them in the Prometheus text format, for pickup by
// a node exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK          = "ok"
	ResultSingular    = "singular"
	ResultRankDeficit = "rank_deficient"
	ResultError       = "error"
)

// Registry holds the lvla metrics on a private prometheus.Registry.
type Registry struct {
	reg *prometheus.Registry

	// Operations counts finished operations by op and result.
	Operations *prometheus.CounterVec

	// Duration observes wall time per op.
	Duration *prometheus.HistogramVec

	// Elements counts matrix elements read from input files.
	Elements prometheus.Counter
}

// NewRegistry creates and registers every metric.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvla_operations_total",
				Help: "Finished lvla operations by operation and result",
			},
			[]string{"op", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvla_operation_duration_seconds",
				Help:    "Wall time of each lvla operation in seconds",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
			[]string{"op"},
		),
		Elements: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lvla_input_elements_total",
				Help: "Matrix elements loaded from input files",
			},
		),
	}
	r.reg.MustRegister(r.Operations, r.Duration, r.Elements)

	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Observe records one finished op that started at start and ended with err.
func (r *Registry) Observe(op string, start time.Time, err error) {
	r.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	r.Operations.WithLabelValues(op, Result(err)).Inc()
}

// Result maps an operation error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, linalg.ErrSingular):
		return ResultSingular
	case errors.Is(err, linalg.ErrRankDeficient):
		return ResultRankDeficit
	default:
		return ResultError
	}
}

// WriteTextfile atomically writes the current values to path.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
