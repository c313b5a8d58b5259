// SPDX-License-Identifier: MIT
// Package: hillcolor/report
//
// metrics.go - Prometheus observer for search runs.
//
// Metrics (all labelled by strategy):
//   • hillcolor_runs_total{strategy,status}   finished searches by outcome
//   • hillcolor_iterations_total{strategy}    loop passes
//   • hillcolor_moves_total{strategy}         committed recolourings
//   • hillcolor_evaluations_total{strategy}   candidate evaluations
//   • hillcolor_final_conflicts{strategy}     histogram of terminal conflicts
//   • hillcolor_run_iterations{strategy}      histogram of passes per run
//
// Collectors are registered on the Registerer handed to NewMetrics, never
// on the global default registry.

package report

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/hillcolor/coloring"
)

const metricsNamespace = "hillcolor"

// Metrics is a coloring.Observer that records run statistics.
type Metrics struct {
	runs           *prometheus.CounterVec
	iterations     *prometheus.CounterVec
	moves          *prometheus.CounterVec
	evaluations    *prometheus.CounterVec
	finalConflicts *prometheus.HistogramVec
	runIterations  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// It panics if reg already holds collectors with the same names.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Finished searches by strategy and termination status.",
		}, []string{"strategy", "status"}),
		iterations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "iterations_total",
			Help:      "Search loop passes by strategy.",
		}, []string{"strategy"}),
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "moves_total",
			Help:      "Committed recolourings by strategy.",
		}, []string{"strategy"}),
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Candidate move evaluations by strategy.",
		}, []string{"strategy"}),
		finalConflicts: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "final_conflicts",
			Help:      "Conflicts left when a search finished.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}, []string{"strategy"}),
		runIterations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_iterations",
			Help:      "Loop passes per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		}, []string{"strategy"}),
	}
}

// OnStart implements coloring.Observer.
func (m *Metrics) OnStart(string, coloring.Coloring, int) {}

// OnIteration implements coloring.Observer.
func (m *Metrics) OnIteration(strategy string, _ int, _ coloring.Coloring, _ int) {
	m.iterations.WithLabelValues(strategy).Inc()
}

// SkipsSnapshots implements coloring.SnapshotSkipper.
func (m *Metrics) SkipsSnapshots() bool { return true }

// OnFinish implements coloring.Observer.
func (m *Metrics) OnFinish(res coloring.Result) {
	m.runs.WithLabelValues(res.Strategy, res.Status.String()).Inc()
	m.moves.WithLabelValues(res.Strategy).Add(float64(res.Moves))
	m.evaluations.WithLabelValues(res.Strategy).Add(float64(res.Evaluations))
	m.finalConflicts.WithLabelValues(res.Strategy).Observe(float64(res.Conflicts))
	m.runIterations.WithLabelValues(res.Strategy).Observe(float64(res.Iterations))
}

// WriteText gathers g and writes every family in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("WriteText: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("WriteText: %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
