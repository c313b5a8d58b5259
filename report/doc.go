// Package report turns search results into human-readable output and
// metrics.
//
//   - Sink: the reporting contract the experiment runner writes to
//     (initial conflicts, final result, variant comparison).
//   - TextSink: plain-text Sink over an io.Writer.
//   - ComparisonTable: per-iteration trajectories side by side.
//   - WriteDOT: Graphviz rendering of a coloured graph.
//   - Metrics: Prometheus-backed coloring.Observer.
//   - Multi: fans one set of observer callbacks out to several observers.
//
// Nothing here influences a search; sinks and observers only read.
package report
