// Package experiment wires the pieces together: it builds the graph an
// Experiment describes, runs the selected variants on it and hands the
// results to a report.Sink.
//
// One *rand.Rand carries the whole experiment. Graph generation reseeds it
// with GraphSeed; every variant reseeds it with ColoringSeed before its
// initial colouring, so in comparison mode all variants start from the same
// colouring of the same graph.
package experiment

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/hillcolor/builder"
	"github.com/katalvlaran/hillcolor/coloring"
	"github.com/katalvlaran/hillcolor/config"
	"github.com/katalvlaran/hillcolor/core"
	"github.com/katalvlaran/hillcolor/report"
)

// Outcome is everything an experiment produced.
type Outcome struct {
	// ID correlates the log lines of one experiment.
	ID uuid.UUID

	Graph   *core.Graph
	Problem *coloring.Problem

	// Variants lists the strategy names in run order.
	Variants []string

	// Results maps strategy name to its result.
	Results map[string]coloring.Result
}

// Run executes exp. sink and obs may be nil.
func Run(exp config.Experiment, sink report.Sink, obs coloring.Observer) (Outcome, error) {
	if err := exp.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("experiment: %w", err)
	}
	variants, err := exp.Variants()
	if err != nil {
		return Outcome{}, fmt.Errorf("experiment: %w", err)
	}
	if sink == nil {
		sink = nopSink{}
	}

	out := Outcome{
		ID:       uuid.New(),
		Variants: make([]string, 0, len(variants)),
		Results:  make(map[string]coloring.Result, len(variants)),
	}
	r := rand.New(rand.NewSource(exp.GraphSeed))

	if out.Graph, err = BuildGraph(exp, r); err != nil {
		return Outcome{}, fmt.Errorf("experiment %s: %w", out.ID, err)
	}
	stats := out.Graph.Stats()
	klog.Infof("experiment %s: graph vertices=%d edges=%d components=%d max_degree=%d isolated=%d",
		out.ID, stats.VertexCount, stats.EdgeCount, stats.Components, stats.MaxDegree, stats.IsolatedCount)

	if out.Problem, err = coloring.NewProblem(out.Graph, exp.Colors); err != nil {
		return Outcome{}, fmt.Errorf("experiment %s: %w", out.ID, err)
	}

	for _, v := range variants {
		runID := uuid.New()
		opts := []coloring.Option{
			coloring.WithRand(r),
			coloring.WithSeed(exp.ColoringSeed),
			coloring.WithObserver(report.Multi(initialReporter{sink: sink}, obs)),
		}
		if exp.MaxIterations > 0 {
			opts = append(opts, coloring.WithMaxIterations(exp.MaxIterations))
		}
		if exp.Compare {
			opts = append(opts, coloring.WithTrajectory())
		}

		klog.V(1).Infof("experiment %s: run %s: variant=%s colors=%d seed=%d",
			out.ID, runID, v, exp.Colors, exp.ColoringSeed)
		res, err := coloring.SolveVariant(out.Problem, v, opts...)
		if err != nil {
			return Outcome{}, fmt.Errorf("experiment %s: %s: %w", out.ID, v, err)
		}
		klog.Infof("experiment %s: run %s: variant=%s status=%s conflicts=%d→%d iterations=%d moves=%d",
			out.ID, runID, v, res.Status, res.InitialConflicts, res.Conflicts, res.Iterations, res.Moves)

		sink.Final(res.Strategy, res)
		out.Variants = append(out.Variants, res.Strategy)
		out.Results[res.Strategy] = res
	}

	if exp.Compare {
		sink.Compare(out.Results)
	}

	return out, nil
}

// BuildGraph builds the graph exp describes using r: the edge expression
// when set, otherwise the bounded-degree generator seeded with GraphSeed.
func BuildGraph(exp config.Experiment, r *rand.Rand) (*core.Graph, error) {
	if exp.Edges != "" {
		return builder.FromExpr(exp.Edges)
	}

	return builder.BuildGraph(exp.Vertices,
		[]builder.BuilderOption{builder.WithRand(r)},
		builder.RandomDegree(exp.MaxEdgesPerVertex, exp.GraphSeed),
	)
}

// initialReporter forwards the initial conflict count to a Sink.
type initialReporter struct {
	sink report.Sink
}

func (i initialReporter) OnStart(strategy string, _ coloring.Coloring, conflicts int) {
	i.sink.Initial(strategy, conflicts)
}

func (initialReporter) OnIteration(string, int, coloring.Coloring, int) {}

func (initialReporter) OnFinish(coloring.Result) {}

func (initialReporter) SkipsSnapshots() bool { return true }

type nopSink struct{}

func (nopSink) Initial(string, int) {}
func (nopSink) Final(string, coloring.Result) {}
func (nopSink) Compare(map[string]coloring.Result) {}
