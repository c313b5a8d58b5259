// Package cli parses the hillcolor command line into an experiment.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/hillcolor/config"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	Experiment config.Experiment

	// Metrics dumps the Prometheus registry in text format after the run.
	Metrics bool
}

// Parse processes command-line arguments. It returns the options, a boolean
// telling the caller to exit cleanly (help was printed), or an ExitError.
//
// Precedence: defaults, then the -config file, then explicitly set flags.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	def := config.Default()
	fs := flag.NewFlagSet("hillcolor", flag.ContinueOnError)
	fs.SetOutput(output)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "true")

	fs.Usage = func() {
		fmt.Fprint(output, `
hillcolor - hill-climbing graph colouring.

Usage:
  hillcolor [options]

Generates a random graph (or reads an edge expression), colours it with the
selected local-search variant and reports conflicts before and after.

Options:
`)
		fs.PrintDefaults()
	}

	var (
		vertices   = fs.Int("vertices", def.Vertices, "Number of vertices of the generated graph.")
		maxEdges   = fs.Int("max-edges", def.MaxEdgesPerVertex, "Maximum edge draws per vertex; 1 generates a path.")
		colors     = fs.Int("colors", def.Colors, "Colour budget.")
		variant    = fs.String("variant", def.Variant, "Search variant: steepest, first-choice or greedy.")
		iterations = fs.Int("iterations", def.MaxIterations, "Iteration budget; 0 uses the variant default.")
		seed       = fs.Int64("seed", def.ColoringSeed, "Seed for the initial colouring.")
		graphSeed  = fs.Int64("graph-seed", def.GraphSeed, "Seed for edge generation.")
		edges      = fs.String("edges", def.Edges, `Explicit edge expression, e.g. "0-1-2-3-0, 4-5".`)
		visualize  = fs.Bool("visualize", def.Visualize, "Print the coloured graph in Graphviz DOT format.")
		compare    = fs.Bool("compare", def.Compare, "Run every variant and print a trajectory comparison.")
		configPath = fs.String("config", "", "HCL experiment file; explicit flags override it.")
		metrics    = fs.Bool("metrics", false, "Print Prometheus metrics after the run.")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	exp := def
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		exp = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vertices":
			exp.Vertices = *vertices
		case "max-edges":
			exp.MaxEdgesPerVertex = *maxEdges
		case "colors":
			exp.Colors = *colors
		case "variant":
			exp.Variant = *variant
		case "iterations":
			exp.MaxIterations = *iterations
		case "seed":
			exp.ColoringSeed = *seed
		case "graph-seed":
			exp.GraphSeed = *graphSeed
		case "edges":
			exp.Edges = *edges
		case "visualize":
			exp.Visualize = *visualize
		case "compare":
			exp.Compare = *compare
		}
	})

	if err := exp.Validate(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return &Options{Experiment: exp, Metrics: *metrics}, false, nil
}
