// Command hillcolor generates a graph and colours it by hill climbing.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hillcolor/builder"
	"github.com/katalvlaran/hillcolor/coloring"
	"github.com/katalvlaran/hillcolor/config"
	"github.com/katalvlaran/hillcolor/experiment"
	"github.com/katalvlaran/hillcolor/internal/cli"
	"github.com/katalvlaran/hillcolor/report"
)

func main() {
	err := run(os.Stdout, os.Args[1:])
	klog.Flush()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run parses args, runs the experiment and writes every report to outW.
func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	var (
		reg *prometheus.Registry
		obs coloring.Observer
	)
	if opts.Metrics {
		reg = prometheus.NewRegistry()
		obs = report.NewMetrics(reg)
	}

	exp := opts.Experiment
	sink := report.NewTextSink(outW)
	out, err := experiment.Run(exp, sink, obs)
	if err != nil {
		if errors.Is(err, config.ErrInvalidParameter) ||
			errors.Is(err, builder.ErrBadExpr) || errors.Is(err, builder.ErrInvalidParameter) {
			return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
		}
		return err
	}

	if exp.Visualize {
		for _, name := range out.Variants {
			fmt.Fprintf(outW, "// %s\n", name)
			if err = report.WriteDOT(outW, out.Graph, out.Results[name].Coloring); err != nil {
				return err
			}
		}
	}
	if reg != nil {
		if err = report.WriteText(outW, reg); err != nil {
			return err
		}
	}

	return nil
}
