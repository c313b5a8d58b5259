// SPDX-License-Identifier: MIT
// Package: hillcolor/report
//
// sink.go - the Sink contract and its plain-text implementation.

package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/hillcolor/coloring"
)

// Sink receives the observable outputs of an experiment.
type Sink interface {
	// Initial is called once per variant before its search starts.
	Initial(variant string, conflicts int)

	// Final is called once per variant with its terminal result.
	Final(variant string, res coloring.Result)

	// Compare is called once after all variants ran in comparison mode.
	Compare(results map[string]coloring.Result)
}

// StatusMessage returns the human-readable termination message for res.
func StatusMessage(res coloring.Result) string {
	switch res.Status {
	case coloring.StatusSolved:
		return fmt.Sprintf("solution found in %d iterations", res.Iterations)
	case coloring.StatusPlateau:
		return fmt.Sprintf("no improving move found, stopped after %d iterations with %d conflicts",
			res.Iterations, res.Conflicts)
	case coloring.StatusBudgetExhausted:
		return fmt.Sprintf("iteration limit of %d reached without a proper coloring", res.Iterations)
	default:
		return res.Status.String()
	}
}

// TextSink writes one line per event to W.
type TextSink struct {
	W io.Writer

	// ShowColoring adds the vertex→colour assignment to Final output.
	ShowColoring bool

	// Table adds the trajectory ComparisonTable to Compare output.
	Table bool
}

// NewTextSink returns a TextSink that prints assignments and tables.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{W: w, ShowColoring: true, Table: true}
}

// Initial implements Sink.
func (s *TextSink) Initial(variant string, conflicts int) {
	fmt.Fprintf(s.W, "[%s] initial conflicts: %d\n", variant, conflicts)
}

// Final implements Sink.
func (s *TextSink) Final(variant string, res coloring.Result) {
	fmt.Fprintf(s.W, "[%s] %s\n", variant, StatusMessage(res))
	fmt.Fprintf(s.W, "[%s] final conflicts: %d\n", variant, res.Conflicts)
	if s.ShowColoring {
		fmt.Fprintf(s.W, "[%s] coloring: %s\n", variant, FormatColoring(res.Coloring))
	}
}

// Compare implements Sink. Variants are listed by name.
func (s *TextSink) Compare(results map[string]coloring.Result) {
	names := sortedNames(results)
	fmt.Fprintln(s.W, "comparison:")
	for _, name := range names {
		res := results[name]
		fmt.Fprintf(s.W, "  %-14s status=%-16s conflicts=%-4d iterations=%-7d moves=%-6d evaluations=%d\n",
			name, res.Status, res.Conflicts, res.Iterations, res.Moves, res.Evaluations)
	}
	if s.Table {
		fmt.Fprint(s.W, ComparisonTable(results))
	}
}

// FormatColoring renders c as "{0:1 1:0 2:2}".
func FormatColoring(c coloring.Coloring) string {
	var b strings.Builder
	b.WriteByte('{')
	for v, col := range c {
		if v > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%d", v, col)
	}
	b.WriteByte('}')

	return b.String()
}

func sortedNames(results map[string]coloring.Result) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
