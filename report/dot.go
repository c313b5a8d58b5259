// SPDX-License-Identifier: MIT
// Package: hillcolor/report
//
// dot.go - Graphviz DOT rendering of a coloured graph.
//
// Vertices are filled from a fixed palette indexed by colour (wrapping for
// k > len(palette)); monochromatic edges are drawn red and bold.

package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hillcolor/coloring"
	"github.com/katalvlaran/hillcolor/core"
)

var palette = []string{
	"lightblue", "palegreen", "gold", "plum", "lightsalmon",
	"lightgray", "khaki", "aquamarine", "pink", "wheat",
}

// WriteDOT writes g coloured by c as an undirected DOT graph.
// c must be a total colouring of g.
func WriteDOT(w io.Writer, g *core.Graph, c coloring.Coloring) error {
	if g == nil {
		return fmt.Errorf("WriteDOT: %w", coloring.ErrNilGraph)
	}
	if len(c) != g.VertexCount() {
		return fmt.Errorf("WriteDOT: len=%d, want %d: %w", len(c), g.VertexCount(), coloring.ErrInvalidColoring)
	}

	if _, err := fmt.Fprintln(w, "graph coloring {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  node [style=filled];")
	for _, v := range g.Vertices() {
		fmt.Fprintf(w, "  %d [label=\"%d:%d\", fillcolor=%s];\n", v, v, c[v], paletteColor(c[v]))
	}
	for _, e := range g.Edges() {
		if c[e.U] == c[e.V] {
			fmt.Fprintf(w, "  %d -- %d [color=red, penwidth=2];\n", e.U, e.V)
			continue
		}
		fmt.Fprintf(w, "  %d -- %d;\n", e.U, e.V)
	}
	_, err := fmt.Fprintln(w, "}")

	return err
}

func paletteColor(col int) string {
	if col < 0 {
		col = -col
	}

	return palette[col%len(palette)]
}
