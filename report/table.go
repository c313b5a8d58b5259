// SPDX-License-Identifier: MIT
// Package: hillcolor/report
//
// table.go - side-by-side trajectory table, the textual stand-in for a
// conflicts-per-iteration plot.
//
// Layout: one header row, then one row per iteration up to the longest
// trajectory. A variant that stopped earlier shows "-" afterwards.

package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillcolor/coloring"
)

const (
	iterHeader  = "iter"
	missingCell = "-"
	minColWidth = 6
)

// ComparisonTable renders the trajectories of results, columns ordered by
// variant name. Results without a trajectory get an empty column.
func ComparisonTable(results map[string]coloring.Result) string {
	names := sortedNames(results)
	rows := 0
	widths := make([]int, len(names))
	for i, name := range names {
		if l := len(results[name].Trajectory); l > rows {
			rows = l
		}
		widths[i] = len(name)
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
	}
	iterWidth := len(fmt.Sprint(rows))
	if iterWidth < len(iterHeader) {
		iterWidth = len(iterHeader)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", iterWidth, iterHeader)
	for i, name := range names {
		fmt.Fprintf(&b, "  %*s", widths[i], name)
	}
	b.WriteByte('\n')

	for r := 0; r < rows; r++ {
		fmt.Fprintf(&b, "%*d", iterWidth, r+1)
		for i, name := range names {
			cell := missingCell
			if tr := results[name].Trajectory; r < len(tr) {
				cell = fmt.Sprint(tr[r])
			}
			fmt.Fprintf(&b, "  %*s", widths[i], cell)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
