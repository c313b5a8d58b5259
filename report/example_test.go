package report_test

import (
	"fmt"

	"github.com/katalvlaran/hillcolor/coloring"
	"github.com/katalvlaran/hillcolor/report"
)

func ExampleFormatColoring() {
	fmt.Println(report.FormatColoring(coloring.Coloring{2, 0, 1}))
	// Output:
	// {0:2 1:0 2:1}
}
