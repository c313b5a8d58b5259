package builder_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hillcolor/builder"
)

// ExampleGenerateEdges shows path mode, which consumes no randomness.
func ExampleGenerateEdges() {
	r := rand.New(rand.NewSource(1))
	edges, _ := builder.GenerateEdges(r, 4, 1, 42)
	fmt.Println(edges)
	// Output:
	// [{0 1} {1 2} {2 3}]
}

// ExampleFromExpr builds a triangle with a pendant vertex.
func ExampleFromExpr() {
	g, _ := builder.FromExpr("0-1-2-0, 2-3")
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.Edges())
	// Output:
	// 4 4
	// [{0 1} {1 2} {0 2} {2 3}]
}
