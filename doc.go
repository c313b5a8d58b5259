// Package hillcolor is a local-search graph colouring engine: it generates
// small random graphs and searches for colourings with as few conflicting
// edges as possible under a fixed colour budget.
//
// Layout:
//
//	core/        - Graph: undirected simple graph over vertices 0..N-1
//	builder/     - graph constructors: bounded-degree random generator,
//	               fixed topologies, "0-1-2, 3-4" edge expressions
//	coloring/    - Problem, Session (evaluate/commit), Strategy variants
//	               (steepest, first-choice, greedy) and the Solve loop
//	report/      - text sink, trajectory comparison, DOT, Prometheus observer
//	config/      - experiment parameters and HCL experiment files
//	experiment/  - generator → engine → sink pipeline
//	internal/cli  - flag parsing for the command-line front end
//	cmd/hillcolor - command-line front end
//
// Quick start:
//
//	g, _ := builder.FromExpr("0-1-2-3-0")
//	p, _ := coloring.NewProblem(g, 2)
//	res, _ := coloring.Solve(p, coloring.Greedy{}, coloring.WithTrajectory())
//	fmt.Println(res.Status, res.Conflicts, res.Trajectory)
//
// Determinism: every random draw comes from one caller-owned *rand.Rand that
// is reseeded explicitly before generation and before the initial colouring.
// Same seeds and call order reproduce a run exactly.
package hillcolor
