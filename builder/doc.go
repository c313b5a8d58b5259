// Package builder produces the graphs the colouring engine runs on, using
// "functional-options"-style building blocks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, opts, cons...): allocate vertices 0..n-1, apply constructors.
//     – Apply(g, opts, cons...):      run constructors against an existing graph.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithRand:       hand in the caller-owned random source.
//     – WithSeed:       private seeded source for one-off builds.
//   - Random generation:
//     – GenerateEdges:  the bounded-degree random edge generator
//     (path mode when maxEdgesPerVertex == 1).
//     – RandomDegree:   Constructor wrapper around GenerateEdges.
//   - Fixed topologies: Path, Cycle, Complete, Star, Wheel, Grid.
//   - Explicit graphs:  Expr / ParseExpr / FromExpr over the "0-1-2, 3-4" syntax.
//
// Guarantees:
//
//   - Every produced edge is canonical (U<V), loop-free and unique.
//   - Determinism: same inputs, seed and constructor order ⇒ identical edge lists.
//   - Structured runtime errors: sentinels wrapped with a method prefix via %w.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//
// See individual function documentation for contracts and complexity.
package builder
