// Package coloring implements hill-climbing search for proper vertex
// colourings of a core.Graph under a fixed colour budget.
//
// The package is organised around a two-phase evaluate/commit protocol:
//
//   - Problem: read-only snapshot of a graph plus the colour budget k.
//     Computes conflict counts (monochromatic edges) and the conflicted-vertex
//     multiset in which a vertex appears once per violated incident edge.
//   - Session: owns the authoritative Coloring of one search. TryMove
//     evaluates "recolour v to c" without mutating it; Commit applies a
//     previously evaluated Candidate.
//   - Strategy: picks at most one Candidate per iteration. Three variants
//     share a single loop:
//     – Steepest:    one sampled vertex, every alternate colour, best wins.
//     – FirstChoice: one sampled vertex, colours in random order, first
//     strict improvement wins.
//     – Greedy:      every multiset entry, every alternate, single best pair.
//   - Solve: runs a Strategy until the colouring is proper, the iteration
//     budget is spent, or a plateau-stopping Strategy finds no improving move.
//
// Randomness:
//
//	The caller owns one *rand.Rand. InitialColoring reseeds it explicitly;
//	every later draw (vertex sampling, colour shuffles) consumes the same
//	stream in a fixed order. Replaying generation, initial colouring and
//	search with the same handle and seeds reproduces a run exactly.
//
// Reaching zero conflicts is not guaranteed. Budget exhaustion and plateaus
// are ordinary outcomes reported through Result.Status, never errors.
//
// Complexity:
//
//	Each candidate evaluation is one full O(E) conflict count. Per iteration:
//	Steepest O(k·E), FirstChoice O(k·E) worst case, Greedy O(M·k·E) where M
//	is the multiset size (≤ 2E).
package coloring
