// Package coloring implements constraint-satisfaction graph coloring via two
// independent search strategies, compared under two conflict-cost heuristics.
//
// Engines:
//
//   - Backtracking — exhaustive depth-first search over partial colorings
//     with heuristic-driven dynamic vertex ordering. Partial validity is
//     enforced eagerly: at every point, assigned endpoints of an edge differ.
//
//   - BeamSearch — population-based local search over complete colorings.
//     A bounded frontier of beamWidth candidates expands into one-flip
//     neighbors, ranks them by heuristic score, and retains the best unseen
//     ones. States may be invalid during the search; a score of exactly 0 is
//     the sole solution predicate.
//
// Heuristics (lower is better, 0 signals a valid coloring):
//
//   - DGR — for every monochrome edge (u,v), add deg(u)+deg(v). Conflicts on
//     high-degree vertices are costlier to repair, so they weigh more.
//
//   - MY — count conflicting edges; a vertex in conflict on c>1 separate
//     edges adds a 0.5·(c−1) penalty, discouraging pile-ups on one vertex.
//
// Both engines share a resource governor enforcing wall-clock and memory
// ceilings at bounded intervals; a tripped governor is sticky and yields a
// result explicitly marked Stopped, never confused with exhaustion.
//
// Contracts:
//   - Deterministic: seedable RNG only (seed 0 maps to a fixed stream);
//     stable sorts and index-order tie-breaks everywhere.
//   - Silent: engines never log; all failure information is returned in the
//     SearchResult or as a sentinel error.
//   - Single-threaded: an engine invocation owns its assignment exclusively;
//     nothing is safe to share across concurrent searches without copying.
//
// Complexity:
//
//	– Heuristic evaluation:     O(E)
//	– Backtracking:             exponential worst case; O(V²) vertex selection per call
//	– BeamSearch per iteration: O(beams · V · (colors−1)) evaluations, each O(E)
package coloring
