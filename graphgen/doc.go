// Package graphgen constructs graphs for trials and tests: deterministic
// topologies (Cycle, Path, Complete, Triangle) and an Erdős–Rényi-like
// RandomSparse generator.
//
// Determinism policy:
//   - Deterministic constructors emit vertices and edges in a stable,
//     documented order.
//   - RandomSparse performs one Bernoulli trial per unordered pair {i,j},
//     i<j, in ascending (i, j) order; for a fixed *rand.Rand state the
//     resulting graph is identical across runs. A nil rng falls back to a
//     fixed default stream.
//
// Constructors validate parameters early and return sentinel errors; they
// never panic at runtime.
package graphgen
