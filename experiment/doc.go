// Package experiment repeats a search configuration over N independently
// generated random graphs and averages the per-run metrics.
//
// Responsibility split: the coloring engines return all failure information
// in their SearchResult and never log; this harness owns aggregation and is
// the one place where forced stops are logged (as zerolog warnings).
//
// Every trial receives its own graph and its own derived RNG stream, so a
// fixed Config.Seed reproduces the whole experiment bit-for-bit, and trials
// share no mutable state.
package experiment
