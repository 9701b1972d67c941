// Package graph provides the shared adjacency-list model consumed by the
// coloring engines, the generators, and the DOT exporter.
//
// A Graph is undirected and self-loop-free: AddEdge(u, v) registers u in
// adj[v] and v in adj[u], and rejects loops and duplicates with sentinel
// errors. Vertices are dense integer ids 0..n-1, fixed at construction.
//
// Ownership contract:
//   - A Graph is mutable only between New and the first search; the coloring
//     engines treat it as read-only for the whole invocation.
//   - Nothing in a Graph is safe to share across concurrent searches without
//     copying; use Clone to hand independent instances to parallel trials.
//
// Complexity:
//
//	– AddEdge:   O(deg) duplicate check, O(1) amortized insert
//	– Neighbors: O(1) (live view, callers must not mutate)
//	– Edges:     O(V + E), deterministic u<v order
package graph
