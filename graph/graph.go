package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount indicates a non-positive vertex count was requested.
	ErrBadVertexCount = errors.New("graph: vertex count must be positive")
	// ErrVertexOutOfRange indicates an endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")
	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
	// ErrDuplicateEdge indicates the edge is already present.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
)

// Edge is an unordered vertex pair reported with U < V.
type Edge struct {
	U, V int
}

// Graph is an undirected, self-loop-free graph over vertices 0..n-1,
// stored as adjacency lists. Built once, then read-only for the duration
// of any search that consumes it.
type Graph struct {
	adj   [][]int
	edges int
}

// New returns an edgeless graph over n vertices.
// Returns ErrBadVertexCount when n < 1.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("graph.New: n=%d: %w", n, ErrBadVertexCount)
	}

	return &Graph{adj: make([][]int, n)}, nil
}

// AddEdge inserts the undirected edge u–v.
// Sentinels: ErrVertexOutOfRange, ErrSelfLoop, ErrDuplicateEdge.
//
// Complexity: O(deg(u)) for the duplicate check; O(1) amortized insert.
func (g *Graph) AddEdge(u, v int) error {
	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("graph.AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("graph.AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	for _, w := range g.adj[u] {
		if w == v {
			return fmt.Errorf("graph.AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
		}
	}

	// Undirected invariant: u appears in adj[v] iff v appears in adj[u].
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return nil
}

// VertexCount reports n.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount reports the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree reports the number of neighbors of v; 0 for out-of-range ids.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the adjacency list of v as a live view.
// Callers MUST NOT mutate the returned slice. Out-of-range ids yield nil.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= len(g.adj) {
		return nil
	}

	return g.adj[v]
}

// HasEdge reports whether u–v is present.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Edges returns every undirected edge exactly once, as pairs with U < V,
// in ascending (U, then insertion) order. Intended for exporters and
// harness-side iteration; the engines read adjacency directly.
//
// Complexity: O(V + E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	var u, v int
	for u = 0; u < len(g.adj); u++ {
		for _, v = range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Clone returns a deep copy. Independent copies are required when trials
// are parallelized externally: no Graph is safe to share across concurrent
// searches.
func (g *Graph) Clone() *Graph {
	cp := &Graph{adj: make([][]int, len(g.adj)), edges: g.edges}
	for v, row := range g.adj {
		cp.adj[v] = append([]int(nil), row...)
	}

	return cp
}
