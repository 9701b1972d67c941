// Package coloring_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal and
// stdlib-only.
package coloring_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/kleurgraaf/kleur/coloring"
	"github.com/kleurgraaf/kleur/graph"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used across randomized tests.
	seedDet = int64(42)

	// timeGenerous is a ceiling that no small instance should ever hit.
	timeGenerous = 10 * time.Second
)

// -----------------------------------------------------------------------------
// Graph fixtures
// -----------------------------------------------------------------------------

// mustGraph builds a graph over n vertices with the given edges; any
// construction failure aborts the test.
func mustGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	if err != nil {
		t.Fatalf("graph.New(%d): %v", n, err)
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// mkTriangle returns K3: 0-1, 1-2, 0-2. Chromatic number 3.
func mkTriangle(t *testing.T) *graph.Graph {
	t.Helper()

	return mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
}

// mkCycle returns the n-cycle 0-1-…-(n−1)-0. Chromatic number 2 (even n) or 3.
func mkCycle(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for v := 0; v < n; v++ {
		edges = append(edges, [2]int{v, (v + 1) % n})
	}

	return mustGraph(t, n, edges)
}

// mkComplete returns K_n: every unordered pair is an edge. Chromatic number n.
func mkComplete(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return mustGraph(t, n, edges)
}

// mkPetersen returns the Petersen graph (10 vertices, 15 edges, chromatic
// number 3): outer 5-cycle 0..4, inner pentagram 5..9, spokes v–v+5.
func mkPetersen(t *testing.T) *graph.Graph {
	t.Helper()
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}

	return mustGraph(t, 10, edges)
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustProperColoring asserts a complete assignment where every edge's
// endpoints differ and every color lies in 0..colors-1.
func mustProperColoring(t *testing.T, g *graph.Graph, asg []int, colors int) {
	t.Helper()
	if len(asg) != g.VertexCount() {
		t.Fatalf("assignment length %d, want %d", len(asg), g.VertexCount())
	}
	for v, c := range asg {
		if c < 0 || c >= colors {
			t.Fatalf("vertex %d has color %d outside 0..%d", v, c, colors-1)
		}
	}
	for _, e := range g.Edges() {
		if asg[e.U] == asg[e.V] {
			t.Fatalf("edge %d-%d is monochrome (color %d)", e.U, e.V, asg[e.U])
		}
	}
}

// mustSolve runs coloring.Solve and aborts the test on a configuration error;
// ordinary search failure (Found=false) is returned for the caller to assert.
func mustSolve(t *testing.T, g *graph.Graph, opts coloring.Options) coloring.SearchResult {
	t.Helper()
	res, err := coloring.Solve(g, opts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	return res
}

// Repeat runs fn count times as subtests, for determinism checks.
func Repeat(t *testing.T, count int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < count; i++ {
		t.Run(fmt.Sprintf("repeat-%d", i), fn)
	}
}
