// Package coloring - conflict-cost heuristics.
//
// Both heuristics are pure: identical (graph, assignment) inputs always yield
// identical values. Lower is better; exactly 0 signals a valid coloring.
// Each evaluation is O(E).
package coloring

import (
	"fmt"

	"github.com/kleurgraaf/kleur/graph"
)

// myMultiplicityPenalty is the per-extra-conflict surcharge of the MY
// heuristic: a vertex conflicting on c>1 separate edges adds 0.5·(c−1).
const myMultiplicityPenalty = 0.5

// scoreFunc evaluates one complete assignment. Engines resolve the Heuristic
// tag into a scoreFunc once at setup so hot loops never branch on the tag.
// A scoreFunc may own scratch buffers and is NOT safe for concurrent use.
type scoreFunc func(colors []int) float64

// scorerFor resolves h against g. The MY scorer reuses one multiplicity
// buffer across evaluations to keep the O(beams·V·colors) expansion loop
// allocation-free.
func scorerFor(g *graph.Graph, h Heuristic) (scoreFunc, error) {
	switch h {
	case DGR:
		return func(colors []int) float64 { return scoreDGR(g, colors) }, nil
	case MY:
		mult := make([]int, g.VertexCount())

		return func(colors []int) float64 { return scoreMY(g, colors, mult) }, nil
	default:
		return nil, fmt.Errorf("scorerFor(%d): %w", uint8(h), ErrUnknownHeuristic)
	}
}

// scoreDGR sums deg(u)+deg(v) over every monochrome edge (u,v) with u<v.
func scoreDGR(g *graph.Graph, colors []int) float64 {
	var (
		score float64
		u, v  int
	)
	for u = 0; u < g.VertexCount(); u++ {
		for _, v = range g.Neighbors(u) {
			if u < v && colors[u] == colors[v] {
				score += float64(g.Degree(u) + g.Degree(v))
			}
		}
	}

	return score
}

// scoreMY counts conflicting edges, then adds 0.5·(c−1) for every vertex in
// conflict on c>1 separate edges. mult must hold VertexCount ints; it is
// zeroed and reused on every call.
func scoreMY(g *graph.Graph, colors []int, mult []int) float64 {
	var (
		conflicts int
		u, v      int
	)
	for u = range mult {
		mult[u] = 0
	}
	for u = 0; u < g.VertexCount(); u++ {
		for _, v = range g.Neighbors(u) {
			if u < v && colors[u] == colors[v] {
				conflicts++
				mult[u]++
				mult[v]++
			}
		}
	}

	score := float64(conflicts)
	for u = range mult {
		if mult[u] > 1 {
			score += myMultiplicityPenalty * float64(mult[u]-1)
		}
	}

	return score
}

// Score evaluates a complete assignment under h. Intended for the harness,
// exporters and tests; the engines use the resolved scoreFunc directly.
//
// Sentinels: ErrNilGraph, ErrBadAssignment (length mismatch or negative
// color), ErrUnknownHeuristic.
//
// Complexity: O(E) time, O(V) space for the MY multiplicity pass.
func Score(g *graph.Graph, assignment []int, h Heuristic) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(assignment) != g.VertexCount() {
		return 0, fmt.Errorf("Score: len=%d want=%d: %w",
			len(assignment), g.VertexCount(), ErrBadAssignment)
	}
	for v, c := range assignment {
		if c < 0 {
			return 0, fmt.Errorf("Score: vertex %d has color %d: %w", v, c, ErrBadAssignment)
		}
	}

	fn, err := scorerFor(g, h)
	if err != nil {
		return 0, err
	}

	return fn(assignment), nil
}
