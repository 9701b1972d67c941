// Package coloring — backtracking engine (exhaustive DFS over partial colorings).
//
// SolveBacktracking enumerates partial colorings depth-first with dynamic,
// heuristic-driven vertex ordering and eager validity: an assignment is only
// ever extended with a color no already-assigned neighbor holds, so at every
// point every assigned edge endpoint pair differs.
//
// Rationale (succinct):
//  1. Vertex selection recomputes a per-vertex urgency score fresh on every
//     call (no incremental caching): under DGR the urgency is the static
//     vertex degree; under MY it is the number of already-assigned neighbors
//     sharing the vertex's own current color. Since the selected vertex is
//     itself unassigned, the MY urgency measures collisions against its
//     placeholder value — see the package design notes; this behavior is
//     load-bearing and kept as-is.
//  2. Ties break on the lowest vertex index, keeping runs fully deterministic.
//  3. Colors are tried in ascending order 0..colors−1. Every trial counts
//     toward Generated and is followed by a governor check. A vertex whose
//     colors are all invalid counts one DeadEnd and fails back to its caller,
//     which retries its next color (classic backtracking).
//  4. A governor trip propagates up through all recursion levels with no
//     further expansion and is reported as Stopped, distinct from exhaustion.
//
// Complexity:
//   - Worst case exponential in V (exhaustive search).
//   - Per call: O(V·maxdeg) selection + O(deg) validity per trial.
//   - Memory: O(V) state; recursion depth is at most V.

package coloring

import (
	"time"

	"github.com/kleurgraaf/kleur/graph"
)

// btEngine holds all mutable search state of one backtracking invocation.
// A dedicated engine struct (instead of package-level counters) keeps the
// recursion re-entrant and each invocation independently owned.
type btEngine struct {
	g          *graph.Graph
	n          int
	colorCount int
	heuristic  Heuristic

	// colors holds the working assignment; unassigned entries keep the
	// placeholder value 0 and are distinguished by the assigned bitmap.
	colors   []int
	assigned []bool

	gov *governor

	generated int64
	deadEnds  int64
	steps     int64
	maxDepth  int
}

// vertexScore is the urgency of an unassigned vertex v, recomputed fresh on
// every selection pass. DGR: static degree. MY: count of assigned neighbors
// whose color equals v's own current (placeholder) value.
func (e *btEngine) vertexScore(v int) int {
	if e.heuristic == DGR {
		return e.g.Degree(v)
	}

	score := 0
	for _, u := range e.g.Neighbors(v) {
		if e.assigned[u] && e.colors[u] == e.colors[v] {
			score++
		}
	}

	return score
}

// selectVertex picks the unassigned vertex maximizing vertexScore, ties
// broken by the lowest index. Returns −1 when every vertex is assigned.
func (e *btEngine) selectVertex() int {
	var (
		best      = -1
		bestScore = -1
		v, s      int
	)
	for v = 0; v < e.n; v++ {
		if e.assigned[v] {
			continue
		}
		if s = e.vertexScore(v); s > bestScore {
			best, bestScore = v, s
		}
	}

	return best
}

// validColor reports whether no already-assigned neighbor of v holds c.
func (e *btEngine) validColor(v, c int) bool {
	for _, u := range e.g.Neighbors(v) {
		if e.assigned[u] && e.colors[u] == c {
			return false
		}
	}

	return true
}

// dfs extends the partial coloring by one vertex. depth is the number of
// vertices assigned on entry. Returns true exactly when a complete valid
// assignment was reached; a governor trip returns false with gov.stopped
// set, and callers must stop expanding immediately.
func (e *btEngine) dfs(depth int) bool {
	e.steps++
	if depth > e.maxDepth {
		e.maxDepth = depth
	}

	v := e.selectVertex()
	if v < 0 {
		return true // no unassigned vertices remain
	}

	var c int
	for c = 0; c < e.colorCount; c++ {
		e.generated++
		if e.gov.check() {
			return false
		}
		if !e.validColor(v, c) {
			continue
		}

		e.colors[v] = c
		e.assigned[v] = true
		if e.dfs(depth + 1) {
			return true
		}
		e.assigned[v] = false
		e.colors[v] = 0 // restore the placeholder

		if e.gov.stopped {
			return false // propagate the forced stop, skip remaining colors
		}
	}

	e.deadEnds++

	return false
}

// SolveBacktracking runs the exhaustive DFS engine.
//
// Termination: success (all vertices assigned), exhaustion (the root call
// ran out of colors — no solution exists under Colors), or a governor trip
// (Stopped=true). Ordinary search failure is NOT an error: it is reported
// as Found=false in the result.
//
// Sentinels: ErrNilGraph, ErrBadColorCount, ErrUnknownHeuristic.
func SolveBacktracking(g *graph.Graph, opts Options) (SearchResult, error) {
	if g == nil {
		return SearchResult{}, ErrNilGraph
	}
	if opts.Colors < 1 {
		return SearchResult{}, ErrBadColorCount
	}
	if opts.Heuristic != DGR && opts.Heuristic != MY {
		return SearchResult{}, ErrUnknownHeuristic
	}

	n := g.VertexCount()
	e := btEngine{
		g:          g,
		n:          n,
		colorCount: opts.Colors,
		heuristic:  opts.Heuristic,
		colors:     make([]int, n),
		assigned:   make([]bool, n),
		gov:        newGovernor(opts.TimeLimit, opts.MemLimit),
	}

	started := time.Now()
	found := e.dfs(0)

	res := SearchResult{
		Found:     found,
		Generated: e.generated,
		DeadEnds:  e.deadEnds,
		Steps:     e.steps,
		MemPeak:   e.maxDepth,
		Elapsed:   time.Since(started),
		Stopped:   e.gov.stopped,
	}
	if found {
		res.Assignment = append([]int(nil), e.colors...)
	}

	return res, nil
}
