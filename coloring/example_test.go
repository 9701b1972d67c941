package coloring_test

import (
	"fmt"

	"github.com/kleurgraaf/kleur/coloring"
	"github.com/kleurgraaf/kleur/graph"
)

// ExampleSolve demonstrates 2-coloring a 4-cycle with the backtracking engine.
func ExampleSolve() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	opts := coloring.DefaultOptions()
	opts.Colors = 2

	res, _ := coloring.Solve(g, opts)
	fmt.Println(res.Found, res.Assignment)
	// Output: true [0 1 0 1]
}

// ExampleSolveBeam seeds the beam engine with an already-valid coloring:
// the seed passes the zero-score check before any expansion.
func ExampleSolveBeam() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	opts := coloring.DefaultOptions()
	opts.Algorithm = coloring.BeamSearch
	opts.Colors = 2
	opts.InitialAssignment = []int{1, 0, 1, 0}

	res, _ := coloring.SolveBeam(g, opts)
	fmt.Println(res.Found, res.Assignment, res.Steps)
	// Output: true [1 0 1 0] 1
}

// ExampleScore compares both heuristics on one conflicting assignment.
func ExampleScore() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)

	dgr, _ := coloring.Score(g, []int{0, 0, 0}, coloring.DGR)
	my, _ := coloring.Score(g, []int{0, 0, 0}, coloring.MY)
	fmt.Println(dgr, my)
	// Output: 12 4.5
}
