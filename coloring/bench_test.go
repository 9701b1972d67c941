package coloring_test

import (
	"testing"

	"github.com/kleurgraaf/kleur/coloring"
	"github.com/kleurgraaf/kleur/graph"
)

// benchGraph builds a deterministic circulant graph: each vertex v connects
// to v+1 and v+2 (mod n). Chromatic number 3 for n divisible by 3.
func benchGraph(b *testing.B, n int) *graph.Graph {
	b.Helper()
	g, err := graph.New(n)
	if err != nil {
		b.Fatalf("graph.New: %v", err)
	}
	for v := 0; v < n; v++ {
		if err = g.AddEdge(v, (v+1)%n); err != nil {
			b.Fatalf("AddEdge: %v", err)
		}
		if err = g.AddEdge(v, (v+2)%n); err != nil {
			b.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

func benchOptions(a coloring.Algorithm, h coloring.Heuristic) coloring.Options {
	opts := coloring.DefaultOptions()
	opts.Algorithm = a
	opts.Colors = 3
	opts.Heuristic = h
	opts.TimeLimit = -1 // no deadline: benchmark the raw engines
	opts.MemLimit = -1
	opts.Seed = 7

	return opts
}

func BenchmarkBacktracking_DGR_Circulant30(b *testing.B) {
	g := benchGraph(b, 30)
	opts := benchOptions(coloring.Backtracking, coloring.DGR)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.Solve(g, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkBacktracking_MY_Circulant30(b *testing.B) {
	g := benchGraph(b, 30)
	opts := benchOptions(coloring.Backtracking, coloring.MY)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.Solve(g, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkBeam_DGR_Circulant18(b *testing.B) {
	g := benchGraph(b, 18)
	opts := benchOptions(coloring.BeamSearch, coloring.DGR)
	opts.MaxIterations = 200

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.Solve(g, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkScore_DGR(b *testing.B) {
	g := benchGraph(b, 120)
	asg := make([]int, g.VertexCount())
	for v := range asg {
		asg[v] = v % 3
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.Score(g, asg, coloring.DGR); err != nil {
			b.Fatalf("Score: %v", err)
		}
	}
}

func BenchmarkScore_MY(b *testing.B) {
	g := benchGraph(b, 120)
	asg := make([]int, g.VertexCount())
	for v := range asg {
		asg[v] = v % 2 // plenty of conflicts to exercise the multiplicity pass
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coloring.Score(g, asg, coloring.MY); err != nil {
			b.Fatalf("Score: %v", err)
		}
	}
}
