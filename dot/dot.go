// Package dot renders a graph, optionally with a coloring, as a Graphviz
// DOT description. Output is deterministic: nodes in ascending id order,
// edges once each as u -- v with u<v, in the graph's canonical edge order.
package dot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kleurgraaf/kleur/graph"
)

// Sentinel errors for exporter validation.
var (
	// ErrNilGraph indicates a nil *graph.Graph.
	ErrNilGraph = errors.New("dot: graph is nil")
	// ErrBadAssignment indicates an assignment whose length does not match
	// the graph's vertex count, or one carrying a negative color.
	ErrBadAssignment = errors.New("dot: invalid assignment")
)

// palette holds the fill colors cycled by assigned color index. Colorings
// with more colors than palette entries wrap around.
var palette = []string{
	"lightblue", "lightcoral", "palegreen", "gold",
	"plum", "lightsalmon", "lightseagreen", "khaki",
}

// Write emits the DOT description of g to w. A non-nil assignment must hold
// one color per vertex; each node is then filled with a palette color keyed
// by its assigned value. A nil assignment yields plain nodes.
//
// Complexity: O(V + E).
func Write(w io.Writer, g *graph.Graph, assignment []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if assignment != nil {
		if len(assignment) != g.VertexCount() {
			return fmt.Errorf("dot.Write: len=%d want=%d: %w",
				len(assignment), g.VertexCount(), ErrBadAssignment)
		}
		for v, c := range assignment {
			if c < 0 {
				return fmt.Errorf("dot.Write: vertex %d has color %d: %w", v, c, ErrBadAssignment)
			}
		}
	}

	if _, err := fmt.Fprintln(w, "graph coloring {"); err != nil {
		return err
	}

	for v := 0; v < g.VertexCount(); v++ {
		var err error
		if assignment != nil {
			fill := palette[assignment[v]%len(palette)]
			_, err = fmt.Fprintf(w, "  %d [style=filled, fillcolor=%s, label=\"%d (c%d)\"];\n",
				v, fill, v, assignment[v])
		} else {
			_, err = fmt.Fprintf(w, "  %d;\n", v)
		}
		if err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "  %d -- %d;\n", e.U, e.V); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")

	return err
}

// WriteFile renders g to path, creating or truncating the file.
func WriteFile(path string, g *graph.Graph, assignment []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot.WriteFile: %w", err)
	}
	defer f.Close()

	if err = Write(f, g, assignment); err != nil {
		return err
	}

	return f.Sync()
}
