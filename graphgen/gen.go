package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kleurgraaf/kleur/graph"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("graphgen: vertex count too small")
	// ErrInvalidProbability indicates p lies outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("graphgen: probability out of range")
)

// defaultGenSeed is the fixed stream used when RandomSparse receives nil rng.
const defaultGenSeed int64 = 1

// Cycle builds the simple cycle C_n: edges v–(v+1) mod n for v in 0..n-1.
// Requires n ≥ 3.
//
// Complexity: O(n).
func Cycle(n int) (*graph.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle(%d): %w", n, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		if err = g.AddEdge(v, (v+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle(%d): %w", n, err)
		}
	}

	return g, nil
}

// Path builds the simple path P_n: edges v–(v+1) for v in 0..n-2.
// Requires n ≥ 2.
//
// Complexity: O(n).
func Path(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for v := 0; v+1 < n; v++ {
		if err = g.AddEdge(v, v+1); err != nil {
			return nil, fmt.Errorf("Path(%d): %w", n, err)
		}
	}

	return g, nil
}

// Complete builds the complete simple graph K_n, edges in ascending (i, j)
// order. Requires n ≥ 1.
//
// Complexity: O(n²).
func Complete(n int) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete(%d): %w", n, err)
			}
		}
	}

	return g, nil
}

// Triangle builds K_3, the smallest graph with chromatic number 3.
func Triangle() (*graph.Graph, error) { return Complete(3) }

// RandomSparse samples an Erdős–Rényi-like graph over n vertices: each
// unordered pair {i,j}, i<j, is included independently with probability p.
// Pairs are tried in ascending (i, j) order, so a fixed rng state yields an
// identical graph. A nil rng falls back to a fixed deterministic stream.
//
// Sentinels: ErrTooFewVertices (n < 1), ErrInvalidProbability.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse(%d): %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultGenSeed))
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if r.Float64() < p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}
	}

	return g, nil
}
