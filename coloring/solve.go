// Package coloring - unified dispatcher for the search engines.
//
// Solve is the canonical entry point used by the experiment harness and the
// CLI: it validates the configuration, then routes to SolveBacktracking or
// SolveBeam. An unknown algorithm selector is a programmer error and fails
// fast with ErrUnknownAlgorithm — there is no silent fallback.
package coloring

import "github.com/kleurgraaf/kleur/graph"

// Solve routes one search invocation to the engine selected by opts.Algorithm.
//
// Errors: ErrUnknownAlgorithm for an unrecognized selector, plus whatever the
// routed engine returns for its own configuration (see SolveBacktracking and
// SolveBeam). Ordinary search failure is never an error; it is reported via
// Found=false in the SearchResult.
func Solve(g *graph.Graph, opts Options) (SearchResult, error) {
	switch opts.Algorithm {
	case Backtracking:
		return SolveBacktracking(g, opts)
	case BeamSearch:
		return SolveBeam(g, opts)
	default:
		return SearchResult{}, ErrUnknownAlgorithm
	}
}
