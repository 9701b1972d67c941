// Package coloring - core types, configuration and sentinel errors shared by
// both search engines. See doc.go for the package overview.
package coloring

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the coloring engines and the dispatcher.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to an engine.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrBadColorCount indicates a color count below 1.
	ErrBadColorCount = errors.New("coloring: color count must be at least 1")

	// ErrBadBeamWidth indicates a beam width below 1.
	ErrBadBeamWidth = errors.New("coloring: beam width must be at least 1")

	// ErrBadIterationCap indicates an iteration cap below 1.
	ErrBadIterationCap = errors.New("coloring: iteration cap must be at least 1")

	// ErrBadAssignment indicates an assignment whose length does not match the
	// graph or whose entries fall outside the allowed color range.
	ErrBadAssignment = errors.New("coloring: assignment length or color out of range")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm selector.
	// Unknown selectors are programmer errors and fail fast; there is no
	// silent fallback to a default engine.
	ErrUnknownAlgorithm = errors.New("coloring: unknown algorithm selector")

	// ErrUnknownHeuristic indicates an unrecognized heuristic selector.
	ErrUnknownHeuristic = errors.New("coloring: unknown heuristic selector")
)

// Algorithm selects which search engine Solve routes to.
type Algorithm uint8

const (
	// Backtracking is the exhaustive DFS engine over partial colorings.
	Backtracking Algorithm = iota

	// BeamSearch is the bounded-frontier local search over complete colorings.
	BeamSearch
)

// Harness-facing selector strings.
const (
	algoNameBacktracking = "BCTR"
	algoNameBeam         = "BEAM"
)

// String reports the harness-facing selector for a.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return algoNameBacktracking
	case BeamSearch:
		return algoNameBeam
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a harness selector ("BCTR" or "BEAM") to its tag.
// Unknown selectors return ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case algoNameBacktracking:
		return Backtracking, nil
	case algoNameBeam:
		return BeamSearch, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}

// Heuristic selects the conflict-cost function. Engines resolve the tag once
// at setup into a scoring function value; hot loops never branch on it.
type Heuristic uint8

const (
	// DGR is the degree-weighted conflict sum.
	DGR Heuristic = iota

	// MY is the conflict count plus a multiplicity penalty.
	MY
)

// Harness-facing heuristic selector strings.
const (
	heurNameDGR = "DGR"
	heurNameMY  = "MY"
)

// String reports the harness-facing selector for h.
func (h Heuristic) String() string {
	switch h {
	case DGR:
		return heurNameDGR
	case MY:
		return heurNameMY
	default:
		return fmt.Sprintf("Heuristic(%d)", uint8(h))
	}
}

// ParseHeuristic maps a harness selector ("DGR" or "MY") to its tag.
// Unknown selectors return ErrUnknownHeuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case heurNameDGR:
		return DGR, nil
	case heurNameMY:
		return MY, nil
	default:
		return 0, fmt.Errorf("ParseHeuristic(%q): %w", s, ErrUnknownHeuristic)
	}
}

// Defaults applied by DefaultOptions.
const (
	// DefaultBeamWidth is the frontier bound retained between beam iterations.
	DefaultBeamWidth = 10

	// DefaultMaxIterations caps the beam-search iteration loop.
	DefaultMaxIterations = 1000

	// DefaultTimeLimit is the wall-clock ceiling shared by both engines.
	DefaultTimeLimit = 30 * time.Second

	// DefaultMemLimit is the heap-usage ceiling in bytes (256 MiB).
	DefaultMemLimit = int64(256) << 20
)

// Options configures a single search invocation.
//
//	Algorithm         – engine selector (Backtracking or BeamSearch).
//	Colors            – number of allowed colors (≥ 1).
//	Heuristic         – conflict-cost function (DGR or MY).
//	BeamWidth         – frontier bound k (beam search only, ≥ 1).
//	MaxIterations     – beam iteration cap (beam search only, ≥ 1).
//	TimeLimit         – wall-clock ceiling; 0 trips at the first governor
//	                    check, negative disables the deadline.
//	MemLimit          – heap ceiling in bytes; values ≤ 0 disable it. The
//	                    heap is sampled on every 256th governor check, so a
//	                    trip can occur from the 256th check onward at the
//	                    earliest; short searches may finish unsampled.
//	Seed              – RNG seed; 0 maps to a fixed deterministic stream.
//	InitialAssignment – optional beam seed; when non-nil the frontier starts
//	                    as this single beam instead of random ones.
type Options struct {
	Algorithm         Algorithm
	Colors            int
	Heuristic         Heuristic
	BeamWidth         int
	MaxIterations     int
	TimeLimit         time.Duration
	MemLimit          int64
	Seed              int64
	InitialAssignment []int
}

// DefaultOptions returns the canonical configuration: backtracking under DGR
// with generous resource ceilings. Override fields as needed before Solve.
func DefaultOptions() Options {
	return Options{
		Algorithm:     Backtracking,
		Colors:        3,
		Heuristic:     DGR,
		BeamWidth:     DefaultBeamWidth,
		MaxIterations: DefaultMaxIterations,
		TimeLimit:     DefaultTimeLimit,
		MemLimit:      DefaultMemLimit,
		Seed:          0,
	}
}

// SearchResult is the value record produced by either engine.
// Immutable once returned; the harness owns aggregation.
//
// Generated counts every candidate state: each color trial in backtracking
// (valid or not), each scored one-flip neighbor in beam search. DeadEnds
// counts vertices that exhausted every color (backtracking only). Steps
// counts recursive calls (backtracking) or iterations (beam search). MemPeak
// is the memory-proxy metric: deepest recursion reached, or the peak
// frontier-plus-neighbor count. Stopped distinguishes a governor trip from
// ordinary exhaustion or failure.
type SearchResult struct {
	Found      bool
	Assignment []int
	Generated  int64
	DeadEnds   int64
	Steps      int64
	MemPeak    int
	Elapsed    time.Duration
	Stopped    bool
}
