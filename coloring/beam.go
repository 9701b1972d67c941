// Package coloring — beam-search engine (bounded-frontier local search).
//
// SolveBeam keeps a frontier of up to beamWidth complete assignments and
// repeatedly expands every beam into all one-flip variants, ranks them by
// heuristic score, and retains the best beamWidth assignments not seen
// before in this run. Invalid (conflicting) states are first-class citizens
// of the search; a score of exactly 0 is the sole solution predicate.
//
// Rationale (succinct):
//  1. Duplicate suppression: every assignment is fingerprinted (comma-joined
//     color sequence) into a per-run set; a fingerprint is never revisited.
//  2. Restart policy: when the neighbor set is non-empty but deduplication
//     rejects every candidate, the frontier is re-seeded with fresh random
//     assignments instead of silently collapsing. With the injected seeded
//     RNG this keeps runs fully reproducible.
//  3. Stable ranking: neighbors are generated in a fixed order (beam index
//     asc, vertex asc, color asc) and sorted with a stable sort, so equal
//     scores preserve generation order and runs are deterministic per seed.
//  4. The governor and the iteration cap are consulted once per iteration,
//     never inside the expansion/scoring loop.
//
// Complexity per iteration:
//   - Expansion: O(beams · V · (colors−1)) one-flip variants, each scored in O(E).
//   - Ranking:   O(M log M) for M generated neighbors.
//   - Memory:    O(M · V) for the neighbor set; MemPeak tracks frontier+M.

package coloring

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kleurgraaf/kleur/graph"
)

// beamState pairs one complete assignment with its heuristic score.
type beamState struct {
	colors []int
	score  float64
}

// fingerprint renders an assignment as its canonical dedup key:
// the comma-joined color sequence.
func fingerprint(colors []int) string {
	var sb strings.Builder
	sb.Grow(len(colors) * 2)
	for i, c := range colors {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}

	return sb.String()
}

// beamEngine holds all mutable state of one beam-search invocation.
type beamEngine struct {
	g          *graph.Graph
	n          int
	colorCount int
	width      int

	score scoreFunc
	rng   *rand.Rand

	frontier []beamState
	seen     map[string]struct{}

	gov *governor

	generated int64
	steps     int64
	memPeak   int
}

// seedRandom fills the frontier with width independently drawn complete
// assignments, fingerprinting each into the dedup set.
func (e *beamEngine) seedRandom() {
	e.frontier = e.frontier[:0]
	for i := 0; i < e.width; i++ {
		colors := randomAssignment(e.n, e.colorCount, e.rng)
		e.seen[fingerprint(colors)] = struct{}{}
		e.frontier = append(e.frontier, beamState{colors: colors, score: e.score(colors)})
	}
}

// expand generates and scores every one-flip variant of every beam.
// Order is fixed: beam index asc, vertex asc, color asc.
func (e *beamEngine) expand() []beamState {
	out := make([]beamState, 0, len(e.frontier)*e.n*(e.colorCount-1))
	var (
		v, c int
		cur  int
	)
	for _, b := range e.frontier {
		for v = 0; v < e.n; v++ {
			cur = b.colors[v]
			for c = 0; c < e.colorCount; c++ {
				if c == cur {
					continue
				}
				variant := append([]int(nil), b.colors...)
				variant[v] = c
				e.generated++
				out = append(out, beamState{colors: variant, score: e.score(variant)})
			}
		}
	}

	return out
}

// selectNext keeps the best width neighbors whose fingerprints were not seen
// before, inserting each chosen fingerprint into the dedup set.
func (e *beamEngine) selectNext(neighbors []beamState) []beamState {
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].score < neighbors[j].score
	})

	next := make([]beamState, 0, e.width)
	for _, nb := range neighbors {
		if len(next) == e.width {
			break
		}
		fp := fingerprint(nb.colors)
		if _, dup := e.seen[fp]; dup {
			continue
		}
		e.seen[fp] = struct{}{}
		next = append(next, nb)
	}

	return next
}

// run executes the iteration loop and reports the found assignment, if any.
func (e *beamEngine) run(maxIterations int) (solution []int) {
	for it := 0; it < maxIterations; it++ {
		if e.gov.check() {
			return nil
		}
		e.steps++

		// Zero score is the sole solution predicate.
		for _, b := range e.frontier {
			if b.score == 0 {
				return b.colors
			}
		}

		neighbors := e.expand()
		if len(neighbors) == 0 {
			return nil // degenerate instance: no one-flip variant exists
		}
		if peak := len(e.frontier) + len(neighbors); peak > e.memPeak {
			e.memPeak = peak
		}

		next := e.selectNext(neighbors)
		if len(next) == 0 {
			// Deduplication exhausted every candidate: random restart.
			e.seedRandom()

			continue
		}
		e.frontier = next
	}

	return nil
}

// SolveBeam runs the bounded-frontier local search engine.
//
// Initialization: a supplied InitialAssignment seeds the frontier as a single
// beam; otherwise BeamWidth random complete assignments are drawn from the
// seeded RNG. Termination: a score-0 beam (Found=true), the iteration cap,
// a governor trip (Stopped=true), or a degenerate instance with no one-flip
// neighbors. SolveBeam never reports Found=true unless the returned
// assignment scores exactly 0 under the selected heuristic.
//
// Sentinels: ErrNilGraph, ErrBadColorCount, ErrBadBeamWidth,
// ErrBadIterationCap, ErrBadAssignment, ErrUnknownHeuristic.
func SolveBeam(g *graph.Graph, opts Options) (SearchResult, error) {
	if g == nil {
		return SearchResult{}, ErrNilGraph
	}
	if opts.Colors < 1 {
		return SearchResult{}, ErrBadColorCount
	}
	if opts.BeamWidth < 1 {
		return SearchResult{}, ErrBadBeamWidth
	}
	if opts.MaxIterations < 1 {
		return SearchResult{}, ErrBadIterationCap
	}

	n := g.VertexCount()
	if opts.InitialAssignment != nil {
		if len(opts.InitialAssignment) != n {
			return SearchResult{}, ErrBadAssignment
		}
		for _, c := range opts.InitialAssignment {
			if c < 0 || c >= opts.Colors {
				return SearchResult{}, ErrBadAssignment
			}
		}
	}

	score, err := scorerFor(g, opts.Heuristic)
	if err != nil {
		return SearchResult{}, err
	}

	e := beamEngine{
		g:          g,
		n:          n,
		colorCount: opts.Colors,
		width:      opts.BeamWidth,
		score:      score,
		rng:        rngFromSeed(opts.Seed),
		seen:       make(map[string]struct{}),
		gov:        newGovernor(opts.TimeLimit, opts.MemLimit),
	}

	started := time.Now()

	if opts.InitialAssignment != nil {
		colors := append([]int(nil), opts.InitialAssignment...)
		e.seen[fingerprint(colors)] = struct{}{}
		e.frontier = []beamState{{colors: colors, score: e.score(colors)}}
	} else {
		e.seedRandom()
	}
	e.memPeak = len(e.frontier)

	solution := e.run(opts.MaxIterations)

	res := SearchResult{
		Found:     solution != nil,
		Generated: e.generated,
		Steps:     e.steps,
		MemPeak:   e.memPeak,
		Elapsed:   time.Since(started),
		Stopped:   e.gov.stopped,
	}
	if solution != nil {
		res.Assignment = append([]int(nil), solution...)
	}

	return res, nil
}
