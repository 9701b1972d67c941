package experiment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/kleurgraaf/kleur/coloring"
	"github.com/kleurgraaf/kleur/graphgen"
)

// Report aggregates the metrics of one experiment. The core engines perform
// no aggregation; everything here is computed from their SearchResults.
type Report struct {
	Trials       int
	Solved       int
	StoppedCount int
	AvgGenerated float64
	AvgDeadEnds  float64
	AvgSteps     float64
	AvgMemPeak   float64
	AvgElapsed   time.Duration
}

// deriveSeed mixes the experiment seed and a trial index into an independent
// 64-bit stream seed using the SplitMix64 finalizer, so trials stay
// decorrelated while the whole experiment remains reproducible.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Run executes cfg.Trials independent trials and averages their metrics.
// Each trial builds its own random graph and runs the selected engine with a
// per-trial derived seed. Forced stops are logged as warnings here — the
// engines themselves stay silent.
func Run(cfg Config, logger zerolog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	var (
		rep          = Report{Trials: cfg.Trials}
		sumGenerated int64
		sumDeadEnds  int64
		sumSteps     int64
		sumMemPeak   int64
		sumElapsed   time.Duration
	)

	for trial := 0; trial < cfg.Trials; trial++ {
		seed := deriveSeed(cfg.Seed, uint64(trial))
		rng := rand.New(rand.NewSource(seed))

		g, err := graphgen.RandomSparse(cfg.Vertices, cfg.EdgeProb, rng)
		if err != nil {
			return Report{}, fmt.Errorf("experiment: trial %d: %w", trial, err)
		}

		opts, err := cfg.engineOptions(seed)
		if err != nil {
			return Report{}, err
		}

		res, err := coloring.Solve(g, opts)
		if err != nil {
			return Report{}, fmt.Errorf("experiment: trial %d: %w", trial, err)
		}

		if res.Stopped {
			rep.StoppedCount++
			logger.Warn().
				Int("trial", trial).
				Str("algorithm", cfg.Algorithm).
				Str("heuristic", cfg.Heuristic).
				Dur("elapsed", res.Elapsed).
				Msg("search stopped by resource governor")
		}
		if res.Found {
			rep.Solved++
		}

		sumGenerated += res.Generated
		sumDeadEnds += res.DeadEnds
		sumSteps += res.Steps
		sumMemPeak += int64(res.MemPeak)
		sumElapsed += res.Elapsed
	}

	n := float64(cfg.Trials)
	rep.AvgGenerated = float64(sumGenerated) / n
	rep.AvgDeadEnds = float64(sumDeadEnds) / n
	rep.AvgSteps = float64(sumSteps) / n
	rep.AvgMemPeak = float64(sumMemPeak) / n
	rep.AvgElapsed = sumElapsed / time.Duration(cfg.Trials)

	return rep, nil
}
