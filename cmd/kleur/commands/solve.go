package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kleurgraaf/kleur/coloring"
	"github.com/kleurgraaf/kleur/dot"
	"github.com/kleurgraaf/kleur/graphgen"
)

type solveFlags struct {
	vertices  int
	edgeProb  float64
	colors    int
	algorithm string
	heuristic string
	beamWidth int
	maxIter   int
	timeLimit time.Duration
	memLimit  int64
	seed      int64
	dotPath   string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one random graph and run a single search on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(f)
		},
	}

	cmd.Flags().IntVarP(&f.vertices, "vertices", "n", 30, "number of vertices")
	cmd.Flags().Float64VarP(&f.edgeProb, "edge-prob", "p", 0.2, "edge probability")
	cmd.Flags().IntVarP(&f.colors, "colors", "c", 3, "number of allowed colors")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "BCTR", "engine selector: BCTR or BEAM")
	cmd.Flags().StringVarP(&f.heuristic, "heuristic", "H", "DGR", "heuristic selector: DGR or MY")
	cmd.Flags().IntVarP(&f.beamWidth, "beam-width", "k", coloring.DefaultBeamWidth, "beam width (BEAM only)")
	cmd.Flags().IntVarP(&f.maxIter, "iterations", "i", coloring.DefaultMaxIterations, "iteration cap (BEAM only)")
	cmd.Flags().DurationVarP(&f.timeLimit, "time-limit", "t", coloring.DefaultTimeLimit, "wall-clock ceiling")
	cmd.Flags().Int64VarP(&f.memLimit, "mem-limit", "m", coloring.DefaultMemLimit, "heap ceiling in bytes (<=0 disables)")
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "RNG seed (0 = fixed default stream)")
	cmd.Flags().StringVarP(&f.dotPath, "dot", "o", "", "write the colored graph as DOT to this path")

	return cmd
}

func runSolve(f solveFlags) error {
	algo, err := coloring.ParseAlgorithm(f.algorithm)
	if err != nil {
		return err
	}
	heur, err := coloring.ParseHeuristic(f.heuristic)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(f.seed))
	g, err := graphgen.RandomSparse(f.vertices, f.edgeProb, rng)
	if err != nil {
		return err
	}
	log.Info().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).
		Msg("graph generated")

	res, err := coloring.Solve(g, coloring.Options{
		Algorithm:     algo,
		Colors:        f.colors,
		Heuristic:     heur,
		BeamWidth:     f.beamWidth,
		MaxIterations: f.maxIter,
		TimeLimit:     f.timeLimit,
		MemLimit:      f.memLimit,
		Seed:          f.seed,
	})
	if err != nil {
		return err
	}

	if res.Stopped {
		log.Warn().Dur("elapsed", res.Elapsed).Msg("search stopped by resource governor")
	}

	fmt.Printf("found:     %v\n", res.Found)
	fmt.Printf("generated: %d\n", res.Generated)
	fmt.Printf("dead ends: %d\n", res.DeadEnds)
	fmt.Printf("steps:     %d\n", res.Steps)
	fmt.Printf("mem peak:  %d\n", res.MemPeak)
	fmt.Printf("elapsed:   %v\n", res.Elapsed)
	if res.Found {
		fmt.Printf("coloring:  %v\n", res.Assignment)
	}

	if f.dotPath != "" && res.Found {
		if err = dot.WriteFile(f.dotPath, g, res.Assignment); err != nil {
			return err
		}
		log.Info().Str("path", f.dotPath).Msg("DOT description written")
	}

	return nil
}
