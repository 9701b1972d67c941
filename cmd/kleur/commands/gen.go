package commands

import (
	"math/rand"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kleurgraaf/kleur/dot"
	"github.com/kleurgraaf/kleur/graphgen"
)

func newGenCmd() *cobra.Command {
	var (
		vertices int
		edgeProb float64
		seed     int64
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random graph and print or write its DOT description",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			g, err := graphgen.RandomSparse(vertices, edgeProb, rng)
			if err != nil {
				return err
			}
			log.Info().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).
				Msg("graph generated")

			if outPath != "" {
				return dot.WriteFile(outPath, g, nil)
			}

			return dot.Write(os.Stdout, g, nil)
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 30, "number of vertices")
	cmd.Flags().Float64VarP(&edgeProb, "edge-prob", "p", 0.2, "edge probability")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "RNG seed")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write DOT to this path instead of stdout")

	return cmd
}
