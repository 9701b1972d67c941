// Package commands assembles the kleur command-line interface.
package commands

import "github.com/spf13/cobra"

// NewRootCmd builds the kleur root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kleur",
		Short: "kleur colors graphs with backtracking or beam search",
		Long: `kleur explores constraint-satisfaction graph coloring with two search
strategies - exhaustive backtracking and beam-guided local search - and
compares them under the DGR and MY conflict-cost heuristics.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newExperimentCmd())
	rootCmd.AddCommand(newGenCmd())

	return rootCmd
}
