package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kleurgraaf/kleur/experiment"
)

func newExperimentCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Run N trials of a configuration and average the metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := experiment.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = experiment.LoadConfig(configPath); err != nil {
					return err
				}
			}

			rep, err := experiment.Run(cfg, log.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("trials:        %d\n", rep.Trials)
			fmt.Printf("solved:        %d\n", rep.Solved)
			fmt.Printf("stopped:       %d\n", rep.StoppedCount)
			fmt.Printf("avg generated: %.2f\n", rep.AvgGenerated)
			fmt.Printf("avg dead ends: %.2f\n", rep.AvgDeadEnds)
			fmt.Printf("avg steps:     %.2f\n", rep.AvgSteps)
			fmt.Printf("avg mem peak:  %.2f\n", rep.AvgMemPeak)
			fmt.Printf("avg elapsed:   %v\n", rep.AvgElapsed)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "", "YAML experiment config (defaults apply when omitted)")

	return cmd
}
