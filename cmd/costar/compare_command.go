package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"costar/internal/pipeline"
	"costar/internal/report"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [ACTOR_A ACTOR_B]",
		Short: "Compare two actors' movie ratings together and apart",
		Long: "Compare builds a three-way report for a pair of actors: movies they\n" +
			"appear in together, and each actor's movies without the other. With no\n" +
			"arguments the configured default pair is used.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("provide both actor names or neither")
			}
			return cobra.MaximumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			actorA, actorB := cfg.Compare.ActorA, cfg.Compare.ActorB
			if len(args) == 2 {
				actorA, actorB = args[0], args[1]
			}

			result, err := pipeline.Run(cmd.Context(), cfg, logger, actorA, actorB)
			if err != nil {
				return err
			}

			report.Render(cmd.OutOrStdout(), result.Comparison, report.RenderOptions{
				Color:   colorEnabled(cfg.Output.Color, os.Stdout),
				MaxList: cfg.Compare.MaxList,
			})
			return nil
		},
	}

	return cmd
}
