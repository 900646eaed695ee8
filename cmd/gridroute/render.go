package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/render"
	"github.com/katalvlaran/gridroute/scenario"
)

var renderCmd = &cobra.Command{
	Use:   "render <scenario.yaml>",
	Short: "Print a scenario's board after its edits, without routing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		g, err := sc.Build()
		if err != nil {
			return fmt.Errorf("build %s: %w", args[0], err)
		}
		return render.Board(cmd.OutOrStdout(), g, nil, boardOptions(cfg.Color)...)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
