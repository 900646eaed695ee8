package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Shared state set up by the root command before any subcommand runs.
var (
	cfg Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gridroute",
	Short: "Shortest routes on tile maps with gravel, boulders and wormholes",
	Long: `gridroute reads a YAML scenario (text map, wormholes, edits, start and finish)
and computes the cheapest route with Dijkstra's algorithm.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(cmd); err != nil {
			return err
		}
		if log, err = newLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file (rotated)")
	rootCmd.PersistentFlags().Bool("color", true, "colorize the rendered board")
}
