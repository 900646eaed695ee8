package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/render"
	"github.com/katalvlaran/gridroute/route"
	"github.com/katalvlaran/gridroute/scenario"
)

var routeCmd = &cobra.Command{
	Use:   "route <scenario.yaml>",
	Short: "Compute and print the cheapest route of a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := runRoute(cmd.OutOrStdout(), path); err != nil {
			return err
		}
		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchScenario(ctx, path, func() {
			if err := runRoute(cmd.OutOrStdout(), path); err != nil {
				log.Warn("scenario reload failed", zap.String("path", path), zap.Error(err))
			}
		})
	},
}

func init() {
	routeCmd.Flags().Bool("diagonal", true, "allow diagonal steps")
	routeCmd.Flags().Bool("pass-by-wormhole", false, "allow stepping off a wormhole entrance without teleporting")
	routeCmd.Flags().Int64("max-cost", 0, "give up on routes costing more than this (0: no cap)")
	routeCmd.Flags().Bool("watch", false, "recompute whenever the scenario file changes")
	rootCmd.AddCommand(routeCmd)
}

// solution is one computed scenario.
type solution struct {
	graph  *gridgraph.Graph
	result route.Result
}

// solve loads path, applies its edits and routes start to finish. Movement
// rules come from the configuration, overridden by the scenario's own rules.
func solve(path string, c Config) (solution, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return solution{}, err
	}
	g, err := sc.Build()
	if err != nil {
		return solution{}, fmt.Errorf("build %s: %w", path, err)
	}
	start, finish, err := sc.Endpoints(g)
	if err != nil {
		return solution{}, fmt.Errorf("endpoints %s: %w", path, err)
	}
	opts := append(c.options(), sc.Options()...)
	return solution{graph: g, result: route.FindWithin(g, start, finish, c.costCap(), opts...)}, nil
}

func runRoute(w io.Writer, path string) error {
	sol, err := solve(path, cfg)
	if err != nil {
		return err
	}
	log.Debug("routed",
		zap.String("scenario", path),
		zap.Int("width", sol.graph.Width()),
		zap.Int("height", sol.graph.Height()),
		zap.Bool("reachable", sol.result.Reachable()),
		zap.Int("settled", sol.result.Settled))
	return report(w, sol, cfg.Color)
}

// report prints the cost line, the route and the board with the route drawn in.
func report(w io.Writer, sol solution, color bool) error {
	if sol.result.Reachable() {
		steps := make([]string, len(sol.result.Path))
		for i, id := range sol.result.Path {
			steps[i] = coordOf(sol.graph, id)
		}
		fmt.Fprintf(w, "cost: %d\nroute: %s\n", sol.result.Cost, strings.Join(steps, " "))
	} else {
		fmt.Fprintln(w, "no route")
	}
	return render.Board(w, sol.graph, sol.result.Path, boardOptions(color)...)
}

func coordOf(g *gridgraph.Graph, id gridgraph.VertexID) string {
	if c, ok := g.Locate(id); ok {
		return c.String()
	}
	return string(id)
}

func boardOptions(color bool) []render.Option {
	if color {
		return nil
	}
	return []render.Option{render.WithProfile(termenv.Ascii)}
}

// watchScenario calls onChange after every write to path until ctx ends.
// The parent directory is watched so editors that replace the file are seen.
func watchScenario(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	log.Info("watching scenario", zap.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("scenario changed", zap.String("op", ev.Op.String()))
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
