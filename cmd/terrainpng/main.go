package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/internal/config"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/internal/logging"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/noise"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/render"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var (
		out    = flag.String("out", "terrain.png", "output PNG path")
		scale  = flag.Int("scale", 4, "pixels per cell")
		startX = flag.Int("start-x", 0, "start column")
		startY = flag.Int("start-y", 0, "start row")
		goalX  = flag.Int("goal-x", cfg.Terrain.Width-1, "goal column")
		goalY  = flag.Int("goal-y", cfg.Terrain.Height-1, "goal row")
	)
	flag.Parse()

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, *out, *scale, [4]int{*startX, *startY, *goalX, *goalY}); err != nil {
		logger.Error("render failed", "error", err)
		closer.Close()
		os.Exit(1)
	}
	logger.Info("wrote terrain", "path", *out)
}

func run(cfg config.Config, out string, scale int, endpoints [4]int) error {
	grid, err := cfg.Terrain.Build(noise.New())
	if err != nil {
		return err
	}
	ctrl, err := search.New(grid, search.WithCostModel(cfg.Cost.Model()))
	if err != nil {
		return err
	}
	start, err := ctrl.NodeAt(endpoints[0], endpoints[1])
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goal, err := ctrl.NodeAt(endpoints[2], endpoints[3])
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if err = ctrl.Setup(start, goal); err != nil {
		return err
	}
	outcome, err := ctrl.RunToCompletion()
	if err != nil {
		return err
	}
	if outcome == search.ReachedGoal {
		total, _ := ctrl.PathCost()
		fmt.Printf("path cost %.3f after %d steps\n", total, ctrl.Steps())
	} else {
		fmt.Printf("%s after %d steps\n", outcome, ctrl.Steps())
	}
	return render.SavePNG(out, ctrl, scale)
}
