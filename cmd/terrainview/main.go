package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/internal/config"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/internal/logging"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/noise"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/viewer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "terrainview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The screen owns stdout, so logs go to LOG_FILE or nowhere.
	logger := logging.NewWithWriter(cfg.Logging, io.Discard)
	if cfg.Logging.File != "" {
		fileLogger, closer, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = fileLogger
	}

	gen := noise.New()
	grid, err := cfg.Terrain.Build(gen)
	if err != nil {
		return fmt.Errorf("build terrain: %w", err)
	}
	ctrl, err := search.New(grid, search.WithCostModel(cfg.Cost.Model()))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v, err := viewer.New(screen, ctrl, logger,
		viewer.WithStepsPerTick(cfg.View.StepsPerTick),
		viewer.WithTick(cfg.View.Tick),
		viewer.WithGenerator(gen, cfg.Terrain.Seed))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Info("viewer started", "width", cfg.Terrain.Width, "height", cfg.Terrain.Height, "seed", cfg.Terrain.Seed)
	if err = v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
