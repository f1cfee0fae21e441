package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/internal/config"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/internal/logging"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/noise"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/stream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	grid, err := cfg.Terrain.Build(noise.New())
	if err != nil {
		logger.Error("failed to build terrain", "error", err)
		os.Exit(1)
	}

	handler := stream.NewHandler(grid, stream.HandlerConfig{
		Logger:        logger,
		StepsPerFrame: cfg.HTTP.StepsPerFrame,
		Cost:          cfg.Cost.Model(),
	})
	srv := &http.Server{Addr: cfg.HTTP.Addr(), Handler: handler.Routes()}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "width", cfg.Terrain.Width, "height", cfg.Terrain.Height)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
