package config

import (
	"fmt"
	"math"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/cost"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// Config aggregates application configuration values.
type Config struct {
	Terrain TerrainConfig
	Cost    CostConfig
	HTTP    HTTPConfig
	View    ViewConfig
	Logging LoggingConfig
}

// TerrainConfig sizes the grid and parameterizes the height generator.
type TerrainConfig struct {
	Width       int
	Height      int
	Seed        int64
	Levels      int
	Octaves     int
	StepScale   float64
	Persistence float64
}

// CostConfig selects the traversal metric.
type CostConfig struct {
	HeightWeight       float64
	ElevationHeuristic bool
	ImpassableAbove    float64 // 0 disables walls
}

// HTTPConfig governs the websocket stream server.
type HTTPConfig struct {
	Host            string
	Port            int
	StepsPerFrame   int
	ShutdownTimeout time.Duration
}

// ViewConfig controls terminal animation speed.
type ViewConfig struct {
	StepsPerTick int
	Tick         time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
	File          string // empty writes to stdout
}

const (
	defaultWidth           = 200
	defaultHeight          = 150
	defaultSeed            = 1
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultStepsPerFrame   = 25
	defaultShutdownTimeout = 10 * time.Second
	defaultStepsPerTick    = 10
	defaultTick            = 30 * time.Millisecond
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	td := terrain.DefaultOptions()
	cd := cost.DefaultOptions()

	cfg := Config{
		Cost: CostConfig{
			ElevationHeuristic: parseBoolWithDefault("COST_ELEVATION_HEURISTIC", cd.HeuristicIncludesElevation),
		},
		HTTP: HTTPConfig{
			Host:            valueOrDefault("SERVER_HOST", defaultHost),
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
			File:          os.Getenv("LOG_FILE"),
		},
	}

	ints := []struct {
		key      string
		fallback int
		min      int
		dst      *int
	}{
		{"TERRAIN_WIDTH", defaultWidth, 1, &cfg.Terrain.Width},
		{"TERRAIN_HEIGHT", defaultHeight, 1, &cfg.Terrain.Height},
		{"TERRAIN_LEVELS", td.Levels, 0, &cfg.Terrain.Levels},
		{"TERRAIN_OCTAVES", td.Octaves, 1, &cfg.Terrain.Octaves},
		{"STREAM_STEPS_PER_FRAME", defaultStepsPerFrame, 1, &cfg.HTTP.StepsPerFrame},
		{"VIEW_STEPS_PER_TICK", defaultStepsPerTick, 1, &cfg.View.StepsPerTick},
	}
	for _, f := range ints {
		v, err := parseInt(f.key, f.fallback)
		if err != nil {
			return Config{}, err
		}
		if v < f.min {
			return Config{}, fmt.Errorf("%s must be at least %d, got %d", f.key, f.min, v)
		}
		*f.dst = v
	}

	floats := []struct {
		key      string
		fallback float64
		positive bool // false allows zero
		allowInf bool
		dst      *float64
	}{
		{"TERRAIN_STEP_SCALE", td.StepScale, true, false, &cfg.Terrain.StepScale},
		{"TERRAIN_PERSISTENCE", td.Persistence, true, false, &cfg.Terrain.Persistence},
		{"COST_HEIGHT_WEIGHT", cd.HeightWeight, false, false, &cfg.Cost.HeightWeight},
		{"COST_IMPASSABLE_ABOVE", 0, false, true, &cfg.Cost.ImpassableAbove},
	}
	for _, f := range floats {
		v, err := parseFloat(f.key, f.fallback)
		if err != nil {
			return Config{}, err
		}
		if math.IsNaN(v) || (math.IsInf(v, 1) && !f.allowInf) || v < 0 || (f.positive && v == 0) {
			return Config{}, fmt.Errorf("%s is out of range: %v", f.key, v)
		}
		*f.dst = v
	}

	seed, err := parseInt64("TERRAIN_SEED", defaultSeed)
	if err != nil {
		return Config{}, err
	}
	cfg.Terrain.Seed = seed

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	if v := os.Getenv("SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ShutdownTimeout = d
		} else {
			return Config{}, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
		}
	}

	cfg.View.Tick = defaultTick
	if v := os.Getenv("VIEW_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid VIEW_TICK: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("VIEW_TICK must be positive, got %s", d)
		}
		cfg.View.Tick = d
	}

	return cfg, nil
}

// Options converts the terrain settings into grid options.
func (c TerrainConfig) Options() []terrain.Option {
	return []terrain.Option{
		terrain.WithOctaves(c.Octaves),
		terrain.WithStepScale(c.StepScale),
		terrain.WithPersistence(c.Persistence),
		terrain.WithLevels(c.Levels),
	}
}

// Build creates the configured grid and fills it from gen with Seed.
func (c TerrainConfig) Build(gen terrain.HeightGenerator) (*terrain.Grid, error) {
	g, err := terrain.NewGrid(c.Width, c.Height, c.Options()...)
	if err != nil {
		return nil, err
	}
	if err = g.Regenerate(gen, c.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Model builds the configured cost model.
func (c CostConfig) Model() cost.Model {
	opts := []cost.Option{
		cost.WithHeightWeight(c.HeightWeight),
		cost.WithElevationHeuristic(c.ElevationHeuristic),
	}
	if c.ImpassableAbove > 0 {
		opts = append(opts, cost.WithImpassableAbove(c.ImpassableAbove))
	}
	return cost.New(opts...)
}

// Addr returns the listen address host:port.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseInt64(key string, fallback int64) (int64, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
