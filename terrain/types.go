package terrain

import "fmt"

// NodeID identifies a cell by its row-major index y*Width + x.
// Identifiers are stable for the lifetime of a Grid and of its clones.
type NodeID int

// NoNode is the null NodeID.
const NoNode NodeID = -1

// Node is a value snapshot of the static attributes of one cell.
type Node struct {
	X, Y      int     // Coordinates within the grid
	Elevation float64 // Normalized elevation in [0,1]
}

// String formats the node as "(x,y)".
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// HeightGenerator produces a raw elevation sample for cell (x,y).
// Results are expected in [0,1]; Regenerate rescales them across the grid anyway.
type HeightGenerator interface {
	Generate(x, y int, seed int64, octaves int, stepScale, persistence float64) float64
}

// GeneratorFunc adapts an ordinary function to the HeightGenerator interface.
type GeneratorFunc func(x, y int, seed int64, octaves int, stepScale, persistence float64) float64

// Generate calls f(x, y, seed, octaves, stepScale, persistence).
func (f GeneratorFunc) Generate(x, y int, seed int64, octaves int, stepScale, persistence float64) float64 {
	return f(x, y, seed, octaves, stepScale, persistence)
}

// Options contains the terrain generation parameters of a Grid.
//
// Octaves     – number of noise octaves summed by the generator.
// StepScale   – multiplier applied to x and y before sampling.
// Persistence – amplitude falloff between consecutive octaves.
// Levels      – number of discrete elevation bands; 0 keeps continuous values.
type Options struct {
	Octaves     int
	StepScale   float64
	Persistence float64
	Levels      int
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// DefaultOptions returns the classic terrain parameters:
// Octaves=20, StepScale=0.03, Persistence=0.4, Levels=16.
func DefaultOptions() Options {
	return Options{
		Octaves:     20,
		StepScale:   0.03,
		Persistence: 0.4,
		Levels:      16,
	}
}

// WithOctaves sets the number of octaves. Must be positive.
func WithOctaves(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("terrain: octaves must be positive")
		}
		o.Octaves = n
	}
}

// WithStepScale sets the coordinate multiplier. Must be positive.
func WithStepScale(s float64) Option {
	return func(o *Options) {
		if !(s > 0) {
			panic("terrain: step scale must be positive")
		}
		o.StepScale = s
	}
}

// WithPersistence sets the amplitude falloff per octave. Must be positive.
func WithPersistence(p float64) Option {
	return func(o *Options) {
		if !(p > 0) {
			panic("terrain: persistence must be positive")
		}
		o.Persistence = p
	}
}

// WithLevels sets the number of quantization bands. Zero disables quantization.
func WithLevels(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("terrain: levels must be non-negative")
		}
		o.Levels = n
	}
}

// Grid is a fixed-size elevation map. Width and Height never change;
// elevations are overwritten by Regenerate and SetElevation.
// elevation[id] holds the value of cell id in row-major order.
type Grid struct {
	width, height int
	elevation     []float64
	options       Options
}

// neighborOffsets lists the 8-neighborhood in N, NE, E, SE, S, SW, W, NW order.
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
