package cost

import (
	"math"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// DefaultHeightWeight scales elevation differences into planar units.
const DefaultHeightWeight = 200.0

// Options configures a Model.
//
// HeightWeight               – multiplier for elevation difference (≥ 0).
// HeuristicIncludesElevation – use the 3-D metric in Heuristic.
// ImpassableAbove            – edge costs ≥ this are treated as walls.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	HeightWeight               float64
	HeuristicIncludesElevation bool
	ImpassableAbove            float64
}

// Option represents a functional option for configuring a Model.
type Option func(*Options)

// DefaultOptions returns HeightWeight=200, HeuristicIncludesElevation=true
// and no impassable threshold.
func DefaultOptions() Options {
	return Options{
		HeightWeight:               DefaultHeightWeight,
		HeuristicIncludesElevation: true,
		ImpassableAbove:            math.Inf(1),
	}
}

// WithHeightWeight sets the elevation multiplier. Panics on negative or NaN weights.
func WithHeightWeight(w float64) Option {
	return func(o *Options) {
		if !(w >= 0) {
			panic("cost: height weight must be non-negative")
		}
		o.HeightWeight = w
	}
}

// WithElevationHeuristic selects the 3-D (true) or planar (false) heuristic.
func WithElevationHeuristic(include bool) Option {
	return func(o *Options) {
		o.HeuristicIncludesElevation = include
	}
}

// WithImpassableAbove treats every edge whose cost is ≥ threshold as impassable.
// Panics unless threshold > 0.
func WithImpassableAbove(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic("cost: impassable threshold must be positive")
		}
		o.ImpassableAbove = threshold
	}
}

// Model computes edge costs and heuristic estimates. The zero value is a
// flat planar metric; use New for the configured defaults.
type Model struct {
	opts Options
}

// New builds a Model from DefaultOptions overridden by opts.
func New(opts ...Option) Model {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Model{opts: cfg}
}

// Options returns the configuration of m.
func (m Model) Options() Options {
	return m.opts
}

// EdgeCost returns the 3-D Euclidean length between a and b, or +Inf when
// the edge is impassable. Symmetric; EdgeCost(a, a) == 0.
func (m Model) EdgeCost(a, b terrain.Node) float64 {
	d := m.distance(a, b, true)
	if m.opts.ImpassableAbove > 0 && d >= m.opts.ImpassableAbove {
		return math.Inf(1)
	}
	return d
}

// Passable reports whether the edge a–b has a finite cost.
func (m Model) Passable(a, b terrain.Node) bool {
	return !math.IsInf(m.EdgeCost(a, b), 1)
}

// Heuristic estimates the remaining cost from n to goal. It is pure and
// never exceeds the true remaining cost.
func (m Model) Heuristic(n, goal terrain.Node) float64 {
	return m.distance(n, goal, m.opts.HeuristicIncludesElevation)
}

func (m Model) distance(a, b terrain.Node, withElevation bool) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	if !withElevation {
		return math.Sqrt(dx*dx + dy*dy)
	}
	dz := (a.Elevation - b.Elevation) * m.opts.HeightWeight
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
