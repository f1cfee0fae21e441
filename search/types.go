package search

import (
	"errors"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/cost"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// Sentinel errors returned by the Controller.
var (
	// ErrNilGrid indicates that New was called with a nil grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoints indicates Setup without both a start and a goal.
	ErrMissingEndpoints = errors.New("search: start and goal must both be set")

	// ErrNotInitialized indicates Step was called before Setup.
	ErrNotInitialized = errors.New("search: not initialized")

	// ErrNoPath indicates no valid start→goal predecessor chain is available.
	ErrNoPath = errors.New("search: no path")
)

// State is the lifecycle phase of a Controller.
type State int

const (
	// Idle: no search configured, or state was cleared.
	Idle State = iota
	// Initialized: Setup done, no expansion yet.
	Initialized
	// Stepping: at least one cell expanded, search not finished.
	Stepping
	// Done: goal reached or frontier exhausted.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initialized:
		return "initialized"
	case Stepping:
		return "stepping"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single Step.
type Outcome int

const (
	// Continuing: a cell was expanded and the search goes on.
	Continuing Outcome = iota
	// ReachedGoal: the goal was extracted from the frontier.
	ReachedGoal
	// Exhausted: the frontier drained without reaching the goal.
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case ReachedGoal:
		return "reached-goal"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Terminal reports whether o ends the search.
func (o Outcome) Terminal() bool {
	return o == ReachedGoal || o == Exhausted
}

// Options configures a Controller.
//
// Cost – edge metric and heuristic. Default is cost.New().
type Options struct {
	Cost cost.Model
}

// Option represents a functional option for configuring a Controller.
type Option func(*Options)

// WithCostModel sets the cost model used for relaxation and ordering.
func WithCostModel(m cost.Model) Option {
	return func(o *Options) {
		o.Cost = m
	}
}

// DefaultOptions returns Options with the default cost model.
func DefaultOptions() Options {
	return Options{Cost: cost.New()}
}

// NodeState is a read-only snapshot of the search fields of one cell.
// Distance is +Inf and Predecessor is terrain.NoNode until the cell is reached.
type NodeState struct {
	Distance    float64
	Visited     bool
	Predecessor terrain.NodeID
	InFrontier  bool
}

// CellView is everything a renderer needs to draw one cell.
type CellView struct {
	terrain.Node
	NodeState
	IsStart bool
	IsGoal  bool
}
