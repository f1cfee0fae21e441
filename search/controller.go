package search

import (
	"fmt"
	"math"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/cost"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/frontier"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// Controller holds the mutable state of one search over one grid.
type Controller struct {
	grid  *terrain.Grid
	model cost.Model

	open    *frontier.Frontier[terrain.NodeID]
	dist    []float64        // tentative distance from start, +Inf if unreached
	visited []bool           // closed flags
	prev    []terrain.NodeID // predecessor on the best known path

	start, goal terrain.NodeID // selected endpoints
	state       State
	outcome     Outcome
	steps       int
	last        terrain.NodeID

	nbuf []terrain.NodeID // reused neighbor buffer
}

// New creates an Idle Controller over grid. The controller assumes exclusive
// use of grid while a search is in progress.
// Returns ErrNilGrid if grid is nil.
func New(grid *terrain.Grid, opts ...Option) (*Controller, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := grid.Len()
	c := &Controller{
		grid:    grid,
		model:   cfg.Cost,
		open:    frontier.New[terrain.NodeID](),
		dist:    make([]float64, n),
		visited: make([]bool, n),
		prev:    make([]terrain.NodeID, n),
		start:   terrain.NoNode,
		goal:    terrain.NoNode,
		nbuf:    make([]terrain.NodeID, 0, 8),
	}
	c.Reset()

	return c, nil
}

// CostModel returns the cost model in use.
func (c *Controller) CostModel() cost.Model { return c.model }

// State returns the current lifecycle phase.
func (c *Controller) State() State { return c.state }

// Outcome returns the outcome of the most recent Step (Continuing before any).
func (c *Controller) Outcome() Outcome { return c.outcome }

// Steps returns the number of cells extracted since the last Setup.
func (c *Controller) Steps() int { return c.steps }

// LastExpanded returns the cell extracted by the most recent Step, or NoNode.
func (c *Controller) LastExpanded() terrain.NodeID { return c.last }

// Endpoints returns the selected start and goal (NoNode when unset).
func (c *Controller) Endpoints() (start, goal terrain.NodeID) { return c.start, c.goal }

// Reset returns to Idle from any state: every distance becomes +Inf, every
// visited flag and predecessor is cleared and the frontier is emptied.
// Selected endpoints are kept.
func (c *Controller) Reset() {
	for i := range c.dist {
		c.dist[i] = math.Inf(1)
		c.visited[i] = false
		c.prev[i] = terrain.NoNode
	}
	c.open.Clear()
	c.state = Idle
	c.outcome = Continuing
	c.steps = 0
	c.last = terrain.NoNode
}

// SetStart selects the start cell. Partial results of a previous run are
// cleared. NoNode unselects.
func (c *Controller) SetStart(id terrain.NodeID) error {
	if err := c.checkEndpoint(id); err != nil {
		return err
	}
	if c.state != Idle {
		c.Reset()
	}
	c.start = id
	return nil
}

// SetGoal selects the goal cell. Partial results of a previous run are
// cleared. NoNode unselects.
func (c *Controller) SetGoal(id terrain.NodeID) error {
	if err := c.checkEndpoint(id); err != nil {
		return err
	}
	if c.state != Idle {
		c.Reset()
	}
	c.goal = id
	return nil
}

// SetupSelected calls Setup with the endpoints chosen via SetStart/SetGoal.
func (c *Controller) SetupSelected() error {
	return c.Setup(c.start, c.goal)
}

// Setup clears any previous run, records start and goal, sets the start
// distance to 0 and opens it with key = Heuristic(start, goal).
//
// Returns ErrMissingEndpoints if either endpoint is NoNode and
// terrain.ErrOutOfBounds if either is not a cell of the grid.
func (c *Controller) Setup(start, goal terrain.NodeID) error {
	if start == terrain.NoNode || goal == terrain.NoNode {
		return ErrMissingEndpoints
	}
	if err := c.checkEndpoint(start); err != nil {
		return err
	}
	if err := c.checkEndpoint(goal); err != nil {
		return err
	}

	c.Reset()
	c.start, c.goal = start, goal
	c.dist[start] = 0
	if err := c.open.Insert(start, c.heuristic(start)); err != nil {
		return fmt.Errorf("search: open start: %w", err)
	}
	c.state = Initialized

	return nil
}

// Step performs one expansion:
//  1. an empty frontier ends the search with Exhausted;
//  2. the minimum-key cell is extracted; if it is the goal the search ends
//     with ReachedGoal;
//  3. every unvisited neighbor whose distance improves is relaxed and
//     re-queued with its new key;
//  4. the extracted cell is marked visited and Continuing is returned.
//
// In Done, Step returns the terminal outcome again without doing work.
// Returns ErrNotInitialized while Idle.
func (c *Controller) Step() (Outcome, error) {
	switch c.state {
	case Idle:
		return c.outcome, ErrNotInitialized
	case Done:
		return c.outcome, nil
	}

	active, err := c.open.ExtractMin()
	if err != nil {
		return c.finish(Exhausted), nil
	}
	c.state = Stepping
	c.steps++
	c.last = active

	if active == c.goal {
		return c.finish(ReachedGoal), nil
	}

	c.relax(active)
	c.visited[active] = true
	c.outcome = Continuing

	return Continuing, nil
}

// RunToCompletion calls Step until it returns a terminal outcome.
func (c *Controller) RunToCompletion() (Outcome, error) {
	for {
		out, err := c.Step()
		if err != nil || out.Terminal() {
			return out, err
		}
	}
}

// Regenerate refills the grid from gen, clears the search and forgets both
// endpoints.
func (c *Controller) Regenerate(gen terrain.HeightGenerator, seed int64) error {
	if err := c.grid.Regenerate(gen, seed); err != nil {
		return err
	}
	c.Reset()
	c.start, c.goal = terrain.NoNode, terrain.NoNode
	return nil
}

// relax examines each unvisited neighbor of active and records strictly
// shorter paths, replacing any frontier entry for the neighbor.
func (c *Controller) relax(active terrain.NodeID) {
	from := c.node(active)
	c.nbuf = c.grid.AppendNeighbors(c.nbuf[:0], active)

	for _, p := range c.nbuf {
		if c.visited[p] {
			continue
		}
		candidate := c.dist[active] + c.model.EdgeCost(from, c.node(p))
		// Impassable edges cost +Inf and never pass this test.
		if candidate >= c.dist[p] {
			continue
		}
		c.dist[p] = candidate
		c.prev[p] = active

		c.open.Remove(p)
		// p was just removed, so Insert cannot report a duplicate.
		_ = c.open.Insert(p, candidate+c.heuristic(p))
	}
}

func (c *Controller) finish(o Outcome) Outcome {
	c.state = Done
	c.outcome = o
	return o
}

func (c *Controller) heuristic(id terrain.NodeID) float64 {
	return c.model.Heuristic(c.node(id), c.node(c.goal))
}

// node returns the snapshot of an id already known to be valid.
func (c *Controller) node(id terrain.NodeID) terrain.Node {
	n, _ := c.grid.Node(id)
	return n
}

func (c *Controller) checkEndpoint(id terrain.NodeID) error {
	if id == terrain.NoNode || c.grid.Contains(id) {
		return nil
	}
	return fmt.Errorf("%w: node %d", terrain.ErrOutOfBounds, id)
}
