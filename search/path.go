package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// ReconstructPath returns the cells of the found path ordered from goal back
// to start.
//
// Returns ErrNoPath unless the last Step reported ReachedGoal, and also when
// the predecessor chain from the goal breaks off, revisits a cell or jumps
// between non-adjacent cells before arriving at the start.
// Complexity: O(path length).
func (c *Controller) ReconstructPath() ([]terrain.NodeID, error) {
	if c.state != Done || c.outcome != ReachedGoal {
		return nil, fmt.Errorf("%w: search is %s (%s)", ErrNoPath, c.state, c.outcome)
	}

	seen := mapset.New[terrain.NodeID]()
	path := []terrain.NodeID{c.goal}
	seen.Put(c.goal)
	for at := c.goal; at != c.start; {
		p := c.prev[at]
		switch {
		case p == terrain.NoNode:
			return nil, fmt.Errorf("%w: chain ends at node %d before start", ErrNoPath, at)
		case seen.Has(p):
			return nil, fmt.Errorf("%w: cycle through node %d", ErrNoPath, p)
		case !c.grid.Adjacent(at, p):
			return nil, fmt.Errorf("%w: node %d is not adjacent to predecessor %d", ErrNoPath, at, p)
		}
		seen.Put(p)
		path = append(path, p)
		at = p
	}

	return path, nil
}

// PathCost returns the distance of the goal after ReachedGoal.
// Returns ErrNoPath otherwise.
func (c *Controller) PathCost() (float64, error) {
	if c.state != Done || c.outcome != ReachedGoal {
		return 0, ErrNoPath
	}
	return c.dist[c.goal], nil
}

// Trail returns the predecessor chain of the current best candidate, from
// that candidate back towards the start. The candidate is the goal once it
// has been reached and the frontier minimum otherwise, so a renderer can show
// the path-so-far in the middle of a search. Empty while Idle or after
// exhaustion.
func (c *Controller) Trail() []terrain.Node {
	best, ok := c.bestCandidate()
	if !ok {
		return nil
	}

	seen := mapset.New[terrain.NodeID]()
	var trail []terrain.Node
	for at := best; at != terrain.NoNode && !seen.Has(at); at = c.prev[at] {
		seen.Put(at)
		trail = append(trail, c.node(at))
	}
	return trail
}

func (c *Controller) bestCandidate() (terrain.NodeID, bool) {
	if c.state == Done && c.outcome == ReachedGoal {
		return c.goal, true
	}
	return c.open.PeekMin()
}
