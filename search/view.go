package search

import (
	"fmt"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// Dimensions returns the width and height of the searched grid.
func (c *Controller) Dimensions() (width, height int) {
	return c.grid.Dimensions()
}

// Node returns the static snapshot of cell id.
func (c *Controller) Node(id terrain.NodeID) (terrain.Node, error) {
	return c.grid.Node(id)
}

// NodeAt returns the identifier of cell (x,y).
func (c *Controller) NodeAt(x, y int) (terrain.NodeID, error) {
	return c.grid.NodeAt(x, y)
}

// NodeState returns a snapshot of the search fields of cell id.
// Returns terrain.ErrOutOfBounds for unknown ids.
func (c *Controller) NodeState(id terrain.NodeID) (NodeState, error) {
	if !c.grid.Contains(id) {
		return NodeState{}, fmt.Errorf("%w: node %d", terrain.ErrOutOfBounds, id)
	}
	return NodeState{
		Distance:    c.dist[id],
		Visited:     c.visited[id],
		Predecessor: c.prev[id],
		InFrontier:  c.open.Contains(id),
	}, nil
}

// Cell returns everything needed to draw cell (x,y).
// Returns terrain.ErrOutOfBounds outside the grid.
func (c *Controller) Cell(x, y int) (CellView, error) {
	id, err := c.grid.NodeAt(x, y)
	if err != nil {
		return CellView{}, err
	}
	st, _ := c.NodeState(id)
	return CellView{
		Node:      c.node(id),
		NodeState: st,
		IsStart:   id == c.start,
		IsGoal:    id == c.goal,
	}, nil
}

// Frontier returns the open cells in extraction order.
func (c *Controller) Frontier() []terrain.NodeID {
	return c.open.Items()
}
