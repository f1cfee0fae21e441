package terrain

import (
	"fmt"
	"math"
)

// NewGrid constructs a flat width×height Grid with every elevation at 0.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid{
		width:     width,
		height:    height,
		elevation: make([]float64, width*height),
		options:   cfg,
	}, nil
}

// NewGridFromElevations constructs a Grid from a non-empty, rectangular 2D
// slice indexed as values[y][x]. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrElevationRange if any value lies outside [0,1].
// Complexity: O(W×H) time and memory.
func NewGridFromElevations(values [][]float64, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(w, h, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		for x, v := range row {
			if !validElevation(v) {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrElevationRange, v, x, y)
			}
			g.elevation[g.index(x, y)] = v
		}
	}

	return g, nil
}

// Dimensions returns the fixed width and height of the grid.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.elevation)
}

// Options returns the generation parameters the grid was built with.
func (g *Grid) Options() Options {
	return g.options
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether id addresses a cell of this grid.
func (g *Grid) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.elevation)
}

// NodeAt returns the identifier of cell (x,y).
// Returns ErrOutOfBounds when x ≥ Width, y ≥ Height or either is negative.
func (g *Grid) NodeAt(x, y int) (NodeID, error) {
	if !g.InBounds(x, y) {
		return NoNode, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return NodeID(g.index(x, y)), nil
}

// Node returns a snapshot of cell id.
// Returns ErrOutOfBounds if id does not address a cell.
func (g *Grid) Node(id NodeID) (Node, error) {
	if !g.Contains(id) {
		return Node{}, fmt.Errorf("%w: node %d of %d", ErrOutOfBounds, id, len(g.elevation))
	}
	return g.node(id), nil
}

// node returns the snapshot of a known-valid id.
func (g *Grid) node(id NodeID) Node {
	x, y := g.Coordinate(id)
	return Node{X: x, Y: y, Elevation: g.elevation[id]}
}

// Elevation returns the elevation of cell id, or NaN for unknown ids.
func (g *Grid) Elevation(id NodeID) float64 {
	if !g.Contains(id) {
		return math.NaN()
	}
	return g.elevation[id]
}

// SetElevation overwrites the elevation of cell (x,y).
// Returns ErrOutOfBounds or ErrElevationRange on invalid input.
func (g *Grid) SetElevation(x, y int, v float64) error {
	id, err := g.NodeAt(x, y)
	if err != nil {
		return err
	}
	if !validElevation(v) {
		return fmt.Errorf("%w: %v at (%d,%d)", ErrElevationRange, v, x, y)
	}
	g.elevation[id] = v
	return nil
}

// Neighbors returns the in-bounds 8-neighborhood of id in N, NE, E, SE, S,
// SW, W, NW order. Unknown ids have no neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(id NodeID) []NodeID {
	return g.AppendNeighbors(make([]NodeID, 0, len(neighborOffsets)), id)
}

// AppendNeighbors appends the neighbors of id to dst and returns the
// extended slice, so hot loops can reuse a buffer.
func (g *Grid) AppendNeighbors(dst []NodeID, id NodeID) []NodeID {
	if !g.Contains(id) {
		return dst
	}
	x, y := g.Coordinate(id)
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		dst = append(dst, NodeID(g.index(nx, ny)))
	}
	return dst
}

// Adjacent reports whether a and b are distinct cells at Chebyshev distance 1.
func (g *Grid) Adjacent(a, b NodeID) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	dx, dy := abs(ax-bx), abs(ay-by)
	return max(dx, dy) == 1
}

// Clone returns a deep copy. The clone shares no storage with g and
// accepts the same NodeIDs.
func (g *Grid) Clone() *Grid {
	elevation := make([]float64, len(g.elevation))
	copy(elevation, g.elevation)
	return &Grid{
		width:     g.width,
		height:    g.height,
		elevation: elevation,
		options:   g.options,
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(id NodeID) (x, y int) {
	return int(id) % g.width, int(id) / g.width
}

func validElevation(v float64) bool {
	return v >= 0 && v <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
