package terrain_test

import (
	"fmt"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// ExampleGrid_Neighbors lists the clipped 8-neighborhoods of a corner and
// the center of a 3×3 grid, in N, NE, E, SE, S, SW, W, NW order.
func ExampleGrid_Neighbors() {
	g, _ := terrain.NewGrid(3, 3)

	for _, xy := range [][2]int{{0, 0}, {1, 1}} {
		id, _ := g.NodeAt(xy[0], xy[1])
		fmt.Printf("(%d,%d):", xy[0], xy[1])
		for _, n := range g.Neighbors(id) {
			x, y := g.Coordinate(n)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// (0,0): (1,0) (1,1) (0,1)
	// (1,1): (1,0) (2,0) (2,1) (2,2) (1,2) (0,2) (0,1) (0,0)
}
