package search_test

import (
	"fmt"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// ExampleController steps a search across a flat 3×3 grid one expansion at
// a time and prints the diagonal path it settles on.
func ExampleController() {
	g, _ := terrain.NewGrid(3, 3)
	c, _ := search.New(g)
	start, _ := g.NodeAt(0, 0)
	goal, _ := g.NodeAt(2, 2)
	_ = c.Setup(start, goal)

	for {
		out, _ := c.Step()
		n, _ := c.Node(c.LastExpanded())
		fmt.Println(n, out)
		if out.Terminal() {
			break
		}
	}

	path, _ := c.ReconstructPath()
	for _, id := range path {
		n, _ := c.Node(id)
		fmt.Print(n, " ")
	}
	total, _ := c.PathCost()
	fmt.Printf("cost=%.3f\n", total)

	// Output:
	// (0,0) continuing
	// (1,1) continuing
	// (2,2) reached-goal
	// (2,2) (1,1) (0,0) cost=2.828
}
