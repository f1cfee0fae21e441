package search_test

import (
	"testing"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/noise"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// BenchmarkRunToCompletion measures a corner-to-corner search on a
// 200×150 noise terrain.
// Complexity: O(V log V) per run with V = W×H.
func BenchmarkRunToCompletion(b *testing.B) {
	g, err := terrain.NewGrid(200, 150)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	if err = g.Regenerate(noise.New(), 1); err != nil {
		b.Fatalf("setup Regenerate failed: %v", err)
	}
	c, err := search.New(g)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	start, _ := g.NodeAt(0, 0)
	goal, _ := g.NodeAt(199, 149)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = c.Setup(start, goal); err != nil {
			b.Fatal(err)
		}
		if _, err = c.RunToCompletion(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStep measures a single expansion including the reset cost
// amortized over a full run.
func BenchmarkStep(b *testing.B) {
	g, err := terrain.NewGrid(200, 150)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	c, _ := search.New(g)
	start, _ := g.NodeAt(0, 75)
	goal, _ := g.NodeAt(199, 75)
	_ = c.Setup(start, goal)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, _ := c.Step()
		if out.Terminal() {
			_ = c.Setup(start, goal)
		}
	}
}
