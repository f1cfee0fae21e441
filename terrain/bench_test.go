package terrain_test

import (
	"math/rand"
	"testing"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// BenchmarkRegenerate measures a full refill of a 200×150 grid with a cheap
// random generator.
// Complexity: O(W×H)
func BenchmarkRegenerate(b *testing.B) {
	g, err := terrain.NewGrid(200, 150)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	r := rand.New(rand.NewSource(42))
	gen := terrain.GeneratorFunc(func(int, int, int64, int, float64, float64) float64 {
		return r.Float64()
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regenerate(gen, int64(i))
	}
}

// BenchmarkAppendNeighbors measures neighbor enumeration with a reused buffer.
func BenchmarkAppendNeighbors(b *testing.B) {
	g, err := terrain.NewGrid(200, 150)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	buf := make([]terrain.NodeID, 0, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendNeighbors(buf[:0], terrain.NodeID(i%g.Len()))
	}
}
