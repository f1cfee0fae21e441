package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/frontier"
)

// BenchmarkDecreaseKey measures the remove+reinsert pattern on a frontier
// holding 10k items.
// Complexity: O(log n) per update.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	f := frontier.New[int]()
	for i := 0; i < n; i++ {
		_ = f.Insert(i, r.Float64()*1000)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item := i % n
		f.Remove(item)
		_ = f.Insert(item, r.Float64()*1000)
	}
}
