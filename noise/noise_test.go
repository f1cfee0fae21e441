package noise_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/noise"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

var _ terrain.HeightGenerator = (*noise.Perlin)(nil)

// TestGenerate_Range samples a patch and checks every value lies in [0,1].
func TestGenerate_Range(t *testing.T) {
	p := noise.New()
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			v := p.Generate(x, y, 7, 6, 0.07, 0.5)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

// TestGenerate_LatticeIsMidpoint verifies gradient noise vanishes on integer
// lattice points, which maps to 0.5 after remapping.
func TestGenerate_LatticeIsMidpoint(t *testing.T) {
	p := noise.New()
	assert.Equal(t, 0.5, p.Generate(3, 4, 11, 1, 1, 0.5))
	assert.Equal(t, 0.5, p.Generate(0, 0, 11, 3, 1, 0.5))
}

// TestGenerate_Deterministic checks seed reproducibility across instances
// and that switching seeds back and forth does not corrupt the cache.
func TestGenerate_Deterministic(t *testing.T) {
	a, b := noise.New(), noise.New()
	first := a.Generate(5, 9, 3, 8, 0.03, 0.4)
	_ = a.Generate(5, 9, 4, 8, 0.03, 0.4)

	assert.Equal(t, first, a.Generate(5, 9, 3, 8, 0.03, 0.4))
	assert.Equal(t, first, b.Generate(5, 9, 3, 8, 0.03, 0.4))

	var zero noise.Perlin
	assert.Equal(t, zero.Generate(5, 9, 0, 4, 0.1, 0.5), zero.Generate(5, 9, 1, 4, 0.1, 0.5),
		"seed 0 falls back to the default seed")
}

// TestGenerate_SeedsDiffer ensures distinct seeds produce distinct terrain.
func TestGenerate_SeedsDiffer(t *testing.T) {
	p := noise.New()
	differs := false
	for x := 0; x < 50 && !differs; x++ {
		differs = p.Generate(x, 3, 1, 4, 0.13, 0.5) != p.Generate(x, 3, 2, 4, 0.13, 0.5)
	}
	assert.True(t, differs)
}

// TestGenerate_Concurrent exercises the permutation cache from several goroutines.
func TestGenerate_Concurrent(t *testing.T) {
	p := noise.New()
	want := p.Generate(10, 10, 5, 4, 0.05, 0.5)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = p.Generate(j, j, seed, 4, 0.05, 0.5)
			}
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, want, p.Generate(10, 10, 5, 4, 0.05, 0.5))
}

// TestGenerate_FeedsRegenerate wires the generator into a grid.
func TestGenerate_FeedsRegenerate(t *testing.T) {
	g, err := terrain.NewGrid(30, 20)
	require.NoError(t, err)
	require.NoError(t, g.Regenerate(noise.New(), 42))

	lo, hi := 1.0, 0.0
	for id := terrain.NodeID(0); int(id) < g.Len(); id++ {
		lo = min(lo, g.Elevation(id))
		hi = max(hi, g.Elevation(id))
	}
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}
