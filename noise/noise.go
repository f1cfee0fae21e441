// Package noise provides a seeded octave Perlin generator that satisfies
// terrain.HeightGenerator.
//
// Determinism: the same seed always yields the same permutation table, so
// Generate is a pure function of its arguments. The permutation for the most
// recent seed is cached; Perlin is safe for concurrent use.
package noise

import (
	"math"
	"math/rand"
	"sync"
)

// defaultSeed replaces seed==0 so the zero value stays reproducible.
const defaultSeed int64 = 1

// Perlin is an improved-Perlin gradient noise source.
// The zero value is ready to use.
type Perlin struct {
	mu     sync.Mutex
	seed   int64
	cached bool
	perm   [512]uint8
}

// New returns a ready Perlin generator.
func New() *Perlin {
	return &Perlin{}
}

// Generate sums octaves of 2D noise at (x*stepScale, y*stepScale), doubling
// the frequency and scaling the amplitude by persistence per octave, and
// maps the amplitude-normalized sum from [-1,1] into [0,1].
func (p *Perlin) Generate(x, y int, seed int64, octaves int, stepScale, persistence float64) float64 {
	perm := p.table(seed)

	fx, fy := float64(x)*stepScale, float64(y)*stepScale
	var sum, amp, total float64
	amp = 1
	for i := 0; i < max(octaves, 1); i++ {
		sum += noise2D(perm, fx, fy) * amp
		total += amp
		fx *= 2
		fy *= 2
		amp *= persistence
	}

	return clamp01((sum/total)*0.5 + 0.5)
}

// table returns the permutation for seed, rebuilding it when the seed changes.
func (p *Perlin) table(seed int64) *[512]uint8 {
	if seed == 0 {
		seed = defaultSeed
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cached || p.seed != seed {
		p.perm = permutation(seed)
		p.seed = seed
		p.cached = true
	}
	perm := p.perm
	return &perm
}

// permutation shuffles 0..255 with a seeded source and duplicates it so
// lookups of index+1 never wrap.
func permutation(seed int64) [512]uint8 {
	var perm [512]uint8
	r := rand.New(rand.NewSource(seed))
	for i, v := range r.Perm(256) {
		perm[i] = uint8(v)
		perm[i+256] = uint8(v)
	}
	return perm
}

func noise2D(perm *[512]uint8, x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi, yi := int(fx)&255, int(fy)&255
	x -= fx
	y -= fy
	u, v := fade(x), fade(y)

	a := int(perm[xi]) + yi
	b := int(perm[xi+1]) + yi
	aa, ab := perm[a], perm[a+1]
	ba, bb := perm[b], perm[b+1]

	return lerp(v,
		lerp(u, grad(aa, x, y), grad(ba, x-1, y)),
		lerp(u, grad(ab, x, y-1), grad(bb, x-1, y-1)),
	)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash uint8, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
