package terrain

import (
	"fmt"
	"math"
)

// Regenerate replaces every elevation with a fresh sample from gen.
//
// Behavior:
//  1. Sample gen.Generate(x, y, seed, Octaves, StepScale, Persistence) for every cell.
//  2. Min-max rescale across the whole grid into [0,1]. A grid whose samples
//     are all equal becomes flat at 0.
//  3. If Levels > 0, quantize each value to floor(v*Levels)/Levels.
//
// NodeIDs and coordinates are unaffected; any search state kept by callers
// is stale afterwards and must be cleared.
// Returns ErrNilGenerator if gen is nil and ErrElevationRange if any sample
// is NaN or infinite; on error the grid keeps its previous elevations.
// Complexity: O(W×H) time and memory.
func (g *Grid) Regenerate(gen HeightGenerator, seed int64) error {
	if gen == nil {
		return ErrNilGenerator
	}
	opts := g.options

	samples := make([]float64, len(g.elevation))
	lower, upper := math.Inf(1), math.Inf(-1)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			v := gen.Generate(x, y, seed, opts.Octaves, opts.StepScale, opts.Persistence)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: sample %v at (%d,%d)", ErrElevationRange, v, x, y)
			}
			lower = min(lower, v)
			upper = max(upper, v)
			samples[g.index(x, y)] = v
		}
	}

	span := upper - lower
	for i, v := range samples {
		if span <= 0 {
			g.elevation[i] = 0
			continue
		}
		g.elevation[i] = quantize((v-lower)/span, opts.Levels)
	}

	return nil
}

// quantize clusters v into levels bands; levels ≤ 0 returns v unchanged.
func quantize(v float64, levels int) float64 {
	if levels <= 0 {
		return v
	}
	return float64(int(v*float64(levels))) / float64(levels)
}
