// Package cost defines the traversal metric used by the terrain search.
//
// Overview:
//
//   - EdgeCost is the Euclidean length of the step between two cells in a
//     3-D embedding whose third axis is elevation × HeightWeight. Flat
//     orthogonal steps cost 1, flat diagonal steps √2, and climbing or
//     descending adds a penalty governed by HeightWeight.
//   - Heuristic estimates the remaining cost to the goal, either from the
//     planar distance alone or from the same 3-D metric.
//
// Admissibility:
//
//	Every edge cost is the length of a straight 3-D segment, so the cost of
//	any path is at least the straight 3-D distance between its endpoints
//	(triangle inequality). Both heuristic variants are therefore admissible
//	and consistent for this edge metric; the 3-D one is tighter and expands
//	fewer cells. Impassable edges only raise true costs and keep both bounds valid.
//
// Options:
//
//   - WithHeightWeight(w):        elevation multiplier (default 200, w ≥ 0).
//   - WithElevationHeuristic(b):  include elevation in Heuristic (default true).
//   - WithImpassableAbove(t):     edges costing ≥ t become impassable (+Inf).
//
// Model values are immutable and safe to share between goroutines.
package cost
