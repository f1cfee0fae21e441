// Package terrain treats a rectangular elevation map as an 8-connected grid
// graph whose cells are addressed by stable row-major identifiers.
//
// What:
//
//   - Grid owns a fixed Width×Height collection of cells, each carrying an
//     elevation in [0,1].
//   - NodeID is the row-major index y*Width + x; NoNode is the null reference.
//   - Neighbors enumerates the in-bounds 8-neighborhood in a fixed order
//     (N, NE, E, SE, S, SW, W, NW), so ties downstream stay reproducible.
//   - Regenerate refills elevations from a HeightGenerator, min-max rescales
//     the whole grid into [0,1] and optionally quantizes into Levels steps.
//
// Why:
//
//   - Identifiers survive Clone and regeneration, so search state can be kept
//     outside the grid and compared by value.
//
// Complexity:
//
//   - NodeAt, Node, Coordinate, Adjacent: O(1).
//   - Neighbors:                          O(1) (at most 8 cells).
//   - Regenerate, Clone:                  O(W×H) time, Regenerate O(1) extra memory.
//
// Options:
//
//   - Octaves, StepScale, Persistence: forwarded to the HeightGenerator.
//   - Levels: number of discrete elevation bands after rescaling (0 disables).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyGrid: elevation rows are empty.
//   - ErrNonRectangular: elevation rows have differing lengths.
//   - ErrElevationRange: an elevation lies outside [0,1].
//   - ErrOutOfBounds: coordinate or identifier outside the grid.
//   - ErrNilGenerator: Regenerate called without a generator.
package terrain
