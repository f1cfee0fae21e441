package terrain

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("terrain: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrElevationRange indicates an elevation outside [0,1].
	ErrElevationRange = errors.New("terrain: elevation must lie in [0,1]")
	// ErrOutOfBounds indicates a coordinate or identifier outside the grid.
	ErrOutOfBounds = errors.New("terrain: position out of bounds")
	// ErrNilGenerator indicates Regenerate was called without a height generator.
	ErrNilGenerator = errors.New("terrain: height generator is nil")
)
