package grid

import "errors"

// Domain errors for grid operations.
var (
	// ErrOutOfBounds indicates a read at coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")

	// ErrBadDimensions indicates a grid constructed with non-positive size.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
)
