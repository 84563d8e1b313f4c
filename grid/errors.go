package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of range")
	// ErrSameEndpoints indicates start and finish share a cell.
	ErrSameEndpoints = errors.New("grid: start and finish must differ")
)
