package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is the umbrella for every grid build failure,
	// including the start/goal cardinality checks done by loaders.
	ErrConstruction = errors.New("grid: construction failed")
	// ErrEmptyGrid indicates the wall matrix has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrConstruction)
	// ErrOutOfBounds indicates start or goal lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrConstruction)
	// ErrBlockedEndpoint indicates start or goal sits on a wall.
	ErrBlockedEndpoint = fmt.Errorf("%w: start and goal must be open cells", ErrConstruction)
)
