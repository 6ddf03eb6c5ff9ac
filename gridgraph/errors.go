package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid indicates the input grid is malformed. Every grid
	// validation error wraps it, so callers may match on it alone.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrOutOfBounds indicates a position that does not address a cell.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrNoPath indicates no route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
