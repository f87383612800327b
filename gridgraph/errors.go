package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input map has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a start, end or wall cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell lies outside the grid")
	// ErrMissingStart indicates the map has no start tile.
	ErrMissingStart = errors.New("gridgraph: map has no start tile")
	// ErrMissingEnd indicates the map has no end tile.
	ErrMissingEnd = errors.New("gridgraph: map has no end tile")
	// ErrDuplicateStart indicates more than one start tile.
	ErrDuplicateStart = errors.New("gridgraph: map has more than one start tile")
	// ErrDuplicateEnd indicates more than one end tile.
	ErrDuplicateEnd = errors.New("gridgraph: map has more than one end tile")
	// ErrUnknownTile indicates a character outside the tile alphabet.
	ErrUnknownTile = errors.New("gridgraph: unknown tile")
	// ErrBlockedEndpoint indicates the start or end cell is also a wall.
	ErrBlockedEndpoint = errors.New("gridgraph: start or end cell is a wall")
)
