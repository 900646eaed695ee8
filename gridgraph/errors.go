package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMap indicates a malformed text map. No partial Graph is returned.
	ErrInvalidMap = errors.New("gridgraph: invalid map")
	// ErrEmptyMap indicates the text map has no rows or no columns.
	ErrEmptyMap = fmt.Errorf("%w: map must have at least one row and one column", ErrInvalidMap)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidMap)
	// ErrInvalidSize indicates a board dimension below MinSize.
	ErrInvalidSize = errors.New("gridgraph: invalid board size")
	// ErrUnknownVertex indicates an identity absent from the current Graph.
	ErrUnknownVertex = errors.New("gridgraph: unknown vertex")
	// ErrUnknownWormhole indicates a cell that is neither a wormhole entrance nor an exit.
	ErrUnknownWormhole = errors.New("gridgraph: unknown wormhole")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
