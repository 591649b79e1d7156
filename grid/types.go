// Package grid defines the immutable obstacle map, positions and facings
// used by the route solver.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrMalformedGrid is the family error wrapped by every construction failure.
	ErrMalformedGrid = errors.New("grid: malformed grid")

	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: must have at least one row and one column", ErrMalformedGrid)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
)

// Position is a cell coordinate. Origin (0,0) is the top-left cell;
// Col grows to the right and Row grows downwards.
type Position struct {
	Col, Row int
}

// Add returns p shifted by (dc, dr).
func (p Position) Add(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// String renders the position as "(col,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Grid is a rectangular obstacle map. It is immutable once built:
// blocked[Row*Width+Col] reports whether the cell is a wall.
type Grid struct {
	Width, Height int
	blocked       []bool
	region        []int // region id per cell, -1 for walls
	regions       int
}
