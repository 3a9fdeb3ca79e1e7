package costgrid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for costgrid operations.
var (
	// ErrMalformedGrid indicates the input is empty, ragged, or holds a cell
	// that is not a non-negative cost.
	ErrMalformedGrid = errors.New("costgrid: malformed grid")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("costgrid: coordinate out of bounds")
)

// Cost is the set of cell value types a Grid can hold.
// Signed types are accepted, but every cell must be >= 0.
type Cost interface {
	constraints.Integer
}

// Coordinate addresses a single cell. Row 0 is the top row, Col 0 the left column.
type Coordinate struct {
	Row, Col int
}

// Step returns the coordinate offset by (dRow, dCol). The result is not
// bounds-checked.
func (c Coordinate) Step(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable rectangular cost map.
// cells is stored row-major: cells[row*cols+col].
type Grid[C Cost] struct {
	rows, cols int
	cells      []C
}
