package costgrid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input so later mutation of values
// does not leak into the grid.
// Returns ErrMalformedGrid (wrapped with the offending row or cell) when
// values has no rows or no columns, rows differ in length, or a cell is negative.
// Complexity: O(W×H) time and memory.
func New[C Cost](values [][]C) (*Grid[C], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	}
	h, w := len(values), len(values[0])
	cells := make([]C, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), w)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: negative cost %d at (%d,%d)", ErrMalformedGrid, v, r, c)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid[C]{rows: h, cols: w, cells: cells}, nil
}

// Rows reports the number of rows.
func (g *Grid[C]) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid[C]) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid[C]) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cost returns the traversal cost of entering cell c.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid[C]) Cost(c Coordinate) (C, error) {
	if !g.InBounds(c) {
		var zero C
		return zero, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}

	return g.cells[g.index(c)], nil
}

// Start is the canonical start cell, the top-left corner.
func (g *Grid[C]) Start() Coordinate { return Coordinate{} }

// End is the canonical terminal cell, the bottom-right corner.
func (g *Grid[C]) End() Coordinate {
	return Coordinate{Row: g.rows - 1, Col: g.cols - 1}
}

// IsEnd reports whether c is the terminal cell.
// It only knows the canonical bottom-right corner; an engine configured with
// its own end cell does not consult it.
func (g *Grid[C]) IsEnd(c Coordinate) bool {
	return c == g.End()
}

// Index maps an in-bounds coordinate to its row-major index: Row*Cols + Col.
func (g *Grid[C]) Index(c Coordinate) int {
	return g.index(c)
}

func (g *Grid[C]) index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid[C]) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}
