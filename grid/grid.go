package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice where
// walls[row][col] == true marks a blocked cell.
// It copies the input so later changes to walls do not leak into the Grid.
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs (both wrap ErrMalformedGrid).
// Complexity: O(W×H) time and memory.
func New(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for r, row := range walls {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	g := &Grid{
		Width:   w,
		Height:  h,
		blocked: make([]bool, w*h),
	}
	for r := 0; r < h; r++ {
		copy(g.blocked[r*w:(r+1)*w], walls[r])
	}
	g.label()

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.Width && p.Row >= 0 && p.Row < g.Height
}

// Blocked reports whether the cell at p is a wall.
// Positions outside the grid report true: nothing can stand there.
func (g *Grid) Blocked(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.blocked[g.Index(p)]
}

// Open reports whether p is in bounds and not a wall.
func (g *Grid) Open(p Position) bool {
	return !g.Blocked(p)
}

// Cells returns Width×Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps p to a row-major index: Row*Width + Col.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Col: idx % g.Width, Row: idx / g.Width}
}

// Walls returns a fresh copy of the obstacle matrix, indexed [row][col].
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Height)
	for r := range out {
		out[r] = make([]bool, g.Width)
		copy(out[r], g.blocked[r*g.Width:(r+1)*g.Width])
	}
	return out
}
