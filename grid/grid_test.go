package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geraud-g/reindeer/grid"
)

// walls builds a wall matrix from strings: '#' is blocked, anything else open.
func walls(rows ...string) [][]bool {
	out := make([][]bool, len(rows))
	for r, line := range rows {
		out[r] = make([]bool, len(line))
		for c, ch := range line {
			out[r][c] = ch == '#'
		}
	}
	return out
}

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		walls [][]bool
		err   error
	}{
		{"EmptyRows", [][]bool{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{false, true}, {false}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.walls)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, errors.Is(err, grid.ErrMalformedGrid), "want MalformedGrid family, got %v", err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := walls("..", "..")
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][0] = true
	assert.False(t, g.Blocked(grid.Position{}), "grid must not alias its input")

	out := g.Walls()
	out[1][1] = true
	assert.False(t, g.Blocked(grid.Position{Col: 1, Row: 1}), "Walls must return a copy")
}

// TestInBounds checks InBounds and Blocked on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(walls(".#.", "#.#"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 6, g.Cells())

	for _, p := range []grid.Position{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds%v", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds%v", p)
		assert.True(t, g.Blocked(p), "out-of-bounds %v must report blocked", p)
	}

	assert.True(t, g.Blocked(grid.Position{Col: 1, Row: 0}))
	assert.True(t, g.Open(grid.Position{Col: 0, Row: 0}))
	assert.True(t, g.Open(grid.Position{Col: 1, Row: 1}))
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := grid.New(walls("....", "....", "...."))
	require.NoError(t, err)
	for i := 0; i < g.Cells(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.Position{Col: 3, Row: 2}, g.Coordinate(11))
}

//----------------------------------------------------------------------------//
// Region labelling
//----------------------------------------------------------------------------//

func TestRegions(t *testing.T) {
	g, err := grid.New(walls(
		"..#..",
		"..#..",
		"#####",
		".#...",
	))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Regions())
	comps := g.Components()
	require.Len(t, comps, 4)
	assert.Equal(t, []int{0, 1, 5, 6}, comps[0])
	assert.Equal(t, []int{3, 4, 8, 9}, comps[1])
	assert.Equal(t, []int{15}, comps[2])
	assert.Equal(t, []int{17, 18, 19}, comps[3])

	assert.True(t, g.Connected(grid.Position{Col: 0, Row: 0}, grid.Position{Col: 1, Row: 1}))
	assert.False(t, g.Connected(grid.Position{Col: 0, Row: 0}, grid.Position{Col: 3, Row: 0}))
	assert.False(t, g.Connected(grid.Position{Col: 2, Row: 0}, grid.Position{Col: 2, Row: 0}), "walls are never connected")
	assert.Equal(t, -1, g.Region(grid.Position{Col: 9, Row: 9}))
}
