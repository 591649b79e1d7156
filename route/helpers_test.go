package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geraud-g/reindeer/grid"
	"github.com/geraud-g/reindeer/route"
)

// scenarioA is the single-path reference maze.
var scenarioA = []string{
	"###############",
	"#.......#....E#",
	"#.#.###.#.###.#",
	"#.....#.#...#.#",
	"#.###.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#####.###.#",
	"#...........#.#",
	"###.#.#####.#.#",
	"#...#.....#.#.#",
	"#.#.#.###.#.#.#",
	"#.....#...#.#.#",
	"#.###.#.#.#.#.#",
	"#S..#.....#...#",
	"###############",
}

// scenarioB is the larger reference maze with several near-optimal routes.
var scenarioB = []string{
	"#################",
	"#...#...#...#..E#",
	"#.#.#.#.#.#.#.#.#",
	"#.#.#.#...#...#.#",
	"#.#.#.#.###.#.#.#",
	"#...#.#.#.....#.#",
	"#.#.#.#.#.#####.#",
	"#.#...#.#.#.....#",
	"#.#.#####.#.###.#",
	"#.#.#.......#...#",
	"#.#.###.#####.###",
	"#.#.#...#.....#.#",
	"#.#.#.#####.###.#",
	"#.#.#.........#.#",
	"#.#.#.#########.#",
	"#S#.............#",
	"#################",
}

// build turns a character map into solver inputs: '#' is a wall, 'S' the
// start (facing East), 'E' the goal, anything else open.
func build(t testing.TB, rows ...string) (*grid.Grid, route.State, grid.Position) {
	t.Helper()
	var (
		start route.State
		goal  grid.Position
	)
	walls := make([][]bool, len(rows))
	for r, line := range rows {
		walls[r] = make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				walls[r][c] = true
			case 'S':
				start = route.State{Pos: grid.Position{Col: c, Row: r}, Facing: grid.East}
			case 'E':
				goal = grid.Position{Col: c, Row: r}
			}
		}
	}
	g, err := grid.New(walls)
	require.NoError(t, err)

	return g, start, goal
}

// pathCost re-prices a path step by step and fails if a step is illegal.
func pathCost(t *testing.T, g *grid.Grid, path []route.State) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		found := false
		for _, step := range route.NextStates(g, from) {
			if step.To == to {
				total += step.Cost
				found = true
				break
			}
		}
		require.True(t, found, "illegal step %s -> %s", from, to)
	}
	return total
}
