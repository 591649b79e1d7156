package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geraud-g/reindeer/grid"
	"github.com/geraud-g/reindeer/route"
)

// Parse reads a character map from r.
//
// '#' is a wall; 'S' marks the start (open, facing East); 'E' marks the end
// (open); every other character is open floor. Carriage returns and
// trailing blank lines are ignored. Exactly one 'S' and one 'E' must appear.
// Ragged or empty maps fail with the grid.ErrMalformedGrid family.
func Parse(r io.Reader) (*Maze, error) {
	var (
		walls      [][]bool
		start, end *grid.Position
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for row := 0; sc.Scan(); row++ {
		line := strings.TrimRight(sc.Text(), "\r")
		cells := make([]bool, 0, len(line))
		for col, ch := range []rune(line) {
			p := grid.Position{Col: col, Row: row}
			switch ch {
			case WallRune:
				cells = append(cells, true)
				continue
			case StartRune:
				if start != nil {
					return nil, fmt.Errorf("%w: 'S' at %s and %s", ErrDuplicateMarker, *start, p)
				}
				start = &p
			case EndRune:
				if end != nil {
					return nil, fmt.Errorf("%w: 'E' at %s and %s", ErrDuplicateMarker, *end, p)
				}
				end = &p
			}
			cells = append(cells, false)
		}
		walls = append(walls, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazefile: read: %w", err)
	}

	// Trailing blank lines are not rows.
	for len(walls) > 0 && len(walls[len(walls)-1]) == 0 {
		walls = walls[:len(walls)-1]
	}

	g, err := grid.New(walls)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, ErrNoStart
	}
	if end == nil {
		return nil, ErrNoEnd
	}

	return &Maze{
		Grid:  g,
		Start: route.State{Pos: *start, Facing: StartFacing},
		End:   *end,
	}, nil
}

// Load opens path and parses it with Parse.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Solve runs route.Solve on the maze.
func (m *Maze) Solve(opts ...route.Option) (route.Result, error) {
	return route.Solve(m.Grid, m.Start, m.End, opts...)
}
