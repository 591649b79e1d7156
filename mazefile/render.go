package mazefile

import (
	"bufio"
	"io"

	"github.com/geraud-g/reindeer/grid"
	"github.com/geraud-g/reindeer/route"
)

// Render writes the maze to w using the map characters, with the states of
// path drawn as arrows ('^', '>', 'v', '<'). The start and end markers are
// kept. When a cell appears several times in path (turning in place) the
// last facing wins.
func Render(w io.Writer, m *Maze, path []route.State) error {
	g := m.Grid
	canvas := make([][]rune, g.Height)
	for r := range canvas {
		canvas[r] = make([]rune, g.Width)
		for c := range canvas[r] {
			canvas[r][c] = OpenRune
			if g.Blocked(grid.Position{Col: c, Row: r}) {
				canvas[r][c] = WallRune
			}
		}
	}
	for _, s := range path {
		canvas[s.Pos.Row][s.Pos.Col] = s.Facing.Glyph()
	}
	canvas[m.Start.Pos.Row][m.Start.Pos.Col] = StartRune
	canvas[m.End.Row][m.End.Col] = EndRune

	bw := bufio.NewWriter(w)
	for _, row := range canvas {
		bw.WriteString(string(row))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
