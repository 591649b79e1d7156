package route

import "github.com/geraud-g/reindeer/grid"

// transitions enumerates legal moves on a borrowed, read-only grid.
type transitions struct {
	g        *grid.Grid
	moveCost int64
	turnCost int64
}

// next appends the legal steps out of s to buf and returns it.
//
// Order is fixed: Move, TurnLeft, TurnRight. Move is omitted when the cell
// ahead is out of bounds or blocked. Keeping the order fixed keeps the
// frontier push sequence reproducible.
func (t transitions) next(s State, buf []Step) []Step {
	if ahead := s.Facing.Ahead(s.Pos); t.g.Open(ahead) {
		buf = append(buf, Step{
			Action: Move,
			To:     State{Pos: ahead, Facing: s.Facing},
			Cost:   t.moveCost,
		})
	}
	buf = append(buf,
		Step{Action: TurnLeft, To: State{Pos: s.Pos, Facing: s.Facing.Left()}, Cost: t.turnCost},
		Step{Action: TurnRight, To: State{Pos: s.Pos, Facing: s.Facing.Right()}, Cost: t.turnCost},
	)

	return buf
}

// NextStates lists the legal steps out of s on g using the default costs.
// It is the exported view of the transition model used by Solve.
func NextStates(g *grid.Grid, s State) []Step {
	t := transitions{g: g, moveCost: DefaultMoveCost, turnCost: DefaultTurnCost}
	return t.next(s, make([]Step, 0, 3))
}
