// Package route finds the cheapest way for an oriented agent to reach a
// goal cell on an obstacle grid.
//
// Overview:
//
//   - The agent occupies a State: a grid.Position plus a grid.Orientation.
//   - From every state exactly three actions are considered, in this order:
//     Move one cell forward (cost 1, only onto open in-bounds cells),
//     TurnLeft and TurnRight (cost 1000 each, position unchanged).
//   - Solve runs Dijkstra's algorithm over states and returns the minimal
//     cumulative cost of standing on the goal cell, in any orientation.
//
// Key features:
//
//   - Functional options tune costs (WithMoveCost, WithTurnCost), cap
//     exploration (WithMaxCost), recover the route (WithReturnPath) and
//     observe settled states (WithOnSettle).
//   - Deterministic tie-breaking: equal-cost frontier entries are ordered by
//     row, column, then orientation rank (North=0, East=1, South=2, West=3).
//   - Region precheck: start and goal cells in different open regions fail
//     fast with ErrUnreachable, without running the search.
//   - SolveAll solves independent mazes concurrently.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = 4·W·H states, ≤ 3 edges per state.
//   - Space: O(S) flat distance table, O(S) worst-case frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      grid pointer is nil.
//   - ErrInvalidStart: start is out of bounds, blocked, or has a bad facing.
//   - ErrInvalidGoal:  goal is out of bounds or blocked.
//   - ErrUnreachable:  no route exists (or none within MaxCost).
//
// Malformed grids are rejected earlier, by grid.New.
//
// Example usage:
//
//	g, _ := grid.New(walls)
//	res, err := route.Solve(g,
//	    route.State{Pos: start, Facing: grid.East},
//	    goal,
//	    route.WithReturnPath(),
//	)
//	if errors.Is(err, route.ErrUnreachable) {
//	    ...
//	}
//	fmt.Println(res.Cost, len(res.Path))
package route
