// Package route implements Dijkstra's algorithm over (position, facing)
// states of a grid, where moving forward is cheap and turning is expensive.
//
// Notes on implementation choices:
//
//   - The search space is position × orientation, not position alone: the
//     same cell reached with a different facing is a different state.
//   - The distance table is a flat slice indexed by packed state keys.
//   - We use a "lazy" decrease-key strategy: relaxations push duplicates and
//     entries whose cost exceeds the recorded best are skipped when popped.
//   - Ties on cost are broken by row, column, then orientation rank, so two
//     runs on the same input pop states in the same order.
//   - The goal test looks at position only. Any facing on the goal cell
//     counts as arrival.
package route

import (
	"fmt"
	"math"

	"github.com/geraud-g/reindeer/grid"
)

// Solve returns the minimal cost for an agent in state start to stand on
// goal, in any orientation.
//
// The goal condition deliberately ignores facing: the first settled state
// whose position equals goal ends the search, and by the Dijkstra invariant
// its cost is the global minimum over all arrival facings.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must carry a valid orientation and stand on an open,
//     in-bounds cell (ErrInvalidStart).
//  3. goal must be an open, in-bounds cell (ErrInvalidGoal).
//
// When no state on goal can be settled, Solve returns ErrUnreachable,
// possibly wrapped with the reason (disconnected regions or MaxCost).
// Result counters are filled in that case too.
//
// Complexity:
//
//   - Time:  O(S log S) with S = 4·W·H states (each state has ≤ 3 edges).
//   - Space: O(S) for the table plus O(S) worst-case frontier entries.
func Solve(g *grid.Grid, start State, goal grid.Position, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before allocating anything
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !start.Facing.Valid() {
		return Result{}, fmt.Errorf("%w: unknown orientation %d", ErrInvalidStart, uint8(start.Facing))
	}
	if !g.InBounds(start.Pos) {
		return Result{}, fmt.Errorf("%w: %s outside %dx%d grid", ErrInvalidStart, start.Pos, g.Width, g.Height)
	}
	if g.Blocked(start.Pos) {
		return Result{}, fmt.Errorf("%w: %s is blocked", ErrInvalidStart, start.Pos)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: %s outside %dx%d grid", ErrInvalidGoal, goal, g.Width, g.Height)
	}
	if g.Blocked(goal) {
		return Result{}, fmt.Errorf("%w: %s is blocked", ErrInvalidGoal, goal)
	}

	// 3) Disconnected cells can never meet, whatever the facing
	if cfg.Precheck && !g.Connected(start.Pos, goal) {
		return Result{}, fmt.Errorf("%w: %s and %s lie in different regions", ErrUnreachable, start.Pos, goal)
	}

	// 4) Run the relaxation loop
	r := &runner{
		options: cfg,
		moves:   transitions{g: g, moveCost: cfg.MoveCost, turnCost: cfg.TurnCost},
		dist:    newDistTable(g, cfg.ReturnPath),
		goal:    goal,
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single Solve execution.
// Nothing in it outlives the call.
type runner struct {
	options Options
	moves   transitions
	dist    *distTable
	pq      frontier
	goal    grid.Position
	res     Result
	buf     []Step // reused expansion buffer
}

// init seeds the table and the frontier with the start state at cost 0.
func (r *runner) init(start State) {
	r.dist.seed(start)
	r.pq.push(0, start)
	r.res.Pushed = 1
	r.buf = make([]Step, 0, 3)
}

// process is the core loop. It terminates when a state on the goal is
// settled, when the frontier empties, or when the cheapest entry exceeds
// MaxCost.
func (r *runner) process() (Result, error) {
	for !r.pq.empty() {
		// 1) Pop the cheapest entry.
		cost, s := r.pq.popMin()

		// 2) Discard stale entries: a cheaper relaxation already won.
		if best, _ := r.dist.get(s); cost > best {
			r.res.Stale++
			continue
		}

		// 3) Everything left costs at least this much.
		if cost > r.options.MaxCost {
			return r.res, fmt.Errorf("%w: cheapest remaining cost %d exceeds max %d", ErrUnreachable, cost, r.options.MaxCost)
		}

		// 4) Settle s; its cost is now final.
		r.dist.settle(s)
		r.res.Settled++
		r.options.OnSettle(cost, s)

		// 5) Goal test on position only.
		if s.Pos == r.goal {
			r.res.Cost = cost
			r.res.Arrival = s
			r.res.Path = r.dist.path(s)
			return r.res, nil
		}

		// 6) Expand and relax.
		r.relax(cost, s)
	}

	return r.res, ErrUnreachable
}

// relax pushes every neighbor of s whose cost strictly improves.
// Steps whose cumulative cost would overflow int64 are dropped.
func (r *runner) relax(cost int64, s State) {
	r.buf = r.moves.next(s, r.buf[:0])
	for _, step := range r.buf {
		if step.Cost > math.MaxInt64-cost {
			continue
		}
		candidate := cost + step.Cost
		if r.dist.tryRelax(step.To, candidate, s) {
			r.pq.push(candidate, step.To)
			r.res.Pushed++
		}
	}
}
