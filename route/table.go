package route

import (
	"fmt"

	"github.com/geraud-g/reindeer/grid"
)

// unknown marks a state with no recorded cost yet.
const unknown int64 = -1

// distTable maps every state of a grid to its best known cumulative cost.
//
// States are packed as (row*width + col)*4 + orientation rank, so the
// table is a flat slice instead of a map. Entries only decrease, and once
// a state is settled its entry is frozen.
type distTable struct {
	width   int
	best    []int64 // best[k] == unknown until first relaxation
	settled []bool
	prev    []int   // predecessor key, -1 for none; nil unless paths are tracked
}

func newDistTable(g *grid.Grid, trackPrev bool) *distTable {
	n := g.Cells() * grid.NumOrientations
	t := &distTable{
		width:   g.Width,
		best:    make([]int64, n),
		settled: make([]bool, n),
	}
	for i := range t.best {
		t.best[i] = unknown
	}
	if trackPrev {
		t.prev = make([]int, n)
		for i := range t.prev {
			t.prev[i] = -1
		}
	}

	return t
}

// key packs s into its flat index.
func (t *distTable) key(s State) int {
	return (s.Pos.Row*t.width+s.Pos.Col)*grid.NumOrientations + s.Facing.Rank()
}

// state unpacks a flat index.
func (t *distTable) state(k int) State {
	cell := k / grid.NumOrientations
	return State{
		Pos:    grid.Position{Col: cell % t.width, Row: cell / t.width},
		Facing: grid.Orientation(k % grid.NumOrientations),
	}
}

// get returns the best known cost of s and whether one exists.
func (t *distTable) get(s State) (int64, bool) {
	d := t.best[t.key(s)]
	return d, d != unknown
}

// tryRelax records cost for s if it is strictly better than the current
// best (or no best exists) and reports whether it did. It is the only way
// the table is mutated. from is the predecessor, ignored when paths are
// not tracked.
//
// A negative cost, or an improvement on a settled state, violates the
// Dijkstra invariant and panics.
func (t *distTable) tryRelax(s State, cost int64, from State) bool {
	if cost < 0 {
		panic(fmt.Sprintf("route: negative cost %d for %s", cost, s))
	}
	k := t.key(s)
	if cur := t.best[k]; cur != unknown && cost >= cur {
		return false
	}
	if t.settled[k] {
		panic(fmt.Sprintf("route: settled state %s improved from %d to %d", s, t.best[k], cost))
	}
	t.best[k] = cost
	if t.prev != nil {
		t.prev[k] = t.key(from)
	}

	return true
}

// seed records the start state at cost 0.
func (t *distTable) seed(s State) {
	t.best[t.key(s)] = 0
}

// settle freezes the entry of s.
func (t *distTable) settle(s State) {
	t.settled[t.key(s)] = true
}

// path walks predecessors back from s and returns start → s.
func (t *distTable) path(s State) []State {
	if t.prev == nil {
		return nil
	}
	var out []State
	for k := t.key(s); k >= 0; k = t.prev[k] {
		out = append(out, t.state(k))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
