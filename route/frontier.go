package route

import "container/heap"

// entry is a tentative (cost, state) pair held by the frontier.
type entry struct {
	cost  int64
	state State
}

// lessEntry is the frontier order: ascending cost, then row, then column,
// then orientation rank (North=0, East=1, South=2, West=3).
// It is a total order over distinct entries, so pops are reproducible.
func lessEntry(a, b entry) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.state.Pos.Row != b.state.Pos.Row {
		return a.state.Pos.Row < b.state.Pos.Row
	}
	if a.state.Pos.Col != b.state.Pos.Col {
		return a.state.Pos.Col < b.state.Pos.Col
	}
	return a.state.Facing.Rank() < b.state.Facing.Rank()
}

// entryHeap is a min-heap of entries ordered by lessEntry.
// Stale entries are never removed; the solver skips them when popped.
type entryHeap []entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return lessEntry(h[i], h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier wraps entryHeap behind push/popMin.
type frontier struct {
	h entryHeap
}

func (f *frontier) push(cost int64, s State) {
	heap.Push(&f.h, entry{cost: cost, state: s})
}

// popMin removes and returns the cheapest entry. The frontier must be non-empty.
func (f *frontier) popMin() (int64, State) {
	e := heap.Pop(&f.h).(entry)
	return e.cost, e.state
}

func (f *frontier) empty() bool {
	return len(f.h) == 0
}
