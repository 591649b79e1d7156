package grid

// label assigns every open cell the id of its 4-connected region.
// Blocked cells keep label -1. Called once by New.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and the BFS queue.
func (g *Grid) label() {
	g.region = make([]int, len(g.blocked))
	for i := range g.region {
		g.region[i] = -1
	}

	queue := make([]int, 0, len(g.blocked))
	for i0, wall := range g.blocked {
		if wall || g.region[i0] >= 0 {
			continue
		}
		id := g.regions
		g.regions++

		// BFS to flood the region
		queue = append(queue[:0], i0)
		g.region[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, o := range Orientations() {
				v := o.Ahead(u)
				if g.Blocked(v) {
					continue
				}
				vi := g.Index(v)
				if g.region[vi] < 0 {
					g.region[vi] = id
					queue = append(queue, vi)
				}
			}
		}
	}
}

// Regions returns the number of 4-connected open regions.
func (g *Grid) Regions() int {
	return g.regions
}

// Region returns the region id of p, or -1 if p is blocked or out of bounds.
func (g *Grid) Region(p Position) int {
	if g.Blocked(p) {
		return -1
	}
	return g.region[g.Index(p)]
}

// Components returns every open region as a slice of row-major cell indices,
// ordered by region id. Cells inside a region appear in row-major order.
func (g *Grid) Components() [][]int {
	comps := make([][]int, g.regions)
	for i, id := range g.region {
		if id >= 0 {
			comps[id] = append(comps[id], i)
		}
	}
	return comps
}

// Connected reports whether a and b are open cells of the same region.
// Facing is irrelevant here: turning in place is always legal, so any two
// cells of one region are mutually reachable.
func (g *Grid) Connected(a, b Position) bool {
	ra := g.Region(a)
	return ra >= 0 && ra == g.Region(b)
}
