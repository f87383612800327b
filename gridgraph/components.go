package gridgraph

// neighborOffsets are the four orthogonal unit steps N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Component returns the row-major indices of all passable cells reachable
// from c by orthogonal moves, ignoring orientation and turn costs.
// Returns nil if c is a wall or out of bounds.
//
// This is a necessary condition for a route: the solver forbids reversing
// in place, so a cell in the component may still be unreachable under
// turn rules (e.g. behind a dead end).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Component(c Cell) []int {
	if !g.Passable(c) {
		return nil
	}
	seen := make([]bool, g.Len())
	i0 := g.Index(c)
	queue := []int{i0}
	seen[i0] = true
	var comp []int
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		comp = append(comp, u)
		uc := g.Coordinate(u)
		for _, d := range neighborOffsets {
			v := uc.Add(d[0], d[1])
			if !g.Passable(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return comp
}

// Connected reports whether a and b lie in the same open component.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Passable(b) {
		return false
	}
	bi := g.Index(b)
	for _, i := range g.Component(a) {
		if i == bi {
			return true
		}
	}
	return false
}
