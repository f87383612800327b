package dijkstra

import (
	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/statespace"
)

// Result is the immutable outcome of one Solve call: the final distance of
// every reached state, its tied parent set, and the best cost at the end
// cell. It is safe for concurrent reads.
type Result struct {
	g       *gridgraph.Grid
	costs   statespace.Costs
	start   statespace.State
	dist    []int64
	parents [][]int32
	best    int64
	stats   Stats
}

// Grid returns the grid that was searched.
func (res *Result) Grid() *gridgraph.Grid { return res.g }

// Costs returns the edge prices used by the search.
func (res *Result) Costs() statespace.Costs { return res.costs }

// Start returns the start state.
func (res *Result) Start() statespace.State { return res.start }

// Stats returns counters collected during the search.
func (res *Result) Stats() Stats { return res.stats }

// MinCost returns the minimum cost over the four end orientations.
// ok is false when no end state was reached; cost is then meaningless,
// since zero is itself a valid cost.
func (res *Result) MinCost() (cost int64, ok bool) {
	if res.best == unreached {
		return 0, false
	}
	return res.best, true
}

// Reachable reports whether any end state has a finite distance.
func (res *Result) Reachable() bool {
	return res.best != unreached
}

// slot returns the arena index of s, or -1 if s is off the grid.
func (res *Result) slot(s statespace.State) int {
	if !res.g.InBounds(s.Cell) || !s.Facing.Valid() {
		return -1
	}
	return res.g.Index(s.Cell)*4 + int(s.Facing)
}

// Distance returns the final cost of s; ok is false if s was never reached.
func (res *Result) Distance(s statespace.State) (cost int64, ok bool) {
	i := res.slot(s)
	if i < 0 || res.dist[i] == unreached {
		return 0, false
	}
	return res.dist[i], true
}

// Parents returns the predecessors of s on minimum-cost routes.
// The start state and unreached states have none.
func (res *Result) Parents(s statespace.State) []statespace.State {
	i := res.slot(s)
	if i < 0 || len(res.parents[i]) == 0 {
		return nil
	}
	out := make([]statespace.State, len(res.parents[i]))
	for k, p := range res.parents[i] {
		out[k] = stateAt(res.g, int(p))
	}
	return out
}

// EndStates returns the end-cell states whose distance equals MinCost,
// in orientation order. Nil when the end is unreachable.
func (res *Result) EndStates() []statespace.State {
	if !res.Reachable() {
		return nil
	}
	var out []statespace.State
	for _, o := range statespace.All() {
		s := statespace.State{Cell: res.g.End(), Facing: o}
		if d, ok := res.Distance(s); ok && d == res.best {
			out = append(out, s)
		}
	}
	return out
}

// Distances copies the distance table into a map keyed by State,
// containing only reached states.
func (res *Result) Distances() map[statespace.State]int64 {
	out := make(map[statespace.State]int64)
	for i, d := range res.dist {
		if d == unreached {
			continue
		}
		out[stateAt(res.g, i)] = d
	}
	return out
}
