// Package pathset recovers every cell lying on at least one minimum-cost
// route from the tied parent sets recorded by the solver.
//
// The walk starts at all tied end states and follows parent links
// backwards. Each state is visited at most once; termination follows from
// the parent graph being acyclic (every edge strictly increases cost).
// Orientation is dropped when collecting cells, so a cell crossed on
// different headings by different optimal routes counts once.
//
// Complexity: O(V + E) over the minimal-cost subgraph, Memory: O(V).
package pathset

import (
	"errors"
	"sort"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/statespace"
)

// ErrUnreachable is returned by Analyze when no route reaches the end.
var ErrUnreachable = errors.New("pathset: end is unreachable")

// ParentLookup yields the tied predecessors of a state.
// *dijkstra.Result satisfies it.
type ParentLookup interface {
	Parents(s statespace.State) []statespace.State
}

// Walk visits every state reachable backwards from ends through parents,
// each exactly once, in depth-first order. Returning an error from visit
// aborts the walk with that error.
func Walk(ends []statespace.State, parents ParentLookup, visit func(statespace.State) error) error {
	seen := make(map[statespace.State]struct{}, len(ends))
	stack := make([]statespace.State, 0, len(ends))
	for _, e := range ends {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		stack = append(stack, e)
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := visit(s); err != nil {
			return err
		}
		for _, p := range parents.Parents(s) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			stack = append(stack, p)
		}
	}

	return nil
}

// cellSet collects the cells of every state reachable backwards from ends.
func cellSet(ends []statespace.State, parents ParentLookup) map[gridgraph.Cell]struct{} {
	cells := make(map[gridgraph.Cell]struct{})
	_ = Walk(ends, parents, func(s statespace.State) error {
		cells[s.Cell] = struct{}{}
		return nil
	})
	return cells
}

// ExtractOptimalTiles returns the number of distinct cells on at least one
// minimum-cost route ending in one of ends. ends must be the end states
// whose distance equals the minimal cost; an empty ends yields 0.
func ExtractOptimalTiles(ends []statespace.State, parents ParentLookup) int {
	return len(cellSet(ends, parents))
}

// OptimalTiles returns the distinct cells counted by ExtractOptimalTiles,
// sorted by row then column.
func OptimalTiles(ends []statespace.State, parents ParentLookup) []gridgraph.Cell {
	set := cellSet(ends, parents)
	out := make([]gridgraph.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Summary is the pair of answers handed to reporting, plus the cells
// themselves for rendering.
type Summary struct {
	Cost  int64
	Tiles int
	Cells []gridgraph.Cell
}

// Analyze extracts the Summary from a finished search.
// Returns ErrUnreachable when the solver found no route to the end.
func Analyze(res *dijkstra.Result) (Summary, error) {
	cost, ok := res.MinCost()
	if !ok {
		return Summary{}, ErrUnreachable
	}
	cells := OptimalTiles(res.EndStates(), res)
	return Summary{Cost: cost, Tiles: len(cells), Cells: cells}, nil
}
