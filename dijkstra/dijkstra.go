// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// (cell, orientation) state space of a maze, keeping every tied predecessor.
//
// Notes on implementation choices:
//
//   - States live in an arena indexed by gridIndex*4 + orientation, so the
//     distance table, settled flags and parent sets are plain slices.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries on extraction.
//   - A strictly better distance resets a state's parent set to the single
//     new predecessor; an equal distance appends the predecessor.
//   - The queue is always exhausted. Stopping at the first end state would
//     miss cheaper end orientations and leave tied parents unrecorded.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/statespace"
)

// unreached marks a state with no recorded distance.
const unreached int64 = math.MaxInt64

// ctxCheckEvery bounds how many extractions pass between context checks.
const ctxCheckEvery = 1024

// maxStates is the largest arena whose slots fit the int32 parent links.
const maxStates = math.MaxInt32

// Solve searches g from its start cell facing Options.StartFacing and
// returns the distance table and tied-parent sets for every reachable state.
//
// The search never stops early: the minimum over all four end orientations
// and the complete set of tied parents both require full relaxation.
//
// Preconditions and validation (in order):
//  1. Options must be valid, including the combined turn and step
//     prices (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. 4·W·H must not exceed math.MaxInt32 (ErrGridTooLarge).
//
// An unreachable end is not an error; Result.MinCost reports ok == false.
func Solve(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := cfg.Costs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkArena(g.Len()); err != nil {
		return nil, err
	}

	n := g.Len() * 4
	r := &runner{
		g:       g,
		options: cfg,
		limit:   costLimit(cfg.MaxCost),
		dist:    make([]int64, n),
		parents: make([][]int32, n),
		settled: make([]bool, n),
		pq:      make(statePQ, 0, g.Len()),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       *gridgraph.Grid // read-only within Solve
	options Options
	limit   int64     // highest recordable cost; below unreached
	dist    []int64   // state index → best known cost, unreached if none
	parents [][]int32 // state index → predecessors realising dist
	settled []bool    // state index → cost is final
	pq      statePQ
	stats   Stats
	scratch []statespace.Transition
}

// index maps a State to its arena slot.
func (r *runner) index(s statespace.State) int {
	return r.g.Index(s.Cell)*4 + int(s.Facing)
}

// checkArena rejects grids whose state count overflows an int32 slot.
func checkArena(cells int) error {
	if cells > maxStates/4 {
		return fmt.Errorf("%w: %d cells", ErrGridTooLarge, cells)
	}
	return nil
}

// costLimit caps max one below unreached, so a recorded cost is never
// mistaken for the sentinel.
func costLimit(max int64) int64 {
	if max >= unreached {
		return unreached - 1
	}
	return max
}

// stateAt decodes an arena slot of g back into its State.
func stateAt(g *gridgraph.Grid, i int) statespace.State {
	return statespace.State{
		Cell:   g.Coordinate(i / 4),
		Facing: statespace.Orientation(i % 4),
	}
}

// init marks every state unreached and pushes the start state at cost 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = unreached
	}
	start := statespace.State{Cell: r.g.Start(), Facing: r.options.StartFacing}
	si := r.index(start)
	r.dist[si] = 0

	heap.Init(&r.pq)
	r.push(si, start, 0)
}

// push inserts a heap entry for state s at the given cost.
func (r *runner) push(idx int, s statespace.State, cost int64) {
	heap.Push(&r.pq, stateItem{idx: idx, state: s, cost: cost})
	r.stats.Pushes++
}

// process is the main loop: extract the cheapest unsettled state and relax
// its transitions until the heap is empty.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if r.stats.Settled%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		item := heap.Pop(&r.pq).(stateItem)
		// Stale entry: settled already, or superseded by a cheaper push.
		if r.settled[item.idx] || item.cost > r.dist[item.idx] {
			r.stats.Stale++
			continue
		}
		r.settled[item.idx] = true
		r.stats.Settled++

		r.relax(item.idx, item.state, item.cost)
	}

	return nil
}

// relax examines each transition leaving u. A strictly cheaper candidate
// replaces the target's distance and parent set; an equal candidate only
// joins the parent set.
func (r *runner) relax(ui int, u statespace.State, du int64) {
	r.scratch = statespace.Neighbors(r.g, u, r.options.Costs, r.scratch[:0])
	for _, tr := range r.scratch {
		// du <= limit, so the subtraction cannot wrap and neither can cand.
		if tr.Cost > r.limit-du {
			continue
		}
		cand := du + tr.Cost
		vi := r.index(tr.To)
		switch dv := r.dist[vi]; {
		case cand < dv:
			r.dist[vi] = cand
			r.parents[vi] = append(r.parents[vi][:0], int32(ui))
			r.push(vi, tr.To, cand)
		case cand == dv:
			if r.addParent(vi, ui) {
				r.stats.Ties++
			}
		}
	}
}

// addParent appends ui to the parent set of vi unless already present.
func (r *runner) addParent(vi, ui int) bool {
	for _, p := range r.parents[vi] {
		if int(p) == ui {
			return false
		}
	}
	r.parents[vi] = append(r.parents[vi], int32(ui))
	return true
}

// result freezes the runner's tables into a Result.
func (r *runner) result() *Result {
	res := &Result{
		g:       r.g,
		costs:   r.options.Costs,
		start:   statespace.State{Cell: r.g.Start(), Facing: r.options.StartFacing},
		dist:    r.dist,
		parents: r.parents,
		best:    unreached,
		stats:   r.stats,
	}
	end := r.g.End()
	for _, o := range statespace.All() {
		if d := r.dist[r.index(statespace.State{Cell: end, Facing: o})]; d < res.best {
			res.best = d
		}
	}

	return res
}

// stateItem is a heap entry: a state and the cost it was pushed with.
type stateItem struct {
	idx   int
	state statespace.State
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost, then by cell in
// row-major lexical order, then by orientation. The secondary keys only fix
// the expansion order; tied parents are captured regardless.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.state.Cell != b.state.Cell {
		return a.state.Cell.Less(b.state.Cell)
	}
	return a.state.Facing < b.state.Facing
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
