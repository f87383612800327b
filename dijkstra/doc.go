// Package dijkstra provides a turn-aware implementation of Dijkstra's
// shortest-path algorithm on a maze, keeping every tied predecessor so that
// all minimum-cost routes can be recovered afterwards.
//
// Overview:
//
//   - The search space is the product of grid cells and the four headings.
//     Moving forward costs Costs.Step; each 90° turn bundled with the move
//     costs Costs.Turn. Reversals in place are never generated.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-cheapest state, ignoring stale entries (lazy decrease-key).
//   - A strictly cheaper arrival replaces a state's parent set; an equally
//     cheap one joins it. The minimal-cost parent graph is a DAG because
//     every edge costs at least Costs.Step > 0.
//
// When to use:
//
//   - Grid navigation where orientation changes carry a price.
//   - Whenever the answer needs every optimal route, not just one.
//
// Performance and complexity:
//
//   - Time:  O(E log V), V = 4·W·H, E ≤ 3V.
//   - Space: O(V + E). Distances and parent sets live in index-keyed slices.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil grid passed to Solve.
//   - ErrOptionViolation: an option carried an invalid value.
//   - ctx.Err():          the context supplied via WithContext was done.
//
// An unreachable end is not an error: Result.MinCost returns ok == false.
//
// API reference:
//
//	func Solve(g *gridgraph.Grid, opts ...Option) (*Result, error)
//
//	  - WithStartFacing(o):  heading on the start cell (default East).
//	  - WithCosts(c):        turn and step prices (default 1000 / 1).
//	  - WithTurnCost(n), WithStepCost(n): set one price.
//	  - WithMaxCost(n):      do not record states costlier than n.
//	  - WithContext(ctx):    cancellation.
//
// Thread safety:
//
//   - Solve owns all of its tables; concurrent Solve calls over the same
//     Grid are safe. A Result is read-only once returned.
//
// See also:
//
//   - statespace.Neighbors: the transition function searched here.
//   - pathset.ExtractOptimalTiles: walks the parent sets backwards.
package dijkstra
