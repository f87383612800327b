// Package dijkstra defines core types and configuration options
// for the turn-penalised shortest-path search over a gridgraph.Grid.
//
// The search runs on the augmented state graph of statespace: V = 4·W·H
// (cell, orientation) states, E ≤ 3V edges, all weights strictly positive.
//
// Complexity:
//
//	– Time:  O(E log V)
//	   • Each state is settled at most once (V extracts).
//	   • Each strict improvement pushes one heap entry (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance table, settled flags and parent sets.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– StartFacing: heading at the start cell (default East).
//	– Costs:       turn and step prices (default 1000 / 1).
//	– MaxCost:     optional cap; states costlier than this are not recorded.
//	– Ctx:         cancellation, checked between heap extractions.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrOptionViolation if an option carries an invalid value.
//	– ErrGridTooLarge    if 4·W·H exceeds math.MaxInt32.
//
// Example usage:
//
//	res, err := dijkstra.Solve(g, dijkstra.WithStartFacing(statespace.East))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cost, ok := res.MinCost(); ok {
//	    fmt.Println("best:", cost)
//	}
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/turnmaze/statespace"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrGridTooLarge indicates more than math.MaxInt32 states.
	ErrGridTooLarge = errors.New("dijkstra: grid has too many states")
)

// Options configures the behavior of Solve.
//
// StartFacing – heading of the walker on the start cell.
// Costs       – turn and step prices; Step must be > 0, Turn ≥ 0.
// MaxCost     – states whose cost would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Ctx         context.Context
	StartFacing statespace.Orientation
	Costs       statespace.Costs
	MaxCost     int64

	// err records the first invalid option; surfaced by Solve.
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:         context.Background()
//   - StartFacing: East
//   - Costs:       statespace.DefaultCosts()
//   - MaxCost:     math.MaxInt64 (explore everything reachable)
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		StartFacing: statespace.East,
		Costs:       statespace.DefaultCosts(),
		MaxCost:     math.MaxInt64,
	}
}

// fail records the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithContext sets a context checked between heap extractions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartFacing sets the heading on the start cell.
func WithStartFacing(f statespace.Orientation) Option {
	return func(o *Options) {
		if !f.Valid() {
			o.fail(fmt.Errorf("%w: start facing %v", ErrOptionViolation, f))
			return
		}
		o.StartFacing = f
	}
}

// WithCosts replaces both edge prices.
func WithCosts(c statespace.Costs) Option {
	return func(o *Options) {
		if err := c.Validate(); err != nil {
			o.fail(fmt.Errorf("%w: %v", ErrOptionViolation, err))
			return
		}
		o.Costs = c
	}
}

// WithTurnCost sets the price of one 90° turn. Must be ≥ 0.
func WithTurnCost(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: turn cost %d", ErrOptionViolation, n))
			return
		}
		o.Costs.Turn = n
	}
}

// WithStepCost sets the price of one forward step. Must be > 0, otherwise
// the parent graph could contain zero-cost cycles.
func WithStepCost(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail(fmt.Errorf("%w: step cost %d", ErrOptionViolation, n))
			return
		}
		o.Costs.Step = n
	}
}

// WithMaxCost caps exploration: no state costlier than max is recorded.
// An end cell beyond the cap is reported as unreachable.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(fmt.Errorf("%w: max cost %d", ErrOptionViolation, max))
			return
		}
		o.MaxCost = max
	}
}

// Stats reports work done by one Solve call.
type Stats struct {
	Settled int // states extracted and relaxed
	Pushes  int // heap insertions, including the start
	Stale   int // heap entries discarded on extraction
	Ties    int // equal-cost relaxations that grew a parent set
}
