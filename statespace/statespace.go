// Package statespace expands maze positions into the augmented
// (cell, orientation) state graph searched by the solver.
//
// A State is a cell together with the heading the walker faces. Every edge
// is one forward step, optionally preceded by a single quarter turn:
//
//	cost = Costs.Turn × turns + Costs.Step
//
// A 180° reversal never appears as an edge: turning around can not shorten
// a route when every turn is charged, so at most three transitions leave a
// state. Pure turns without a step are not modelled either.
package statespace

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/turnmaze/gridgraph"
)

// Default edge prices.
const (
	DefaultTurnCost int64 = 1000
	DefaultStepCost int64 = 1
)

var (
	// ErrBadOrientation is returned for an unknown heading name.
	ErrBadOrientation = errors.New("statespace: unknown orientation")

	// ErrBadCosts indicates a non-positive step cost, a negative turn cost,
	// or a pair whose single-edge price overflows int64.
	ErrBadCosts = errors.New("statespace: step cost must be positive, turn cost non-negative, and turn+step must fit in int64")
)

// State is a position plus heading. Two states are equal only if both
// fields are equal.
type State struct {
	Cell   gridgraph.Cell
	Facing Orientation
}

func (s State) String() string {
	return fmt.Sprintf("%v/%v", s.Cell, s.Facing)
}

// Costs prices the two components of a move.
type Costs struct {
	Turn int64 // per 90° turn
	Step int64 // per forward step
}

// DefaultCosts returns {Turn: 1000, Step: 1}.
func DefaultCosts() Costs {
	return Costs{Turn: DefaultTurnCost, Step: DefaultStepCost}
}

// Validate checks that every edge weight is strictly positive and that the
// dearest edge, one quarter turn plus one step, fits in int64.
func (c Costs) Validate() error {
	if c.Step <= 0 || c.Turn < 0 || c.Turn > math.MaxInt64-c.Step {
		return fmt.Errorf("%w: turn=%d step=%d", ErrBadCosts, c.Turn, c.Step)
	}
	return nil
}

// Transition is an outgoing edge of the state graph.
type Transition struct {
	To   State
	Cost int64
}

// Neighbors appends to dst the valid transitions leaving s and returns the
// extended slice. Candidates are all headings except the reversal of
// s.Facing; a candidate is dropped when the cell one step ahead is a wall or
// off the grid. At most three transitions are appended.
//
// Complexity: O(1).
func Neighbors(g *gridgraph.Grid, s State, c Costs, dst []Transition) []Transition {
	for _, d := range orientations {
		turns := Turns(s.Facing, d)
		if turns == 2 {
			continue
		}
		dx, dy := d.Delta()
		next := s.Cell.Add(dx, dy)
		if !g.Passable(next) {
			continue
		}
		dst = append(dst, Transition{
			To:   State{Cell: next, Facing: d},
			Cost: c.Turn*int64(turns) + c.Step,
		})
	}

	return dst
}
