package statespace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnmaze/gridgraph"
	ss "github.com/katalvlaran/turnmaze/statespace"
)

func TestTurns(t *testing.T) {
	cases := []struct {
		a, b ss.Orientation
		want int
	}{
		{ss.North, ss.North, 0},
		{ss.North, ss.West, 1},
		{ss.North, ss.East, 1},
		{ss.North, ss.South, 2},
		{ss.East, ss.West, 2},
		{ss.East, ss.South, 1},
		{ss.West, ss.South, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ss.Turns(tc.a, tc.b), "Turns(%v,%v)", tc.a, tc.b)
		assert.Equal(t, tc.want, ss.Turns(tc.b, tc.a), "Turns must be symmetric")
	}
}

func TestRotation(t *testing.T) {
	for _, o := range ss.All() {
		assert.Equal(t, o, o.Left().Right(), "Left then Right of %v", o)
		assert.Equal(t, o, o.Reverse().Reverse(), "double Reverse of %v", o)
		assert.Equal(t, o.Reverse(), o.Left().Left(), "two Lefts of %v", o)
		assert.Equal(t, 1, ss.Turns(o, o.Left()))
		assert.Equal(t, 2, ss.Turns(o, o.Reverse()))

		dx, dy := o.Delta()
		rx, ry := o.Reverse().Delta()
		assert.Equal(t, [2]int{-dx, -dy}, [2]int{rx, ry}, "Reverse of %v must negate the step", o)
	}
	assert.Equal(t, ss.West, ss.North.Left())
	assert.Equal(t, ss.East, ss.North.Right())
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]ss.Orientation{
		"north": ss.North, "W": ss.West, " South ": ss.South, "e": ss.East,
	} {
		got, err := ss.ParseOrientation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ss.ParseOrientation("up")
	assert.ErrorIs(t, err, ss.ErrBadOrientation)
	assert.Equal(t, "Orientation(9)", ss.Orientation(9).String())
}

func TestCostsValidate(t *testing.T) {
	assert.NoError(t, ss.DefaultCosts().Validate())
	assert.NoError(t, ss.Costs{Turn: 0, Step: 1}.Validate())
	assert.ErrorIs(t, ss.Costs{Turn: 1000, Step: 0}.Validate(), ss.ErrBadCosts)
	assert.ErrorIs(t, ss.Costs{Turn: -1, Step: 1}.Validate(), ss.ErrBadCosts)

	// one turn plus one step must not wrap
	assert.NoError(t, ss.Costs{Turn: math.MaxInt64 - 1, Step: 1}.Validate())
	assert.ErrorIs(t, ss.Costs{Turn: math.MaxInt64, Step: 1}.Validate(), ss.ErrBadCosts)
	assert.ErrorIs(t, ss.Costs{Turn: 2, Step: math.MaxInt64 - 1}.Validate(), ss.ErrBadCosts)
}

// open 3×3 grid, the walker in the centre.
func TestNeighbors_Open(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3, nil, gridgraph.Cell{}, gridgraph.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	mid := gridgraph.Cell{X: 1, Y: 1}

	got := ss.Neighbors(g, ss.State{Cell: mid, Facing: ss.East}, ss.DefaultCosts(), nil)
	want := []ss.Transition{
		{To: ss.State{Cell: gridgraph.Cell{X: 1, Y: 0}, Facing: ss.North}, Cost: 1001},
		{To: ss.State{Cell: gridgraph.Cell{X: 1, Y: 2}, Facing: ss.South}, Cost: 1001},
		{To: ss.State{Cell: gridgraph.Cell{X: 2, Y: 1}, Facing: ss.East}, Cost: 1},
	}
	assert.ElementsMatch(t, want, got)
	for _, tr := range got {
		assert.NotEqual(t, ss.West, tr.To.Facing, "reversal must never be an edge")
	}
}

func TestNeighbors_WallsAndBounds(t *testing.T) {
	// .#
	// ..
	g, err := gridgraph.NewGrid(2, 2, []gridgraph.Cell{{X: 1, Y: 0}}, gridgraph.Cell{}, gridgraph.Cell{X: 1, Y: 1})
	require.NoError(t, err)

	got := ss.Neighbors(g, ss.State{Cell: gridgraph.Cell{}, Facing: ss.East}, ss.DefaultCosts(), nil)
	require.Len(t, got, 1)
	assert.Equal(t, ss.State{Cell: gridgraph.Cell{X: 0, Y: 1}, Facing: ss.South}, got[0].To)
	assert.Equal(t, int64(1001), got[0].Cost)

	// Facing into a dead end leaves nowhere to go: reversing is not a move.
	got = ss.Neighbors(g, ss.State{Cell: gridgraph.Cell{X: 1, Y: 1}, Facing: ss.East}, ss.DefaultCosts(), got[:0])
	assert.Len(t, got, 0)
}

func TestNeighbors_CustomCosts(t *testing.T) {
	g, _ := gridgraph.NewGrid(2, 2, nil, gridgraph.Cell{}, gridgraph.Cell{X: 1, Y: 1})
	got := ss.Neighbors(g, ss.State{Facing: ss.East}, ss.Costs{Turn: 7, Step: 3}, nil)
	assert.ElementsMatch(t, []ss.Transition{
		{To: ss.State{Cell: gridgraph.Cell{X: 1, Y: 0}, Facing: ss.East}, Cost: 3},
		{To: ss.State{Cell: gridgraph.Cell{X: 0, Y: 1}, Facing: ss.South}, Cost: 10},
	}, got)
}
