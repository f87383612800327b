// Package dijkstra_test provides examples demonstrating how to use Solve.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/statespace"
)

// ExampleSolve demonstrates the cost of one turn on an open corridor map.
// Complexity: O(E log V) with V = 4·W·H states.
func ExampleSolve() {
	// 1) Parse a map: the end is straight below the start, which faces East.
	g, err := gridgraph.ParseString("" +
		"S..\n" +
		"...\n" +
		"E..\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve with the default prices (turn 1000, step 1).
	res, err := dijkstra.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) One turn south plus two steps.
	cost, ok := res.MinCost()
	fmt.Println(cost, ok)
	// Output: 1002 true
}

// ExampleSolve_unreachable shows the explicit "no solution" signal.
func ExampleSolve_unreachable() {
	g, _ := gridgraph.ParseString("S#E\n")
	res, _ := dijkstra.Solve(g)

	_, ok := res.MinCost()
	fmt.Println("reachable:", ok)
	// Output: reachable: false
}

// ExampleWithTurnCost shows how cheap turns change the preferred heading.
func ExampleWithTurnCost() {
	g, _ := gridgraph.ParseString("" +
		"S..\n" +
		"..E\n")
	res, _ := dijkstra.Solve(g,
		dijkstra.WithTurnCost(0),
		dijkstra.WithStartFacing(statespace.North),
	)
	cost, _ := res.MinCost()
	fmt.Println(cost, len(res.EndStates()))
	// Output: 3 2
}
