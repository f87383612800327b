// Command turnmaze solves turn-penalised mazes: it reports the cheapest
// route cost from S to E and how many tiles lie on any cheapest route.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoSolution) {
			fmt.Fprintln(os.Stderr, "turnmaze:", err)
		}
		os.Exit(1)
	}
}
