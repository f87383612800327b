package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/internal/mazetest"
	"github.com/katalvlaran/turnmaze/pathset"
)

// randomGrid builds an n×n grid with roughly one wall in five tiles,
// keeping the corners free for S and E.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	start, end := gridgraph.Cell{X: 0, Y: n - 1}, gridgraph.Cell{X: n - 1, Y: 0}
	var walls []gridgraph.Cell
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			if c == start || c == end || rng.Intn(5) != 0 {
				continue
			}
			walls = append(walls, c)
		}
	}
	g, err := gridgraph.NewGrid(n, n, walls, start, end)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkSolve_Open measures Solve on an obstacle-free 300×300 grid.
// Complexity: O(V·logV), V = 4×W×H
func BenchmarkSolve_Open(b *testing.B) {
	g := mazetest.Open(b, 300, 300, gridgraph.Cell{X: 0, Y: 299}, gridgraph.Cell{X: 299, Y: 0})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Random measures Solve on a 300×300 grid with random walls.
func BenchmarkSolve_Random(b *testing.B) {
	g := randomGrid(b, 300)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyze measures search plus optimal-tile extraction.
func BenchmarkAnalyze(b *testing.B) {
	g := mazetest.Open(b, 200, 200, gridgraph.Cell{X: 0, Y: 199}, gridgraph.Cell{X: 199, Y: 0})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := dijkstra.Solve(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := pathset.Analyze(res); err != nil {
			b.Fatal(err)
		}
	}
}
