// Package mazetest holds map fixtures shared by the package tests.
package mazetest

import (
	"testing"

	"github.com/katalvlaran/turnmaze/gridgraph"
)

// Fixture is a map with its known answers.
type Fixture struct {
	Name  string
	Map   string
	Cost  int64
	Tiles int
}

// Reindeer is the small reference maze: best cost 7036, 45 optimal tiles.
var Reindeer = Fixture{
	Name: "reindeer",
	Map: "" +
		"###############\n" +
		"#.......#....E#\n" +
		"#.#.###.#.###.#\n" +
		"#.....#.#...#.#\n" +
		"#.###.#####.#.#\n" +
		"#.#.#.......#.#\n" +
		"#.#.#####.###.#\n" +
		"#...........#.#\n" +
		"###.#.#####.#.#\n" +
		"#...#.....#.#.#\n" +
		"#.#.#.###.#.#.#\n" +
		"#.....#...#.#.#\n" +
		"#.###.#.#.#.#.#\n" +
		"#S..#.....#...#\n" +
		"###############\n",
	Cost:  7036,
	Tiles: 45,
}

// Corridors is the larger reference maze: best cost 11048, 64 optimal tiles.
var Corridors = Fixture{
	Name: "corridors",
	Map: "" +
		"#################\n" +
		"#...#...#...#..E#\n" +
		"#.#.#.#.#.#.#.#.#\n" +
		"#.#.#.#...#...#.#\n" +
		"#.#.#.#.###.#.#.#\n" +
		"#...#.#.#.....#.#\n" +
		"#.#.#.#.#.#####.#\n" +
		"#.#...#.#.#.....#\n" +
		"#.#.#####.#.###.#\n" +
		"#.#.#.......#...#\n" +
		"#.#.###.#####.###\n" +
		"#.#.#...#.....#.#\n" +
		"#.#.#.#####.###.#\n" +
		"#.#.#.........#.#\n" +
		"#.#.#.#########.#\n" +
		"#S#.............#\n" +
		"#################\n",
	Cost:  11048,
	Tiles: 64,
}

// Twin has two mirror-image routes of equal cost around a central wall:
// 3006 each, 7 cells each, 12 distinct cells together.
var Twin = Fixture{
	Name: "twin",
	Map: "" +
		"#######\n" +
		"#.....#\n" +
		"#S###E#\n" +
		"#.....#\n" +
		"#######\n",
	Cost:  3006,
	Tiles: 12,
}

// Merge joins the two Twin routes again before the end, so one state
// holds two tied parents: 4008, 14 distinct cells.
var Merge = Fixture{
	Name: "merge",
	Map: "" +
		"#########\n" +
		"#.....###\n" +
		"#S###..E#\n" +
		"#.....###\n" +
		"#########\n",
	Cost:  4008,
	Tiles: 14,
}

// Sealed has its end cell enclosed by walls.
const Sealed = "" +
	"S...\n" +
	".###\n" +
	".#E#\n" +
	".###\n"

// Known lists the fixtures with a solution.
var Known = []Fixture{Reindeer, Corridors, Twin, Merge}

// MustParse parses m or fails the test.
func MustParse(tb testing.TB, m string) *gridgraph.Grid {
	tb.Helper()
	g, err := gridgraph.ParseString(m)
	if err != nil {
		tb.Fatalf("parse map: %v", err)
	}
	return g
}

// Open returns an obstacle-free w×h grid.
func Open(tb testing.TB, w, h int, start, end gridgraph.Cell) *gridgraph.Grid {
	tb.Helper()
	g, err := gridgraph.NewGrid(w, h, nil, start, end)
	if err != nil {
		tb.Fatalf("open grid: %v", err)
	}
	return g
}
