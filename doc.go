// Package turnmaze finds cheapest routes through mazes where turning costs
// far more than walking.
//
// A walker stands on a tile and faces one of four headings. Stepping forward
// costs 1, a quarter turn costs 1000 and reversing in place is not a move.
// The search therefore runs over (tile, heading) states, not tiles.
//
// Subpackages:
//
//	gridgraph/   immutable wall grid, map parsing, reachability checks
//	statespace/  headings, turn arithmetic, transition generation
//	dijkstra/    cheapest cost per state with every optimal predecessor
//	pathset/     backward walk over predecessors, optimal-tile counting
//	render/      ASCII and PNG overlays of the optimal tiles
//	config/      YAML, .env and environment settings for the CLI
//
// Quick start:
//
//	g, _ := gridgraph.ParseString(maze)
//	res, _ := dijkstra.Solve(g)
//	sum, _ := pathset.Analyze(res)
//	fmt.Println(sum.Cost, sum.Tiles)
//
// The turnmaze command (cmd/turnmaze) wraps the same pipeline.
package turnmaze
