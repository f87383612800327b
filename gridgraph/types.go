// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/turnmaze.
package gridgraph

import "fmt"

// Tile characters understood by Parse and produced by Grid.String.
const (
	TileWall  = '#'
	TileFloor = '.'
	TileStart = 'S'
	TileEnd   = 'E'
)

// Cell is an integer grid coordinate. X grows to the right (East),
// Y grows downwards (South), matching the line/column order of the map text.
type Cell struct {
	X, Y int
}

// Add returns the cell displaced by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Less orders cells lexically by row, then column.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable rectangular maze: a wall mask plus start and end
// cells. Build it with NewGrid or Parse; it is never mutated afterwards and
// may be shared freely between concurrent readers.
type Grid struct {
	width, height int
	walls         []bool // row-major, len == width*height
	start, end    Cell
}
