// Package gridgraph provides the immutable maze model consumed by the
// solver: an obstacle mask over a rectangular map with a start and an end
// cell. It supports:
//
//   - O(1) wall and bounds queries
//   - Row-major indexing of cells for arena-style state tables
//   - Parsing from, and rendering to, the line-based ASCII map format
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid of the given size. The walls slice is copied,
// so later changes by the caller do not affect the Grid.
// Returns ErrEmptyGrid if width or height is not positive,
// ErrOutOfBounds if any wall, start or end lies outside the grid,
// ErrBlockedEndpoint if start or end is itself a wall.
// Complexity: O(W×H + len(walls)) time and memory.
func NewGrid(width, height int, walls []Cell, start, end Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		width:  width,
		height: height,
		walls:  make([]bool, width*height),
		start:  start,
		end:    end,
	}
	for _, c := range walls {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: wall %v in %dx%d grid", ErrOutOfBounds, c, width, height)
		}
		g.walls[g.Index(c)] = true
	}
	for _, c := range [2]Cell{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: endpoint %v in %dx%d grid", ErrOutOfBounds, c, width, height)
		}
		if g.walls[g.Index(c)] {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	return g, nil
}

// IsWall reports whether c is marked impassable.
// Cells outside the grid are not walls; check InBounds separately.
// Complexity: O(1).
func (g *Grid) IsWall(c Cell) bool {
	return g.InBounds(c) && g.walls[g.Index(c)]
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Passable reports whether c is inside the grid and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.walls[g.Index(c)]
}

// Bounds returns the grid dimensions.
func (g *Grid) Bounds() (width, height int) {
	return g.width, g.height
}

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the end cell.
func (g *Grid) End() Cell { return g.end }

// Len returns the number of cells, width*height.
func (g *Grid) Len() int { return g.width * g.height }

// Index maps c to its row-major index: y*width + x.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}

// Walls returns the wall cells in row-major order.
func (g *Grid) Walls() []Cell {
	var out []Cell
	for i, w := range g.walls {
		if w {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// WithWalls returns a new Grid identical to g with the extra cells walled.
// Endpoints cannot be walled (ErrBlockedEndpoint).
func (g *Grid) WithWalls(extra ...Cell) (*Grid, error) {
	return NewGrid(g.width, g.height, append(g.Walls(), extra...), g.start, g.end)
}

// String renders the grid in the map format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.tileAt(Cell{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// tileAt returns the map character for c.
func (g *Grid) tileAt(c Cell) rune {
	switch {
	case c == g.start:
		return TileStart
	case c == g.end:
		return TileEnd
	case g.walls[g.Index(c)]:
		return TileWall
	default:
		return TileFloor
	}
}
