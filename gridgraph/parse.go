package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a line-based character map and builds a Grid.
//
// Alphabet: '#' wall, '.' floor, 'S' start, 'E' end. Every non-blank line is
// one row and all rows must have the same length. Trailing carriage returns
// and blank lines before or after the map are ignored; a blank line inside
// the map is a ragged row.
//
// Errors are sentinel values wrapped with line/column context:
// ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile, ErrMissingStart,
// ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows       []string
		walls      []Cell
		start, end Cell
		haveStart  bool
		haveEnd    bool
		width      int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	// skipped counts leading blank lines so errors keep input line numbers.
	skipped := 0
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
		skipped++
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width = len(rows[0])

	for y, line := range rows {
		lineNo := y + skipped + 1
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d tiles, want %d", ErrNonRectangular, lineNo, len(line), width)
		}
		for x := 0; x < len(line); x++ {
			c := Cell{X: x, Y: y}
			switch line[x] {
			case TileWall:
				walls = append(walls, c)
			case TileFloor:
			case TileStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at line %d column %d", ErrDuplicateStart, lineNo, x+1)
				}
				start, haveStart = c, true
			case TileEnd:
				if haveEnd {
					return nil, fmt.Errorf("%w: second end at line %d column %d", ErrDuplicateEnd, lineNo, x+1)
				}
				end, haveEnd = c, true
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownTile, line[x], lineNo, x+1)
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return NewGrid(width, len(rows), walls, start, end)
}

// ParseString is Parse over an in-memory map.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
