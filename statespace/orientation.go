package statespace

import (
	"fmt"
	"strings"
)

// Orientation is one of the four headings, in the cyclic order
// North, West, South, East. Adjacent values differ by one 90° turn.
type Orientation uint8

const (
	North Orientation = iota
	West
	South
	East
)

// numOrientations is the size of the orientation cycle.
const numOrientations = 4

// orientations lists every heading in cyclic order.
var orientations = [numOrientations]Orientation{North, West, South, East}

// unit steps per orientation; Y grows to the South.
var deltas = [numOrientations][2]int{
	North: {0, -1},
	West:  {-1, 0},
	South: {0, 1},
	East:  {1, 0},
}

var names = [numOrientations]string{
	North: "north",
	West:  "west",
	South: "south",
	East:  "east",
}

// All returns the four orientations in cyclic order.
func All() [4]Orientation { return orientations }

// Valid reports whether o is one of the four headings.
func (o Orientation) Valid() bool { return o < numOrientations }

// Turns returns the minimum number of 90° turns (0, 1 or 2) to face b from a.
func Turns(a, b Orientation) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	if d == 3 {
		return 1
	}
	return d
}

// rotate steps o by k positions along the cycle.
func (o Orientation) rotate(k int) Orientation {
	return orientations[((int(o)+k)%numOrientations+numOrientations)%numOrientations]
}

// Left returns the heading after a counter-clockwise quarter turn.
func (o Orientation) Left() Orientation { return o.rotate(1) }

// Right returns the heading after a clockwise quarter turn.
func (o Orientation) Right() Orientation { return o.rotate(-1) }

// Reverse returns the opposite heading.
func (o Orientation) Reverse() Orientation { return o.rotate(2) }

// Delta returns the unit step (dx, dy) of o.
func (o Orientation) Delta() (dx, dy int) {
	d := deltas[o]
	return d[0], d[1]
}

func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
	return names[o]
}

// ParseOrientation accepts a heading name or its initial, case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range orientations {
		if s == names[o] || (len(s) == 1 && s[0] == names[o][0]) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadOrientation, s)
}
