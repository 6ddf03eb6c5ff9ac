package gridgraph

import "fmt"

// Direction is one of the four orthogonal headings, in clockwise order.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// numDirections is the size of the heading cycle.
const numDirections = 4

// Directions lists every heading in clockwise order starting at North.
// Neighbour enumeration everywhere in gridwalk follows this order.
var Directions = [numDirections]Direction{North, East, South, West}

// Delta returns the (row, col) offset of a single step in direction d.
func (d Direction) Delta() Position {
	switch d {
	case North:
		return Position{Row: -1}
	case East:
		return Position{Col: 1}
	case South:
		return Position{Row: 1}
	case West:
		return Position{Col: -1}
	}
	panic(fmt.Sprintf("gridgraph: invalid direction %d", d))
}

// TurnRight returns the heading 90° clockwise from d.
func (d Direction) TurnRight() Direction {
	return (d + 1) % numDirections
}

// TurnLeft returns the heading 90° counter-clockwise from d.
func (d Direction) TurnLeft() Direction {
	return (d + numDirections - 1) % numDirections
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) % numDirections
}

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Rotations returns the minimal number of 90° turns needed to face other
// from d: min(forward, backward) around the cycle, so never more than 2.
func (d Direction) Rotations(other Direction) int {
	forward := int((other + numDirections - d) % numDirections)
	backward := int((d + numDirections - other) % numDirections)
	return min(forward, backward)
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Arrow returns the move symbol for d: ^ > v <.
func (d Direction) Arrow() byte {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	panic(fmt.Sprintf("gridgraph: invalid direction %d", d))
}

// ParseDirection maps a move symbol (^ > v <) to its Direction.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case '^':
		return North, nil
	case '>':
		return East, nil
	case 'v':
		return South, nil
	case '<':
		return West, nil
	}
	return 0, fmt.Errorf("gridgraph: invalid move symbol %q", c)
}
