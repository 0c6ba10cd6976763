// Package maze provides the maze grid and its generation algorithm.
package maze

// Direction identifies one side of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in a stable order, for iteration.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the direction facing back at this one.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the column and row offsets of the adjacent cell in this
// direction. Rows grow southward.
func (d Direction) Delta() (dcol, drow int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
