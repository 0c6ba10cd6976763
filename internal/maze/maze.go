package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a non-positive maze dimension.
var ErrInvalidSize = errors.New("maze: width and height must be positive")

// Size holds the fixed dimensions of a maze, in cells.
type Size struct {
	Width  int
	Height int
}

// Coord addresses a cell as (column, row), with (0, 0) the north-west corner.
type Coord struct {
	Col int
	Row int
}

// Neighbor pairs an in-bounds adjacent coordinate with the direction, from
// the current cell's perspective, that points toward it.
type Neighbor struct {
	Coord     Coord
	Direction Direction
}

// Maze owns a rectangular grid of cells and keeps two invariants: adjacent
// cells always agree on the state of their shared wall, and the outer
// boundary is permanently walled. All wall access goes through coordinate and
// direction so both sides of a shared wall are updated together.
type Maze struct {
	size  Size
	cells []Cell // row-major, index = Row*Width + Col
}

// New builds a maze of the given size with every boundary wall enabled and
// all interior walls open. Returns ErrInvalidSize for non-positive
// dimensions.
func New(size Size) (*Maze, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, size.Width, size.Height)
	}

	m := &Maze{
		size:  size,
		cells: make([]Cell, size.Width*size.Height),
	}
	for row := 0; row < size.Height; row++ {
		for col := 0; col < size.Width; col++ {
			c := Coord{Col: col, Row: row}
			for _, d := range Directions {
				if m.isBoundary(c, d) {
					m.cellAt(c).EnableWall(d)
				}
			}
		}
	}
	return m, nil
}

// Size returns the maze dimensions.
func (m *Maze) Size() Size {
	return m.size
}

// InBounds reports whether c addresses a cell inside the grid.
func (m *Maze) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < m.size.Width && c.Row >= 0 && c.Row < m.size.Height
}

func (m *Maze) cellAt(c Coord) *Cell {
	return &m.cells[c.Row*m.size.Width+c.Col]
}

// isBoundary reports whether the given side of the cell at c faces out of the
// grid. Each side is tested against its own axis bound.
func (m *Maze) isBoundary(c Coord, d Direction) bool {
	switch d {
	case North:
		return c.Row == 0
	case East:
		return c.Col == m.size.Width-1
	case South:
		return c.Row == m.size.Height-1
	case West:
		return c.Col == 0
	default:
		return false
	}
}

// Neighbors returns every in-bounds cell adjacent to c, each paired with the
// direction pointing toward it.
func (m *Maze) Neighbors(c Coord) []Neighbor {
	neighbors := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		dcol, drow := d.Delta()
		n := Coord{Col: c.Col + dcol, Row: c.Row + drow}
		if m.InBounds(n) {
			neighbors = append(neighbors, Neighbor{Coord: n, Direction: d})
		}
	}
	return neighbors
}

// IsWallEnabled reports whether the wall on the given side of the cell at c
// is present. Boundary sides always report true.
func (m *Maze) IsWallEnabled(c Coord, d Direction) bool {
	if m.isBoundary(c, d) {
		return true
	}
	return m.cellAt(c).IsWallEnabled(d)
}

// EnableWall raises the wall on the given side of the cell at c, together
// with the matching wall on the adjacent cell. Boundary sides are a no-op;
// they are already permanently walled.
func (m *Maze) EnableWall(c Coord, d Direction) {
	m.setWall(c, d, true)
}

// DisableWall opens the wall on the given side of the cell at c, together
// with the matching wall on the adjacent cell. Boundary sides are a no-op.
func (m *Maze) DisableWall(c Coord, d Direction) {
	m.setWall(c, d, false)
}

func (m *Maze) setWall(c Coord, d Direction, enabled bool) {
	if !m.InBounds(c) || m.isBoundary(c, d) {
		return
	}

	// A non-boundary side always has an in-bounds neighbor.
	dcol, drow := d.Delta()
	n := Coord{Col: c.Col + dcol, Row: c.Row + drow}
	if enabled {
		m.cellAt(c).EnableWall(d)
		m.cellAt(n).EnableWall(d.Opposite())
	} else {
		m.cellAt(c).DisableWall(d)
		m.cellAt(n).DisableWall(d.Opposite())
	}
}

// EnableAllWalls raises every interior wall in the grid.
func (m *Maze) EnableAllWalls() {
	m.setAllWalls(true)
}

// DisableAllWalls opens every interior wall in the grid. Boundary walls stay
// up.
func (m *Maze) DisableAllWalls() {
	m.setAllWalls(false)
}

func (m *Maze) setAllWalls(enabled bool) {
	for row := 0; row < m.size.Height; row++ {
		for col := 0; col < m.size.Width; col++ {
			for _, d := range Directions {
				m.setWall(Coord{Col: col, Row: row}, d, enabled)
			}
		}
	}
}
