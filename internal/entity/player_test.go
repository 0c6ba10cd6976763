package entity

import (
	"testing"

	"github.com/kmarsden/mazeterm/internal/maze"
)

func TestPlayerMove(t *testing.T) {
	p := NewPlayer(maze.Coord{Col: 2, Row: 2})

	moves := []struct {
		dir  maze.Direction
		want maze.Coord
	}{
		{maze.North, maze.Coord{Col: 2, Row: 1}},
		{maze.East, maze.Coord{Col: 3, Row: 1}},
		{maze.South, maze.Coord{Col: 3, Row: 2}},
		{maze.West, maze.Coord{Col: 2, Row: 2}},
	}

	for _, m := range moves {
		p.Move(m.dir)
		if p.Coord != m.want {
			t.Errorf("after Move(%v): coord = %+v, want %+v", m.dir, p.Coord, m.want)
		}
	}
}
