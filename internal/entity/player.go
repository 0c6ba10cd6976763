// Package entity provides the moving pieces of the viewer.
package entity

import "github.com/kmarsden/mazeterm/internal/maze"

// Player is the marker the user walks through the maze.
type Player struct {
	Coord  maze.Coord // Current cell
	Symbol rune       // Display symbol
}

// NewPlayer creates a player at the given cell.
func NewPlayer(c maze.Coord) *Player {
	return &Player{
		Coord:  c,
		Symbol: '@',
	}
}

// Move shifts the player one cell in the given direction. Whether the move is
// legal (no wall in the way) is the caller's decision.
func (p *Player) Move(d maze.Direction) {
	dcol, drow := d.Delta()
	p.Coord.Col += dcol
	p.Coord.Row += drow
}
