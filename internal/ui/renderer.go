package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kmarsden/mazeterm/internal/entity"
	"github.com/kmarsden/mazeterm/internal/maze"
)

// Renderer draws a maze to the screen.
//
// The maze maps onto a (2w+1) x (2h+1) character lattice: cells sit on odd
// screen coordinates, walls and corner posts on even ones. Only Size and
// IsWallEnabled are consulted, so the renderer works with any maze the core
// produces and never mutates it.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	floorStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)

	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Render draws the maze walls, the player marker, and the key help line.
func (r *Renderer) Render(m *maze.Maze, player *entity.Player) {
	r.screen.Clear()

	size := m.Size()

	// Corner posts at every even/even lattice point.
	for row := 0; row <= size.Height; row++ {
		for col := 0; col <= size.Width; col++ {
			r.screen.SetContent(col*2, row*2, '+', wallStyle)
		}
	}

	for row := 0; row < size.Height; row++ {
		for col := 0; col < size.Width; col++ {
			c := maze.Coord{Col: col, Row: row}
			x, y := col*2+1, row*2+1
			r.screen.SetContent(x, y, '.', floorStyle)

			if m.IsWallEnabled(c, maze.North) {
				r.screen.SetContent(x, y-1, '-', wallStyle)
			}
			if m.IsWallEnabled(c, maze.South) {
				r.screen.SetContent(x, y+1, '-', wallStyle)
			}
			if m.IsWallEnabled(c, maze.West) {
				r.screen.SetContent(x-1, y, '|', wallStyle)
			}
			if m.IsWallEnabled(c, maze.East) {
				r.screen.SetContent(x+1, y, '|', wallStyle)
			}
		}
	}

	r.screen.SetContent(player.Coord.Col*2+1, player.Coord.Row*2+1, player.Symbol, playerStyle)

	r.renderMessage("move: arrows/hjkl  new maze: r  quit: q", size.Height*2+2)

	r.screen.Show()
}

// renderMessage displays a message at the given screen row.
func (r *Renderer) renderMessage(msg string, y int) {
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, textStyle)
	}
}
