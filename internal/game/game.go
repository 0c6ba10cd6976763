// Package game provides the main event loop tying the maze to the terminal.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kmarsden/mazeterm/internal/entity"
	"github.com/kmarsden/mazeterm/internal/maze"
	"github.com/kmarsden/mazeterm/internal/telemetry"
	"github.com/kmarsden/mazeterm/internal/ui"
)

// Game owns the screen, the maze, and the player marker. After generation it
// touches the maze only through its read-only wall queries.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	maze     *maze.Maze
	player   *entity.Player
	running  bool
}

// New creates a game instance for the given configuration.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run generates the maze and executes the main event loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.regenerate(ctx, g.cfg.Seed)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	initSpan.SetAttributes(
		attribute.Int("maze.width", g.cfg.Width),
		attribute.Int("maze.height", g.cfg.Height),
		attribute.Int64("config.seed", g.cfg.Seed),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.maze, g.player)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// regenerate replaces the maze with a freshly carved one and puts the player
// back in the north-west corner.
func (g *Game) regenerate(ctx context.Context, seed int64) error {
	m, err := maze.Generate(ctx, maze.Size{Width: g.cfg.Width, Height: g.cfg.Height}, seed)
	if err != nil {
		return err
	}
	g.maze = m
	g.player = entity.NewPlayer(maze.Coord{})
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(maze.North)
	case tcell.KeyDown:
		g.tryMove(maze.South)
	case tcell.KeyLeft:
		g.tryMove(maze.West)
	case tcell.KeyRight:
		g.tryMove(maze.East)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'K':
			g.tryMove(maze.North)
		case 'j', 'J':
			g.tryMove(maze.South)
		case 'h', 'H':
			g.tryMove(maze.West)
		case 'l', 'L':
			g.tryMove(maze.East)
		case 'r', 'R':
			// Fresh clock-derived seed each press. The size was validated at
			// startup, so regeneration cannot fail.
			_ = g.regenerate(ctx, 0)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove moves the player one cell unless a wall blocks the way. Boundary
// sides always report a wall, so the player cannot leave the grid.
func (g *Game) tryMove(d maze.Direction) {
	if g.maze.IsWallEnabled(g.player.Coord, d) {
		return
	}
	g.player.Move(d)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
