package maze

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kmarsden/mazeterm/internal/telemetry"
)

// Generator carves a perfect maze into an existing grid using randomized
// depth-first backtracking. It keeps transient state only: the set of cells
// not yet visited and the stack recording the current depth-first path. Both
// are rebuilt on every run.
type Generator struct {
	maze      *Maze
	rng       *rand.Rand
	seed      int64
	unvisited map[Coord]struct{}
	pathStack []Coord
}

// NewGenerator wraps m with generator state. A seed of 0 means one is derived
// from the wall clock; any other value makes generation fully deterministic
// for a given grid size.
func NewGenerator(m *Maze, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		maze: m,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this generator runs with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate resets the grid to fully walled, then carves passages until every
// cell has been visited. The carved passages form a spanning tree over the
// grid, so the result is a perfect maze: exactly one path between any two
// cells. Safe to call again; each run starts over from a fully-walled grid.
func (g *Generator) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()
	size := g.maze.Size()

	g.maze.EnableAllWalls()
	g.pathStack = g.pathStack[:0]
	g.unvisited = make(map[Coord]struct{}, size.Width*size.Height)
	for row := 0; row < size.Height; row++ {
		for col := 0; col < size.Width; col++ {
			g.unvisited[Coord{Col: col, Row: row}] = struct{}{}
		}
	}

	carved := 0
	current := Coord{}
	delete(g.unvisited, current)

	for len(g.pathStack) > 0 || len(g.unvisited) > 0 {
		next, ok := g.pickUnvisitedNeighbor(current)
		if !ok {
			// Dead end: backtrack one step along the carved path.
			current = g.pathStack[len(g.pathStack)-1]
			g.pathStack = g.pathStack[:len(g.pathStack)-1]
			continue
		}

		g.maze.DisableWall(current, next.Direction)
		carved++
		g.pathStack = append(g.pathStack, current)
		current = next.Coord
		delete(g.unvisited, current)
	}

	span.SetAttributes(
		attribute.String("maze.generation_id", uuid.NewString()),
		attribute.Int("maze.width", size.Width),
		attribute.Int("maze.height", size.Height),
		attribute.Int64("maze.seed", g.seed),
		attribute.Int("maze.passages_carved", carved),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// pickUnvisitedNeighbor chooses uniformly at random among the not-yet-visited
// neighbors of c. Returns false when every neighbor has been visited.
func (g *Generator) pickUnvisitedNeighbor(c Coord) (Neighbor, bool) {
	candidates := make([]Neighbor, 0, len(Directions))
	for _, n := range g.maze.Neighbors(c) {
		if _, ok := g.unvisited[n.Coord]; ok {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return Neighbor{}, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

// Generate builds a maze of the given size and carves it in one call. This is
// the entry point for callers that do not need the generator itself.
func Generate(ctx context.Context, size Size, seed int64) (*Maze, error) {
	m, err := New(size)
	if err != nil {
		return nil, err
	}
	NewGenerator(m, seed).Generate(ctx)
	return m, nil
}
