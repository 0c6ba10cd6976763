package maze

// Cell tracks which of its four sides currently has a wall. Cells are owned
// by the Maze and reached only through its indexing; mutations that must stay
// symmetric with a neighbor go through the Maze API, not the cell itself.
type Cell struct {
	walls [len(Directions)]bool
}

// EnableWall raises the wall on the given side. Idempotent.
func (c *Cell) EnableWall(d Direction) {
	c.walls[d] = true
}

// DisableWall opens the wall on the given side. Idempotent.
func (c *Cell) DisableWall(d Direction) {
	c.walls[d] = false
}

// IsWallEnabled reports whether the given side has a wall.
func (c *Cell) IsWallEnabled(d Direction) bool {
	return c.walls[d]
}
