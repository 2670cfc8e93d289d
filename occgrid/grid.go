package occgrid

// Build constructs a width×height Grid, asking state for the CellState of
// every cell in row-major order. Returns ErrBadDimensions for non-positive sizes.
// Complexity: O(W×H) time and memory.
func Build(width, height int, state func(c Cell) CellState) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{Width: width, Height: height, states: make([]CellState, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.states[g.index(x, y)] = state(Cell{X: x, Y: y})
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// State returns the state of c. Out-of-bounds cells report Unknown along
// with ok=false.
func (g *Grid) State(c Cell) (s CellState, ok bool) {
	if !g.InBounds(c) {
		return Unknown, false
	}

	return g.states[g.index(c.X, c.Y)], true
}

// IsObstacle reports whether c is in bounds and an Obstacle.
func (g *Grid) IsObstacle(c Cell) bool {
	s, ok := g.State(c)
	return ok && s == Obstacle
}

// Count returns how many cells hold state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, v := range g.states {
		if v == s {
			n++
		}
	}

	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Cell, s CellState)) {
	for i, s := range g.states {
		x, y := g.Coordinate(i)
		fn(Cell{X: x, Y: y}, s)
	}
}

// Neighbors8 returns the 8-connected offsets in search order:
// W, E, N, S, NW, SW, NE, SE. The slice is a fresh copy.
func Neighbors8() [][2]int {
	out := make([][2]int, len(neighbors8))
	copy(out, neighbors8[:])

	return out
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
