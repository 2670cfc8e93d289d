package occgrid

import "fmt"

// NewRaw constructs a Raw map from a non-empty, rectangular 2D slice
// indexed values[y][x]. Cells with value ≥ opts.ObstacleThreshold are obstacles.
// The input is copied; later changes to values do not affect the map.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewRaw(values [][]int, opts RawOptions) (*Raw, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	r := &Raw{Width: w, Height: h, blocked: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.blocked[y*w+x] = values[y][x] >= opts.ObstacleThreshold
		}
	}

	return r, nil
}

// FromObstacles builds a width×height Raw map where exactly the listed cells
// are obstacles. Returns ErrBadDimensions for non-positive sizes and
// ErrOutOfBounds if any cell lies outside the map.
func FromObstacles(width, height int, obstacles []Cell) (*Raw, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	r := &Raw{Width: width, Height: height, blocked: make([]bool, width*height)}
	for _, c := range obstacles {
		if !r.InBounds(c) {
			return nil, fmt.Errorf("%w: obstacle %v in %dx%d map", ErrOutOfBounds, c, width, height)
		}
		r.blocked[c.Y*width+c.X] = true
	}

	return r, nil
}

// InBounds reports whether c lies within the map.
func (r *Raw) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < r.Width && c.Y >= 0 && c.Y < r.Height
}

// Blocked reports whether c is an obstacle. Out-of-bounds cells are not blocked.
func (r *Raw) Blocked(c Cell) bool {
	if !r.InBounds(c) {
		return false
	}

	return r.blocked[c.Y*r.Width+c.X]
}
