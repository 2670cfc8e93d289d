package search

import (
	"fmt"

	"github.com/katalvlaran/senseplan/occgrid"
)

// PathCost recomputes the weighted length of path on g under the given
// options, checking every step against the same move rules FindPath uses.
// A single-cell path costs 0. Returns ErrNilGrid or a wrapped ErrBadPath.
func PathCost(g *occgrid.Grid, path []occgrid.Cell, opts ...Option) (float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return 0, ErrNilGrid
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	if !g.InBounds(path[0]) || g.IsObstacle(path[0]) {
		return 0, fmt.Errorf("%w: first cell %v is not traversable", ErrBadPath, path[0])
	}

	total := 0.0
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		if absInt(dx) > 1 || absInt(dy) > 1 || (dx == 0 && dy == 0) {
			return 0, fmt.Errorf("%w: %v → %v are not neighbors", ErrBadPath, a, b)
		}
		w, ok := moveCost(g, a, dx, dy, cfg)
		if !ok {
			return 0, fmt.Errorf("%w: illegal move %v → %v", ErrBadPath, a, b)
		}
		total += w
	}

	return total, nil
}
