package trajectory

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/spline"
)

// Smooth fits a smoothing spline through the cell centres of path, samples it
// and cuts the samples at the first one that falls in an Unknown cell
// (inclusive). Samples outside the grid never cause a cut.
//
// Paths of two or three cells are fitted with degree len(path)-1, giving the
// exact straight segment or quadratic arc through the centres.
//
// Preconditions (in order): g non-nil (ErrNilGrid), valid SampleCount
// (ErrBadSampleCount) and Smoothness (ErrBadSmoothness), at least two cells
// (ErrTooFewPoints), every cell in bounds (ErrCellOutOfBounds), no cell
// repeated consecutively (ErrDegeneratePath).
func Smooth(path []occgrid.Cell, g *occgrid.Grid, opts ...Option) (*Trajectory, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.SampleCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleCount, cfg.SampleCount)
	}
	if math.IsNaN(cfg.Smoothness) || cfg.Smoothness < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadSmoothness, cfg.Smoothness)
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(path))
	}

	centres := make([]spline.Point, len(path))
	for i, c := range path {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v at index %d", ErrCellOutOfBounds, c, i)
		}
		if i > 0 && c == path[i-1] {
			return nil, fmt.Errorf("%w: %v at index %d", ErrDegeneratePath, c, i)
		}
		x, y := c.Center()
		centres[i] = spline.Point{X: x, Y: y}
	}

	degree := cfg.Degree
	if degree > len(path)-1 {
		degree = len(path) - 1
	}
	curve, err := spline.Fit(centres, cfg.Smoothness, degree)
	if err != nil {
		if errors.Is(err, spline.ErrDuplicatePoint) {
			return nil, fmt.Errorf("%w: %v", ErrDegeneratePath, err)
		}
		return nil, fmt.Errorf("trajectory: fit failed: %w", err)
	}

	samples := curve.Sample(cfg.SampleCount)
	traj := &Trajectory{Points: samples, Curve: curve}
	if i, cell, ok := FirstUnknown(samples, g); ok {
		traj.Points = samples[:i+1]
		traj.Truncated = true
		traj.StopCell = cell
	}

	return traj, nil
}

// FirstUnknown returns the index of the first point whose enclosing cell is
// in bounds and Unknown, together with that cell.
func FirstUnknown(points []spline.Point, g *occgrid.Grid) (int, occgrid.Cell, bool) {
	for i, p := range points {
		c := Enclosing(p)
		if s, ok := g.State(c); ok && s == occgrid.Unknown {
			return i, c, true
		}
	}

	return -1, occgrid.Cell{}, false
}

// Enclosing maps a continuous point to the cell that contains it.
func Enclosing(p spline.Point) occgrid.Cell {
	return occgrid.Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
