// Package trajectory defines options, results, and sentinel errors for
// turning a discrete grid path into a smooth, knowledge-bounded trajectory.
package trajectory

import (
	"errors"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/spline"
)

// Sentinel errors returned by Smooth.
var (
	// ErrNilGrid indicates that a nil *occgrid.Grid was passed.
	ErrNilGrid = errors.New("trajectory: grid is nil")
	// ErrTooFewPoints indicates a path with fewer than two cells.
	ErrTooFewPoints = errors.New("trajectory: path needs at least two cells")
	// ErrDegeneratePath indicates consecutive repeated cells in the path.
	ErrDegeneratePath = errors.New("trajectory: path repeats a cell consecutively")
	// ErrCellOutOfBounds indicates a path cell outside the grid.
	ErrCellOutOfBounds = errors.New("trajectory: path cell out of bounds")
	// ErrBadSampleCount indicates a sample count below 2.
	ErrBadSampleCount = errors.New("trajectory: sample count must be at least 2")
	// ErrBadSmoothness indicates a negative or NaN smoothing factor.
	ErrBadSmoothness = errors.New("trajectory: smoothness must be a non-negative number")
)

// Defaults used by DefaultOptions.
const (
	DefaultSampleCount = 100
	DefaultSmoothness  = 2.0
	DefaultDegree      = 3
)

// Options configures Smooth.
//
// SampleCount – number of evenly spaced curve samples before truncation (≥ 2).
// Smoothness  – upper bound on the sum of squared fit residuals (≥ 0).
// Degree      – spline degree for paths long enough to support it; shorter
//
//	paths use len(path)-1.
type Options struct {
	SampleCount int
	Smoothness  float64
	Degree      int
}

// Option represents a functional option for configuring Smooth.
type Option func(*Options)

// WithSampleCount sets the number of samples taken along the fitted curve.
func WithSampleCount(n int) Option {
	return func(o *Options) {
		o.SampleCount = n
	}
}

// WithSmoothness sets the smoothing factor of the least-squares fit.
func WithSmoothness(s float64) Option {
	return func(o *Options) {
		o.Smoothness = s
	}
}

// WithDegree sets the preferred spline degree. Panics with spline.ErrBadDegree
// outside [1, spline.MaxDegree].
func WithDegree(k int) Option {
	if k < 1 || k > spline.MaxDegree {
		panic(spline.ErrBadDegree.Error())
	}
	return func(o *Options) {
		o.Degree = k
	}
}

// DefaultOptions returns 100 samples, smoothness 2 and a cubic fit.
func DefaultOptions() Options {
	return Options{
		SampleCount: DefaultSampleCount,
		Smoothness:  DefaultSmoothness,
		Degree:      DefaultDegree,
	}
}

// Trajectory is an ordered run of continuous samples along a fitted curve.
//
// Points    – samples in curve order; len(Points) ≤ SampleCount.
// Truncated – true if the curve entered Unknown territory and was cut there.
// StopCell  – the Unknown cell enclosing the last sample when Truncated.
// Curve     – the fitted curve the samples were taken from.
type Trajectory struct {
	Points    []spline.Point
	Truncated bool
	StopCell  occgrid.Cell
	Curve     *spline.Curve
}

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.Points) }
