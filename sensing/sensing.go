// Package sensing derives the knowledge state of an occupancy grid from a
// raw obstacle map, a single observer position and a sensing radius.
//
// For every cell:
//
//   - obstacle in the raw map      → occgrid.Obstacle (obstacles are always known)
//   - Euclidean distance ≤ radius  → occgrid.KnownFree
//   - otherwise                    → occgrid.Unknown
//
// Distances are measured between integer cell coordinates, so a radius of 0
// reveals only the observer's own cell.
//
// Complexity: O(W×H) time and memory. Sense is pure and never mutates its input.
package sensing

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/senseplan/occgrid"
)

// Sentinel errors returned by Sense.
var (
	// ErrNilRaw indicates a nil raw map.
	ErrNilRaw = errors.New("sensing: raw map is nil")
	// ErrObserverOutOfBounds indicates the observer lies outside the raw map.
	ErrObserverOutOfBounds = errors.New("sensing: observer out of bounds")
	// ErrBadRadius indicates a negative or NaN sensing radius.
	ErrBadRadius = errors.New("sensing: radius must be a non-negative number")
)

// Sense returns the sensed Grid for raw as seen from observer with the given radius.
func Sense(raw *occgrid.Raw, observer occgrid.Cell, radius float64) (*occgrid.Grid, error) {
	if raw == nil {
		return nil, ErrNilRaw
	}
	if !raw.InBounds(observer) {
		return nil, fmt.Errorf("%w: %v in %dx%d map", ErrObserverOutOfBounds, observer, raw.Width, raw.Height)
	}
	if math.IsNaN(radius) || radius < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadRadius, radius)
	}

	return occgrid.Build(raw.Width, raw.Height, func(c occgrid.Cell) occgrid.CellState {
		switch {
		case raw.Blocked(c):
			return occgrid.Obstacle
		case Visible(observer, c, radius):
			return occgrid.KnownFree
		default:
			return occgrid.Unknown
		}
	})
}

// Visible reports whether c lies within radius of observer (inclusive).
func Visible(observer, c occgrid.Cell, radius float64) bool {
	dx := float64(c.X - observer.X)
	dy := float64(c.Y - observer.Y)

	return math.Hypot(dx, dy) <= radius
}
