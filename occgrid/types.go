// Package occgrid defines core types, options, and sentinel errors
// for the occgrid subpackage of github.com/katalvlaran/senseplan.
package occgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for occgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("occgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("occgrid: all rows must have the same length")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("occgrid: width and height must be positive")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("occgrid: cell out of bounds")
)

// CellState is the knowledge state of a single cell after sensing.
type CellState uint8

const (
	// Unknown marks a free cell that lies outside every sensing disc.
	Unknown CellState = iota
	// KnownFree marks a free cell inside the sensing disc.
	KnownFree
	// Obstacle marks a blocked cell. Obstacles are always known.
	Obstacle
)

// String returns a lower-case name for the state.
func (s CellState) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case KnownFree:
		return "known"
	case Obstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is an integer grid coordinate. It is comparable and may be used as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Center returns the continuous coordinate of the cell centre.
func (c Cell) Center() (x, y float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

// RawOptions contains tunable parameters for raw map construction.
type RawOptions struct {
	// ObstacleThreshold specifies the minimum cell value considered an obstacle.
	ObstacleThreshold int
}

// DefaultRawOptions returns a RawOptions with default settings:
// ObstacleThreshold=1 (values ≥1 are obstacles).
func DefaultRawOptions() RawOptions {
	return RawOptions{
		ObstacleThreshold: 1,
	}
}

// Raw is a binary occupancy map before sensing. It is immutable once built.
// blocked is stored row-major: blocked[y*Width+x].
type Raw struct {
	Width, Height int
	blocked       []bool
}

// Grid is a sensed occupancy map with exactly one CellState per cell.
// It is immutable once built and safe for concurrent reads.
type Grid struct {
	Width, Height int
	states        []CellState
}

// neighbors8 lists the 8-connected offsets: cardinal W, E, N, S then
// diagonal NW, SW, NE, SE.
var neighbors8 = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}
