// Package search defines core types and configuration options for the
// weighted best-first path search over sensed occupancy grids.
//
// Options:
//
//	– Heuristic:     estimate of the remaining cost (Manhattan by default).
//	– CardinalCost:  weight of a W/E/N/S move (1.0 by default).
//	– DiagonalCost:  weight of a diagonal move (1.4 by default).
//	– MaxExpansions: optional cap on expanded nodes (0 means no cap).
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if start lies outside the grid.
//	– ErrGoalOutOfBounds  if goal lies outside the grid.
//	– ErrStartBlocked     if start is an Obstacle cell.
//	– ErrGoalBlocked      if goal is an Obstacle cell.
//	– ErrUnreachable      if the frontier is exhausted before the goal is popped.
//	– ErrExpansionLimit   if MaxExpansions is reached before the goal is popped.
//	– ErrBadCost          if a move cost is not positive (panics from WithCosts).
//	– ErrBadPath          if PathCost is given a path that breaks the move rules.
package search

import (
	"errors"
	"math"

	"github.com/katalvlaran/senseplan/occgrid"
)

// Sentinel errors returned by FindPath and PathCost.
var (
	// ErrNilGrid indicates that a nil *occgrid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("search: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("search: goal cell out of bounds")

	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = errors.New("search: start cell is an obstacle")

	// ErrGoalBlocked indicates the goal cell is an obstacle.
	ErrGoalBlocked = errors.New("search: goal cell is an obstacle")

	// ErrUnreachable indicates that no path connects start and goal.
	ErrUnreachable = errors.New("search: goal unreachable from start")

	// ErrExpansionLimit indicates the search gave up after MaxExpansions pops.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadCost indicates a non-positive or NaN move cost.
	ErrBadCost = errors.New("search: move costs must be positive")

	// ErrBadPath indicates a path that is empty, leaves the grid, crosses an
	// obstacle, jumps between non-adjacent cells or cuts a blocked corner.
	ErrBadPath = errors.New("search: path violates the move rules")
)

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b occgrid.Cell) float64

// Manhattan returns |dx|+|dy|. It overestimates diagonal progress when the
// diagonal cost is below 2, so optimality is not guaranteed with it.
func Manhattan(a, b occgrid.Cell) float64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)

	return float64(dx + dy)
}

// Octile returns the exact obstacle-free cost with the default weights:
// 1.4·min(dx,dy) + (max−min). Admissible and consistent for 1.0 / 1.4 moves.
func Octile(a, b occgrid.Cell) float64 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}

	return DefaultDiagonalCost*float64(lo) + DefaultCardinalCost*float64(hi-lo)
}

// Zero turns the search into plain Dijkstra.
func Zero(_, _ occgrid.Cell) float64 { return 0 }

// Default move weights.
const (
	DefaultCardinalCost = 1.0
	DefaultDiagonalCost = 1.4
)

// Options configures the behavior of FindPath.
//
// Heuristic     – remaining-cost estimate h(node, goal); nil means Manhattan.
// CardinalCost  – weight of an orthogonal move. Must be > 0.
// DiagonalCost  – weight of a diagonal move. Must be > 0.
// MaxExpansions – stop with ErrExpansionLimit after this many expansions; 0 disables.
type Options struct {
	Heuristic     Heuristic
	CardinalCost  float64
	DiagonalCost  float64
	MaxExpansions int
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithCosts sets the cardinal and diagonal move weights.
// Panics with ErrBadCost if either value is not positive.
func WithCosts(cardinal, diagonal float64) Option {
	if !(cardinal > 0) || !(diagonal > 0) || math.IsInf(cardinal, 0) || math.IsInf(diagonal, 0) {
		panic(ErrBadCost.Error())
	}
	return func(o *Options) {
		o.CardinalCost = cardinal
		o.DiagonalCost = diagonal
	}
}

// WithMaxExpansions caps the number of expanded nodes. n ≤ 0 disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns an Options struct initialized with the reference
// behavior: Manhattan heuristic, 1.0 cardinal, 1.4 diagonal, no expansion cap.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Manhattan,
		CardinalCost:  DefaultCardinalCost,
		DiagonalCost:  DefaultDiagonalCost,
		MaxExpansions: 0,
	}
}

// Result is the outcome of a successful search.
//
// Path     – cells from start (first) to goal (last), 8-connected.
// Cost     – weighted length of Path under the configured move costs.
// Expanded – number of frontier pops that were expanded.
type Result struct {
	Path     []occgrid.Cell
	Cost     float64
	Expanded int
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
