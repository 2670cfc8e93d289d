// Package scenario supplies planning inputs: the raw obstacle layout, start
// and goal cells, the sensing radius and the trajectory settings.
//
// Scenarios are plain values that can be built in code, decoded from YAML
// or taken from Reference, which reproduces the 16×16 demonstration layout.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/search"
	"github.com/katalvlaran/senseplan/trajectory"
)

// Sentinel errors returned by Validate, Decode and Load.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("scenario: width and height must be positive")
	// ErrRectOutOfBounds indicates an obstacle rectangle that is empty or leaves the grid.
	ErrRectOutOfBounds = errors.New("scenario: obstacle rectangle out of bounds")
	// ErrCellOutOfBounds indicates a start or goal cell outside the grid.
	ErrCellOutOfBounds = errors.New("scenario: start or goal out of bounds")
	// ErrBadRadius indicates a negative or NaN sensing radius.
	ErrBadRadius = errors.New("scenario: radius must be a non-negative number")
	// ErrUnknownHeuristic indicates an unsupported heuristic name.
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")
)

// Heuristic names accepted in scenario files.
const (
	HeuristicManhattan = "manhattan"
	HeuristicOctile    = "octile"
	HeuristicZero      = "zero"
)

// Point is a cell coordinate as written in scenario files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Cell converts p to an occgrid.Cell.
func (p Point) Cell() occgrid.Cell { return occgrid.Cell{X: p.X, Y: p.Y} }

// Rect is a half-open block of obstacle cells [X0,X1)×[Y0,Y1).
type Rect struct {
	X0 int `yaml:"x0"`
	Y0 int `yaml:"y0"`
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
}

// Scenario holds all inputs of one planning run.
// A zero SampleCount or a nil Smoothness falls back to trajectory defaults
// when converted with TrajectoryOptions; an empty Heuristic means Manhattan.
// A non-nil Smoothness of 0 requests exact interpolation.
type Scenario struct {
	Name        string   `yaml:"name"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Obstacles   []Rect   `yaml:"obstacles"`
	Start       Point    `yaml:"start"`
	Goal        Point    `yaml:"goal"`
	Radius      float64  `yaml:"radius"`
	SampleCount int      `yaml:"sample_count,omitempty"`
	Smoothness  *float64 `yaml:"smoothness,omitempty"`
	Heuristic   string   `yaml:"heuristic,omitempty"`
}

// Reference returns the 16×16 demonstration layout: walls at column 10
// (rows 2–5), row 6 (columns 11–12), row 8 (columns 8–10), column 8 (rows
// 8–10), column 3 (rows 2–4) and cell (2,4); start (7,5), goal (15,4),
// radius 5, 100 samples, smoothness 2.
func Reference() Scenario {
	smoothness := trajectory.DefaultSmoothness

	return Scenario{
		Name:   "reference",
		Width:  16,
		Height: 16,
		Obstacles: []Rect{
			{X0: 10, Y0: 2, X1: 11, Y1: 6},
			{X0: 11, Y0: 6, X1: 13, Y1: 7},
			{X0: 8, Y0: 8, X1: 11, Y1: 9},
			{X0: 8, Y0: 8, X1: 9, Y1: 11},
			{X0: 3, Y0: 2, X1: 4, Y1: 5},
			{X0: 2, Y0: 4, X1: 3, Y1: 5},
		},
		Start:       Point{X: 7, Y: 5},
		Goal:        Point{X: 15, Y: 4},
		Radius:      5,
		SampleCount: trajectory.DefaultSampleCount,
		Smoothness:  &smoothness,
		Heuristic:   HeuristicManhattan,
	}
}

// Validate checks dimensions, rectangles, start/goal bounds, radius and heuristic.
// Start or goal on an obstacle is left to the search, which reports it.
func (s Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, s.Width, s.Height)
	}
	for i, r := range s.Obstacles {
		if r.X0 < 0 || r.Y0 < 0 || r.X1 > s.Width || r.Y1 > s.Height || r.X0 >= r.X1 || r.Y0 >= r.Y1 {
			return fmt.Errorf("%w: obstacles[%d]=%+v in %dx%d", ErrRectOutOfBounds, i, r, s.Width, s.Height)
		}
	}
	if !s.contains(s.Start) {
		return fmt.Errorf("%w: start %+v", ErrCellOutOfBounds, s.Start)
	}
	if !s.contains(s.Goal) {
		return fmt.Errorf("%w: goal %+v", ErrCellOutOfBounds, s.Goal)
	}
	if math.IsNaN(s.Radius) || s.Radius < 0 {
		return fmt.Errorf("%w: got %v", ErrBadRadius, s.Radius)
	}
	if _, err := s.HeuristicFunc(); err != nil {
		return err
	}

	return nil
}

func (s Scenario) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Raw builds the raw obstacle map after validating s.
func (s Scenario) Raw() (*occgrid.Raw, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var cells []occgrid.Cell
	for _, r := range s.Obstacles {
		for y := r.Y0; y < r.Y1; y++ {
			for x := r.X0; x < r.X1; x++ {
				cells = append(cells, occgrid.Cell{X: x, Y: y})
			}
		}
	}

	return occgrid.FromObstacles(s.Width, s.Height, cells)
}

// HeuristicFunc resolves the configured heuristic name.
func (s Scenario) HeuristicFunc() (search.Heuristic, error) {
	switch s.Heuristic {
	case "", HeuristicManhattan:
		return search.Manhattan, nil
	case HeuristicOctile:
		return search.Octile, nil
	case HeuristicZero:
		return search.Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s.Heuristic)
	}
}

// TrajectoryOptions converts the sampling settings, leaving defaults for unset values.
func (s Scenario) TrajectoryOptions() []trajectory.Option {
	var opts []trajectory.Option
	if s.SampleCount != 0 {
		opts = append(opts, trajectory.WithSampleCount(s.SampleCount))
	}
	if s.Smoothness != nil {
		opts = append(opts, trajectory.WithSmoothness(*s.Smoothness))
	}

	return opts
}

// Decode reads one YAML scenario from r. Unknown fields are rejected.
func Decode(r io.Reader) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Load reads and validates the YAML scenario stored at path.
// An empty Name is replaced by the file path.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: open: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Marshal encodes s as YAML.
func (s Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
