// Package render draws a sensed grid, a discrete path and a trajectory with
// gonum/plot. It only reads its inputs and has no effect on planning results.
//
// Colours: obstacles red, known cells white, unknown cells light slate grey,
// path blue (line and markers), trajectory green, start cyan, goal green.
// The Y axis is inverted so row 0 is drawn at the top.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/spline"
)

// ErrNilGrid indicates a Scene without a grid.
var ErrNilGrid = errors.New("render: scene grid is nil")

// Default output size.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 10 * vg.Inch
)

// Palette used for cells and overlays.
var (
	ColorObstacle   = color.RGBA{R: 255, A: 255}
	ColorKnown      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorUnknown    = color.RGBA{R: 119, G: 136, B: 153, A: 255}
	ColorPath       = color.RGBA{B: 255, A: 255}
	ColorTrajectory = color.RGBA{G: 128, A: 255}
	ColorStart      = color.RGBA{G: 255, B: 255, A: 255}
	ColorGoal       = color.RGBA{G: 128, A: 255}
)

// Scene is a read-only snapshot of one planning run.
// Path, Trajectory, Start and Goal are optional.
type Scene struct {
	Title      string
	Grid       *occgrid.Grid
	Path       []occgrid.Cell
	Trajectory []spline.Point
	Start      *occgrid.Cell
	Goal       *occgrid.Cell
}

// Plot builds a plot of the scene.
func Plot(s Scene) (*plot.Plot, error) {
	if s.Grid == nil {
		return nil, ErrNilGrid
	}
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	var cellErr error
	s.Grid.Each(func(c occgrid.Cell, st occgrid.CellState) {
		if cellErr != nil {
			return
		}
		cellErr = addCell(p, c, stateColor(st))
	})
	if cellErr != nil {
		return nil, cellErr
	}
	if s.Start != nil {
		if err := addCell(p, *s.Start, ColorStart); err != nil {
			return nil, err
		}
	}
	if s.Goal != nil {
		if err := addCell(p, *s.Goal, ColorGoal); err != nil {
			return nil, err
		}
	}

	if len(s.Path) > 0 {
		pts := make(plotter.XYs, len(s.Path))
		for i, c := range s.Path {
			pts[i].X, pts[i].Y = c.Center()
		}
		line, markers, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("render: path: %w", err)
		}
		line.Color = ColorPath
		line.Width = vg.Points(2)
		markers.Color = ColorPath
		markers.Radius = vg.Points(3)
		p.Add(line, markers)
		p.Legend.Add("search path", line)
	}

	if len(s.Trajectory) > 0 {
		pts := make(plotter.XYs, len(s.Trajectory))
		for i, q := range s.Trajectory {
			pts[i] = plotter.XY{X: q.X, Y: q.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("render: trajectory: %w", err)
		}
		line.Color = ColorTrajectory
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("smooth trajectory", line)
	}

	p.X.Min, p.X.Max = 0, float64(s.Grid.Width)
	p.Y.Min, p.Y.Max = 0, float64(s.Grid.Height)
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	return p, nil
}

// Save renders the scene to file; the format follows the file extension
// (.png, .svg, .pdf, …). Zero sizes fall back to the defaults.
func Save(s Scene, file string, width, height vg.Length) error {
	p, err := Plot(s)
	if err != nil {
		return err
	}
	width, height = sizeOrDefault(width, height)
	if err := p.Save(width, height, file); err != nil {
		return fmt.Errorf("render: save %s: %w", file, err)
	}

	return nil
}

// Write renders the scene in format ("png", "svg", …) to w.
func Write(s Scene, w io.Writer, format string, width, height vg.Length) error {
	p, err := Plot(s)
	if err != nil {
		return err
	}
	width, height = sizeOrDefault(width, height)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("render: %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}

	return nil
}

func sizeOrDefault(w, h vg.Length) (vg.Length, vg.Length) {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	return w, h
}

// addCell draws c as a filled unit square with a black outline.
func addCell(p *plot.Plot, c occgrid.Cell, fill color.Color) error {
	x, y := float64(c.X), float64(c.Y)
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1},
	})
	if err != nil {
		return fmt.Errorf("render: cell %v: %w", c, err)
	}
	poly.Color = fill
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(0.5)
	p.Add(poly)

	return nil
}

func stateColor(s occgrid.CellState) color.Color {
	switch s {
	case occgrid.Obstacle:
		return ColorObstacle
	case occgrid.KnownFree:
		return ColorKnown
	default:
		return ColorUnknown
	}
}
