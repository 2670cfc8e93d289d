package trajectory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/spline"
	"github.com/katalvlaran/senseplan/trajectory"
)

// gridFrom builds a grid from rows of '.', '#' and '?' runes.
func gridFrom(t testing.TB, rows ...string) *occgrid.Grid {
	t.Helper()
	g, err := occgrid.Build(len(rows[0]), len(rows), func(c occgrid.Cell) occgrid.CellState {
		switch rows[c.Y][c.X] {
		case '#':
			return occgrid.Obstacle
		case '?':
			return occgrid.Unknown
		default:
			return occgrid.KnownFree
		}
	})
	require.NoError(t, err)

	return g
}

func row(y, from, to int) []occgrid.Cell {
	var out []occgrid.Cell
	for x := from; x <= to; x++ {
		out = append(out, occgrid.Cell{X: x, Y: y})
	}

	return out
}

func TestSmooth_Errors(t *testing.T) {
	g := gridFrom(t, "....", "....")
	ok := []occgrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	cases := []struct {
		name string
		path []occgrid.Cell
		grid *occgrid.Grid
		opts []trajectory.Option
		err  error
	}{
		{"NilGrid", ok, nil, nil, trajectory.ErrNilGrid},
		{"SampleCount", ok, g, []trajectory.Option{trajectory.WithSampleCount(1)}, trajectory.ErrBadSampleCount},
		{"Smoothness", ok, g, []trajectory.Option{trajectory.WithSmoothness(-0.1)}, trajectory.ErrBadSmoothness},
		{"SmoothnessNaN", ok, g, []trajectory.Option{trajectory.WithSmoothness(math.NaN())}, trajectory.ErrBadSmoothness},
		{"Empty", nil, g, nil, trajectory.ErrTooFewPoints},
		{"Single", ok[:1], g, nil, trajectory.ErrTooFewPoints},
		{"OutOfBounds", []occgrid.Cell{{X: 0, Y: 0}, {X: 4, Y: 0}}, g, nil, trajectory.ErrCellOutOfBounds},
		{"Repeated", []occgrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, g, nil, trajectory.ErrDegeneratePath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			traj, err := trajectory.Smooth(tc.path, tc.grid, tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, traj)
		})
	}
}

func TestWithDegree_Panics(t *testing.T) {
	require.Panics(t, func() { trajectory.WithDegree(0) })
	require.Panics(t, func() { trajectory.WithDegree(spline.MaxDegree + 1) })
}

// TestSmooth_FullyKnown returns every sample when no cell is Unknown.
func TestSmooth_FullyKnown(t *testing.T) {
	g := gridFrom(t,
		"........",
		"........",
		"........",
	)
	path := []occgrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 1}, {X: 7, Y: 0}}
	traj, err := trajectory.Smooth(path, g)
	require.NoError(t, err)
	require.Equal(t, trajectory.DefaultSampleCount, traj.Len())
	require.False(t, traj.Truncated)
	require.NotNil(t, traj.Curve)
	assert.LessOrEqual(t, traj.Curve.Residual(), trajectory.DefaultSmoothness+1e-9)
}

// TestSmooth_TruncatesAtUnknown walks a straight corridor into unknown space.
func TestSmooth_TruncatesAtUnknown(t *testing.T) {
	g := gridFrom(t, "....??????")
	traj, err := trajectory.Smooth(row(0, 0, 9), g)
	require.NoError(t, err)

	require.True(t, traj.Truncated)
	require.Less(t, traj.Len(), trajectory.DefaultSampleCount)
	assert.Equal(t, 40, traj.Len())
	assert.Equal(t, occgrid.Cell{X: 4, Y: 0}, traj.StopCell)

	last := traj.Points[traj.Len()-1]
	assert.Equal(t, traj.StopCell, trajectory.Enclosing(last))
	for _, p := range traj.Points[:traj.Len()-1] {
		s, _ := g.State(trajectory.Enclosing(p))
		assert.NotEqual(t, occgrid.Unknown, s, "sample %v before the cut is unknown", p)
	}
}

// TestSmooth_ShortPaths fits two- and three-cell paths exactly.
func TestSmooth_ShortPaths(t *testing.T) {
	g := gridFrom(t, "...", "...", "...")

	traj, err := trajectory.Smooth([]occgrid.Cell{{X: 0, Y: 0}, {X: 2, Y: 2}}, g, trajectory.WithSampleCount(5))
	require.NoError(t, err)
	require.Equal(t, 5, traj.Len())
	assert.Equal(t, 1, traj.Curve.Degree())
	for i, p := range traj.Points {
		want := 0.5 + 2*float64(i)/4
		assert.InDelta(t, want, p.X, 1e-9)
		assert.InDelta(t, want, p.Y, 1e-9)
	}

	traj, err = trajectory.Smooth([]occgrid.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}, g)
	require.NoError(t, err)
	assert.Equal(t, 2, traj.Curve.Degree())
	first, end := traj.Points[0], traj.Points[traj.Len()-1]
	assert.InDelta(t, 0.5, first.X, 1e-9)
	assert.InDelta(t, 0.5, first.Y, 1e-9)
	assert.InDelta(t, 2.5, end.X, 1e-9)
	assert.InDelta(t, 1.5, end.Y, 1e-9)
}

func TestFirstUnknown_IgnoresOutside(t *testing.T) {
	g := gridFrom(t, "..?")
	pts := []spline.Point{{X: -0.5, Y: 0.5}, {X: 1.5, Y: -2}, {X: 1.2, Y: 0.5}, {X: 2.1, Y: 0.9}}
	i, c, ok := trajectory.FirstUnknown(pts, g)
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, occgrid.Cell{X: 2, Y: 0}, c)

	_, _, ok = trajectory.FirstUnknown(pts[:3], g)
	assert.False(t, ok)
}

func TestEnclosing(t *testing.T) {
	assert.Equal(t, occgrid.Cell{X: 3, Y: 0}, trajectory.Enclosing(spline.Point{X: 3.99, Y: 0.01}))
	assert.Equal(t, occgrid.Cell{X: -1, Y: 2}, trajectory.Enclosing(spline.Point{X: -0.2, Y: 2}))
	assert.Equal(t, occgrid.Cell{X: 4, Y: 0}, trajectory.Enclosing(spline.Point{X: 4.3, Y: 0.5}), "containing cell, not nearest centre")
}
