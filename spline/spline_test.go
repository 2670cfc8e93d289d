package spline_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/senseplan/spline"
)

func TestChordParams(t *testing.T) {
	u, err := spline.ChordParams([]spline.Point{{0, 0}, {3, 0}, {3, 4}})
	require.NoError(t, err)
	require.Len(t, u, 3)
	assert.Equal(t, 0.0, u[0])
	assert.InDelta(t, 3.0/7.0, u[1], 1e-12)
	assert.Equal(t, 1.0, u[2])

	_, err = spline.ChordParams([]spline.Point{{1, 1}})
	require.ErrorIs(t, err, spline.ErrTooFewPoints)
	_, err = spline.ChordParams([]spline.Point{{1, 1}, {2, 2}, {2, 2}})
	require.ErrorIs(t, err, spline.ErrDuplicatePoint)
}

func TestFit_Errors(t *testing.T) {
	pts := []spline.Point{{0, 0}, {1, 0}, {2, 1}, {3, 3}}
	cases := []struct {
		name   string
		points []spline.Point
		s      float64
		degree int
		err    error
	}{
		{"DegreeZero", pts, 0, 0, spline.ErrBadDegree},
		{"DegreeTooHigh", pts, 0, spline.MaxDegree + 1, spline.ErrBadDegree},
		{"TooFewForCubic", pts[:3], 0, 3, spline.ErrTooFewPoints},
		{"NegativeSmoothness", pts, -1, 3, spline.ErrBadSmoothness},
		{"NaNSmoothness", pts, math.NaN(), 3, spline.ErrBadSmoothness},
		{"Duplicate", []spline.Point{{0, 0}, {0, 0}, {1, 1}, {2, 2}}, 0, 3, spline.ErrDuplicatePoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := spline.Fit(tc.points, tc.s, tc.degree)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFit_Interpolates checks that smoothness 0 passes through every point.
func TestFit_Interpolates(t *testing.T) {
	pts := []spline.Point{{0.5, 0.5}, {1.5, 1.5}, {2.5, 1.5}, {3.5, 2.5}, {4.5, 2.5}, {5.5, 3.5}, {5.5, 4.5}}
	c, err := spline.Fit(pts, 0, 3)
	require.NoError(t, err)
	u, err := spline.ChordParams(pts)
	require.NoError(t, err)

	for i, p := range pts {
		q := c.At(u[i])
		assert.InDelta(t, p.X, q.X, 1e-9, "x at %d", i)
		assert.InDelta(t, p.Y, q.Y, 1e-9, "y at %d", i)
	}
	assert.InDelta(t, 0, c.Residual(), 1e-12)
	assert.Len(t, c.Knots(), len(pts)+c.Degree()+1)
}

// TestFit_Linear checks degree-1 interpolation returns chord midpoints.
func TestFit_Linear(t *testing.T) {
	pts := []spline.Point{{0, 0}, {2, 0}, {2, 2}}
	c, err := spline.Fit(pts, 0, 1)
	require.NoError(t, err)

	q := c.At(0.25)
	assert.InDelta(t, 1.0, q.X, 1e-12)
	assert.InDelta(t, 0.0, q.Y, 1e-12)
	q = c.At(0.75)
	assert.InDelta(t, 2.0, q.X, 1e-12)
	assert.InDelta(t, 1.0, q.Y, 1e-12)
}

// TestFit_Collinear keeps a cubic fit of evenly spaced collinear points on the line.
func TestFit_Collinear(t *testing.T) {
	pts := make([]spline.Point, 8)
	for i := range pts {
		pts[i] = spline.Point{X: float64(i) + 0.5, Y: 2.5}
	}
	c, err := spline.Fit(pts, 2, 3)
	require.NoError(t, err)
	assert.Len(t, c.Knots(), 8, "no interior knots needed")
	assert.InDelta(t, 0, c.Residual(), 1e-9)

	for _, q := range c.Sample(25) {
		assert.InDelta(t, 2.5, q.Y, 1e-9)
	}
	ends := c.Sample(2)
	assert.InDelta(t, 0.5, ends[0].X, 1e-9)
	assert.InDelta(t, 7.5, ends[1].X, 1e-9)
}

// TestFit_ResidualBound checks the smoothing condition and knot monotonicity.
func TestFit_ResidualBound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pts := make([]spline.Point, 20)
	for i := range pts {
		pts[i] = spline.Point{X: float64(i) + rng.Float64()*0.4, Y: rng.Float64() * 3}
	}

	prevKnots := math.MaxInt
	for _, s := range []float64{0, 0.5, 2, 10, 1e6} {
		c, err := spline.Fit(pts, s, 3)
		require.NoError(t, err)
		assert.LessOrEqual(t, c.Residual(), s+1e-9, "smoothness %v", s)
		assert.LessOrEqual(t, len(c.Knots()), prevKnots, "smoothness %v", s)
		prevKnots = len(c.Knots())
	}
}

func TestSample(t *testing.T) {
	pts := []spline.Point{{0, 0}, {1, 1}}
	c, err := spline.Fit(pts, 0, 1)
	require.NoError(t, err)

	assert.Nil(t, c.Sample(0))
	assert.Equal(t, []spline.Point{{0, 0}}, c.Sample(1))
	s := c.Sample(5)
	require.Len(t, s, 5)
	assert.InDelta(t, 0.25, s[1].X, 1e-12)
	assert.InDelta(t, 1.0, s[4].Y, 1e-12)

	assert.Equal(t, c.At(0), c.At(-3), "parameters below 0 clamp")
	assert.Equal(t, c.At(1), c.At(7), "parameters above 1 clamp")
}
