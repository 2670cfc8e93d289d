// Package spline fits smoothing parametric B-splines through ordered 2D points.
//
// Fit parameterises the points by normalised cumulative chord length, then
// solves a least-squares problem for the B-spline coefficients. It starts
// with no interior knots and inserts knots at data parameters, one at a time
// in the span with the largest squared residual, until the total squared
// residual drops to the smoothing factor or every candidate knot is used.
// With every candidate in place the curve interpolates the points.
//
// Interior knots are drawn from the data parameters u[a..m-degree-2+a] with
// a = (degree+1)/2, which keeps the collocation matrix full rank
// (Schoenberg–Whitney) for any subset of candidates.
//
// Complexity: each refinement step costs one dense QR of an m×n system,
// O(m·n²); at most m-degree-1 steps are taken.
package spline

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ChordParams returns normalised cumulative chord-length parameters for points:
// u[0]=0, u[len-1]=1, strictly increasing. Needs at least two points.
func ChordParams(points []Point) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d, need 2", ErrTooFewPoints, len(points))
	}
	u := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		d := math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
		if d == 0 {
			return nil, fmt.Errorf("%w: index %d and %d at %v", ErrDuplicatePoint, i-1, i, points[i])
		}
		u[i] = u[i-1] + d
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	u[len(u)-1] = 1

	return u, nil
}

// Fit returns a smoothing B-spline of the given degree through points.
// smoothness bounds the sum of squared residuals; 0 forces interpolation.
func Fit(points []Point, smoothness float64, degree int) (*Curve, error) {
	if degree < 1 || degree > MaxDegree {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrBadDegree, degree, MaxDegree)
	}
	if len(points) <= degree {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrTooFewPoints, len(points), degree+1)
	}
	if math.IsNaN(smoothness) || smoothness < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadSmoothness, smoothness)
	}
	u, err := ChordParams(points)
	if err != nil {
		return nil, err
	}

	f := &fitter{points: points, u: u, degree: degree}
	f.first = (degree + 1) / 2
	f.last = f.first + len(points) - degree - 2
	if smoothness == 0 {
		for j := f.first; j <= f.last; j++ {
			f.interior = append(f.interior, j)
		}
	}

	for {
		c, perPoint, err := f.solve()
		if err != nil {
			return nil, err
		}
		if c.residual <= smoothness || len(f.interior) == f.last-f.first+1 {
			return c, nil
		}
		f.insertKnot(perPoint)
	}
}

// fitter holds the state of one Fit call.
type fitter struct {
	points      []Point
	u           []float64
	degree      int
	first, last int   // candidate data indices for interior knots
	interior    []int // chosen candidate indices, ascending
}

// knots builds the clamped knot vector from the chosen interior sites.
func (f *fitter) knots() []float64 {
	p := f.degree
	t := make([]float64, 0, len(f.interior)+2*(p+1))
	for i := 0; i <= p; i++ {
		t = append(t, 0)
	}
	for _, j := range f.interior {
		t = append(t, f.u[j])
	}
	for i := 0; i <= p; i++ {
		t = append(t, 1)
	}

	return t
}

// solve fits the coefficients for the current knots by least squares and
// returns the curve along with each point's squared residual.
func (f *fitter) solve() (*Curve, []float64, error) {
	p := f.degree
	t := f.knots()
	m := len(f.points)
	n := len(t) - p - 1

	a := mat.NewDense(m, n, nil)
	b := mat.NewDense(m, 2, nil)
	basis := make([]float64, p+1)
	for i, ui := range f.u {
		l := findSpan(t, p, n, ui)
		basisFuncs(t, p, l, ui, basis)
		for k := 0; k <= p; k++ {
			a.Set(i, l-p+k, basis[k])
		}
		b.Set(i, 0, f.points[i].X)
		b.Set(i, 1, f.points[i].Y)
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	c := &Curve{degree: p, knots: t, coef: make([]Point, n)}
	for k := 0; k < n; k++ {
		c.coef[k] = Point{X: x.At(k, 0), Y: x.At(k, 1)}
	}
	perPoint := make([]float64, m)
	for i, ui := range f.u {
		q := c.At(ui)
		dx, dy := q.X-f.points[i].X, q.Y-f.points[i].Y
		perPoint[i] = dx*dx + dy*dy
		c.residual += perPoint[i]
	}

	return c, perPoint, nil
}

// insertKnot adds the free candidate nearest the middle of the knot span
// carrying the largest residual that still has a free candidate.
func (f *fitter) insertKnot(perPoint []float64) {
	bounds := []float64{0}
	for _, j := range f.interior {
		bounds = append(bounds, f.u[j])
	}
	bounds = append(bounds, 1)

	type span struct {
		lo, hi, sum float64
	}
	spans := make([]span, len(bounds)-1)
	for s := range spans {
		spans[s] = span{lo: bounds[s], hi: bounds[s+1]}
	}
	for i, ui := range f.u {
		s := sort.SearchFloat64s(bounds, ui)
		if s > 0 && (s == len(bounds) || bounds[s] > ui) {
			s--
		}
		if s >= len(spans) {
			s = len(spans) - 1
		}
		spans[s].sum += perPoint[i]
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].sum > spans[j].sum })

	used := make(map[int]bool, len(f.interior))
	for _, j := range f.interior {
		used[j] = true
	}
	for _, s := range spans {
		best, bestDist := -1, math.Inf(1)
		mid := (s.lo + s.hi) / 2
		for j := f.first; j <= f.last; j++ {
			if used[j] || f.u[j] <= s.lo || f.u[j] >= s.hi {
				continue
			}
			if d := math.Abs(f.u[j] - mid); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best >= 0 {
			f.add(best)
			return
		}
	}
	for j := f.first; j <= f.last; j++ {
		if !used[j] {
			f.add(j)
			return
		}
	}
}

func (f *fitter) add(j int) {
	f.interior = append(f.interior, j)
	sort.Ints(f.interior)
}
