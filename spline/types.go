package spline

import "errors"

// Sentinel errors returned by Fit and ChordParams.
var (
	// ErrTooFewPoints indicates fewer points than degree+1.
	ErrTooFewPoints = errors.New("spline: not enough points for the requested degree")
	// ErrDuplicatePoint indicates two consecutive points coincide.
	ErrDuplicatePoint = errors.New("spline: consecutive points must be distinct")
	// ErrBadDegree indicates a degree outside [1, MaxDegree].
	ErrBadDegree = errors.New("spline: degree out of range")
	// ErrBadSmoothness indicates a negative or NaN smoothing factor.
	ErrBadSmoothness = errors.New("spline: smoothness must be a non-negative number")
	// ErrSingular indicates the least-squares system could not be solved.
	ErrSingular = errors.New("spline: singular least-squares system")
)

// MaxDegree is the highest supported polynomial degree.
const MaxDegree = 5

// Point is a point in continuous 2D space.
type Point struct {
	X, Y float64
}

// Curve is a clamped parametric B-spline on u ∈ [0,1].
// knots has len(coef)+degree+1 entries; the first and last degree+1 knots are 0 and 1.
type Curve struct {
	degree   int
	knots    []float64
	coef     []Point
	residual float64
}

// Degree returns the polynomial degree of the curve.
func (c *Curve) Degree() int { return c.degree }

// Knots returns a copy of the full knot vector.
func (c *Curve) Knots() []float64 {
	out := make([]float64, len(c.knots))
	copy(out, c.knots)

	return out
}

// Residual returns the sum of squared distances between the fitted data and the curve.
func (c *Curve) Residual() float64 { return c.residual }
