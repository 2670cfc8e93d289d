package spline

import "sort"

// At evaluates the curve at parameter u, clamped to [0,1].
func (c *Curve) At(u float64) Point {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	p := c.degree
	n := len(c.coef)
	l := findSpan(c.knots, p, n, u)
	basis := make([]float64, p+1)
	basisFuncs(c.knots, p, l, u, basis)

	var out Point
	for k := 0; k <= p; k++ {
		cp := c.coef[l-p+k]
		out.X += basis[k] * cp.X
		out.Y += basis[k] * cp.Y
	}

	return out
}

// Sample evaluates the curve at n evenly spaced parameters from 0 to 1
// inclusive. n == 1 yields the start point; n ≤ 0 yields nil.
func (c *Curve) Sample(n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{c.At(0)}
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = c.At(float64(i) / float64(n-1))
	}

	return out
}

// findSpan returns l with t[l] ≤ u < t[l+1], clamped to [p, n-1] so that
// u == 1 falls in the last non-empty span.
func findSpan(t []float64, p, n int, u float64) int {
	l := sort.Search(len(t), func(i int) bool { return t[i] > u }) - 1
	if l < p {
		l = p
	}
	if l > n-1 {
		l = n - 1
	}

	return l
}

// basisFuncs fills out[0..p] with the non-zero basis functions
// N_{l-p,p}(u) … N_{l,p}(u) (Cox–de Boor recursion).
func basisFuncs(t []float64, p, l int, u float64, out []float64) {
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	out[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - t[l+1-j]
		right[j] = t[l+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		out[j] = saved
	}
}
