package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points. The second derivative is zero at both ends.
type Spline struct {
	xs      *Searcher
	ys, y2s []float64
	coeffs  []splineCoeff
}

// NewSpline creates a spline based off a table of x and y values. The x values
// must be strictly increasing and there must be at least two of them. With
// exactly two points the spline is a straight line.
//
// The table is copied, so xs and ys may be modified afterwards.
func NewSpline(xs, ys []float64) *Spline {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"Table given to NewSpline() has len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		))
	}

	sp := &Spline{}
	xsCopy := make([]float64, len(xs))
	copy(xsCopy, xs)
	sp.xs = NewSearcher(xsCopy)

	sp.ys = make([]float64, len(ys))
	copy(sp.ys, ys)
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)

	sp.calcY2s()
	sp.calcCoeffs()
	return sp
}

// Eval computes the value of the spline at the given point.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Eval(x float64) float64 {
	i := sp.xs.Search(x)
	dx := x - sp.xs.Val(i)
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return ((a*dx+b)*dx+c)*dx + d
}

// Diff computes the derivative of spline at the given point to the
// specified order.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Diff(x float64, order int) float64 {
	i := sp.xs.Search(x)
	dx := x - sp.xs.Val(i)
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	switch order {
	case 0:
		return a*dx*dx*dx + b*dx*dx + c*dx + d
	case 1:
		return 3*a*dx*dx + 2*b*dx + c
	case 2:
		return 6*a*dx + 2*b
	case 3:
		return 6 * a
	default:
		return 0
	}
}

// Min returns the smallest x value of the table.
func (sp *Spline) Min() float64 { return sp.xs.Min() }

// Max returns the largest x value of the table.
func (sp *Spline) Max() float64 { return sp.xs.Max() }

// calcY2s computes the second derivative at every point in the table given
// in NewSpline.
func (sp *Spline) calcY2s() {
	n := sp.xs.Len()
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n <= 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	x, ys := sp.xs.Val, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (x(j) - x(j-1)) / 6
		bs[i] = (x(j+1) - x(j-1)) / 3
		cs[i] = (x(j+1) - x(j)) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (x(j+1) - x(j))) -
			((ys[j] - ys[j-1]) / (x(j) - x(j-1)))
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

// calcCoeffs expands each interval into a cubic in powers of (x - x_i).
func (sp *Spline) calcCoeffs() {
	coeffs, x, ys, y2s := sp.coeffs, sp.xs.Val, sp.ys, sp.y2s
	for i := range coeffs {
		h := x(i+1) - x(i)
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(y2s[i]/3+y2s[i+1]/6)
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..       |   | out0 |   | r0 |
// | a1 b1 c1 ..    |   | out1 |   | r1 |
// | ..             | * | ..   | = | .. |
// | ..       an bn |   | outn |   | rn |
//
// For out0 .. outn in place in the given slice. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	} else if len(as) == 0 {
		return
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		panic("TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("TriDiagAt cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

// TriDiag solves the system of equations
//
// | b0 c0 ..       |   | u0 |   | r0 |
// | a1 b1 c1 ..    |   | u1 |   | r1 |
// | ..             | * | .. | = | .. |
// | ..       an bn |   | un |   | rn |
//
// For u0 .. un.
func TriDiag(as, bs, cs, rs []float64) []float64 {
	us := make([]float64, len(as))
	TriDiagAt(as, bs, cs, rs, us)
	return us
}
