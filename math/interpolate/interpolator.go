/*
package interpolate contains one-dimensional interpolators over tabulated
data and the search and linear-algebra primitives they are built from.
*/
package interpolate

// Interpolator is a one-dimensional function defined by a table of points.
type Interpolator interface {
	Eval(x float64) float64
	Min() float64
	Max() float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)
