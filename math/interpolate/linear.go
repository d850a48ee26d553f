package interpolate

import (
	"fmt"
)

// Linear is a piecewise linear interpolator.
type Linear struct {
	xs   *Searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals. Both slices
// are copied.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the data
// layout.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(vals) = %d", len(xs), len(vals),
		))
	}
	xs = append([]float64(nil), xs...)
	vals = append([]float64(nil), vals...)
	return &Linear{xs: NewSearcher(xs), vals: vals}
}

// Eval returns the interpolated value at x.
//
// Eval panics if x is outside [Min(), Max()].
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.Search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.Val(i1), lin.xs.Val(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// Min returns the smallest x value of the table.
func (lin *Linear) Min() float64 { return lin.xs.Min() }

// Max returns the largest x value of the table.
func (lin *Linear) Max() float64 { return lin.xs.Max() }
