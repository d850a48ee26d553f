package interpolate

import (
	"fmt"
)

// Searcher finds the interval of a strictly increasing sequence which contains
// a given point.
type Searcher struct {
	xs []float64

	x0, dx float64
	n      int
}

// NewSearcher creates a Searcher over xs, which must be strictly increasing
// and have at least two elements.
//
// xs must not be modified throughout the lifetime of the Searcher.
func NewSearcher(xs []float64) *Searcher {
	s := &Searcher{}
	s.init(xs)
	return s
}

func (s *Searcher) init(xs []float64) {
	if len(xs) < 2 {
		panic(fmt.Sprintf("Searcher given %d points, needs at least 2.", len(xs)))
	}
	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i] < xs[i+1]) {
			panic(fmt.Sprintf(
				"Searcher points not strictly increasing: xs[%d] = %g, xs[%d] = %g.",
				i, xs[i], i+1, xs[i+1],
			))
		}
	}

	s.xs = xs
	s.n = len(xs)
	// Usually the input data is close to uniform. This is our estimate of
	// the point spacing, used to guess the starting index.
	s.x0 = xs[0]
	s.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}

// Len returns the number of points.
func (s *Searcher) Len() int { return s.n }

// Val returns the i-th point.
func (s *Searcher) Val(i int) float64 { return s.xs[i] }

// Min returns the first point.
func (s *Searcher) Min() float64 { return s.Val(0) }

// Max returns the last point.
func (s *Searcher) Max() float64 { return s.Val(s.n - 1) }

// Contains returns true if x lies within [Min(), Max()]. NaN is never
// contained.
func (s *Searcher) Contains(x float64) bool {
	return x >= s.Min() && x <= s.Max()
}

// Search returns the index i of the half-open interval [Val(i), Val(i+1))
// containing x. Points equal to Max() belong to the last interval.
//
// Search panics if x is outside [Min(), Max()].
func (s *Searcher) Search(x float64) int {
	if !s.Contains(x) {
		panic(fmt.Sprintf("Point %g given to Searcher out of bounds [%g, %g].",
			x, s.Min(), s.Max()))
	}

	guess := int((x - s.x0) / s.dx)
	if guess >= s.n-1 {
		guess = s.n - 2
	}
	if guess >= 0 && s.xs[guess] <= x &&
		(x < s.xs[guess+1] || guess == s.n-2) {
		return guess
	}

	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
