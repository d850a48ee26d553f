package trajectory

import (
	"fmt"

	"github.com/phil-mansfield/wellpath/math/interpolate"
)

// bracket is the result of locating a query among the stations. If exact is
// true, the query sits on station i. Otherwise it lies strictly between
// stations i and i+1.
type bracket struct {
	i     int
	exact bool
}

// newSearcher returns a searcher over positions, or nil if there are too few
// positions to bracket anything.
func newSearcher(positions []float64) *interpolate.Searcher {
	if len(positions) < 2 {
		return nil
	}
	return interpolate.NewSearcher(positions)
}

// findBracket locates q within the positions covered by s.
func findBracket(s *interpolate.Searcher, q float64) (bracket, error) {
	if s == nil {
		return bracket{}, fmt.Errorf("%w: need at least 2 to bracket %g",
			ErrInsufficientStations, q)
	}
	if !s.Contains(q) {
		return bracket{}, &RangeError{Position: q, Min: s.Min(), Max: s.Max()}
	}

	i := s.Search(q)
	switch q {
	case s.Val(i):
		return bracket{i: i, exact: true}, nil
	case s.Val(i + 1):
		return bracket{i: i + 1, exact: true}, nil
	}
	return bracket{i: i}, nil
}
