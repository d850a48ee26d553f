/*
package trajectory interpolates survey angles and wellbore positions between
directional survey stations.

Positions are integrated from a vertical surface tie-in at measured depth 0
and are reported as (north, east, true vertical depth) components.
*/
package trajectory

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/phil-mansfield/wellpath/math/interpolate"
	"github.com/phil-mansfield/wellpath/survey"
)

// Option configures an Interpolator.
type Option func(*options)

type options struct {
	substeps int
}

func defaultOptions() options { return options{substeps: 1} }

// WithSubsteps sets how many minimum curvature sub-segments the Cubic
// strategy uses per station interval. The default is 1. Other strategies
// ignore it.
func WithSubsteps(n int) Option {
	return func(o *options) { o.substeps = n }
}

// Interpolator answers angle and position queries over a fixed snapshot of
// survey stations. It is immutable and safe for concurrent use.
type Interpolator struct {
	strategy Strategy
	opts     options
	optList  []Option

	st        *survey.Stations
	nodes     []node
	positions []float64
	search    *interpolate.Searcher

	// prefix[k] is the position of station k.
	prefix []r3.Vector

	// inc is the inclination curve through the stations, used by the
	// Linear and Cubic strategies.
	inc       interpolate.Interpolator
	azmSpline *interpolate.Spline
}

// New builds an Interpolator over a copy of st. Later changes to st do not
// affect the Interpolator.
func New(st *survey.Stations, s Strategy, opts ...Option) (*Interpolator, error) {
	if !ValidStrategy(s) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	m := methods[s]

	size := 0
	if st != nil {
		size = st.Size()
	}
	if size < m.minStations {
		return nil, fmt.Errorf("%w: %s needs %d, got %d",
			ErrInsufficientStations, s, m.minStations, size)
	}

	ip := &Interpolator{
		strategy: s,
		opts:     defaultOptions(),
		optList:  opts,
		st:       st.Clone(),
	}
	for _, opt := range opts {
		opt(&ip.opts)
	}
	if ip.opts.substeps < 1 {
		return nil, fmt.Errorf("substeps must be positive, got %d",
			ip.opts.substeps)
	}

	vs := ip.st.Vertices()
	ip.nodes = make([]node, len(vs))
	for i := range vs {
		ip.nodes[i] = nodeOf(vs[i])
	}
	ip.positions = ip.st.Positions()
	ip.search = newSearcher(ip.positions)

	if m.init != nil {
		m.init(ip)
	}

	ip.prefix = make([]r3.Vector, len(ip.nodes))
	prev := r3.Vector{}
	for k := range ip.nodes {
		ip.prefix[k] = prev.Add(m.delta(ip, k-1, ip.nodes[k]))
		prev = ip.prefix[k]
	}

	return ip, nil
}

// NewByName is New with the strategy given by its identifier.
func NewByName(st *survey.Stations, name string, opts ...Option) (*Interpolator, error) {
	s, err := ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return New(st, s, opts...)
}

// Rebuild returns a new Interpolator over st with the same strategy and
// options as ip.
func (ip *Interpolator) Rebuild(st *survey.Stations) (*Interpolator, error) {
	return New(st, ip.strategy, ip.optList...)
}

// from returns the start of the bracket beginning at station i.
func (ip *Interpolator) from(i int) node {
	if i < 0 {
		return origin
	}
	return ip.nodes[i]
}

// at returns the direction at q together with its bracket.
func (ip *Interpolator) at(q float64) (node, bracket, error) {
	b, err := findBracket(ip.search, q)
	if err != nil {
		return node{}, b, err
	}
	if b.exact {
		return ip.nodes[b.i], b, nil
	}

	if !(ip.nodes[b.i+1].md > ip.nodes[b.i].md) {
		return node{}, b, fmt.Errorf("%w: zero width bracket at %g",
			ErrDegenerateSegment, q)
	}
	inc, azm := methods[ip.strategy].angles(ip, b.i, q)
	n := node{q, inc, azm}
	if !n.finite() {
		return node{}, b, fmt.Errorf("%w: non-finite angles at %g",
			ErrDegenerateSegment, q)
	}
	return n, b, nil
}

// VertexAt returns the interpolated survey vertex at measured depth q.
func (ip *Interpolator) VertexAt(q float64) (survey.Vertex, error) {
	n, _, err := ip.at(q)
	if err != nil {
		return survey.Vertex{}, err
	}
	return n.vertex(), nil
}

// InclinationAt returns the inclination at q in radians.
func (ip *Interpolator) InclinationAt(q float64) (float64, error) {
	n, _, err := ip.at(q)
	return n.inc, err
}

// AzimuthAt returns the azimuth at q in radians, in [0, 2π).
func (ip *Interpolator) AzimuthAt(q float64) (float64, error) {
	n, _, err := ip.at(q)
	return n.azm, err
}

// PositionAt returns the (north, east, down) position of the well path at
// measured depth q.
func (ip *Interpolator) PositionAt(q float64) (r3.Vector, error) {
	_, pos, err := ip.eval(q)
	return pos, err
}

func (ip *Interpolator) eval(q float64) (node, r3.Vector, error) {
	n, b, err := ip.at(q)
	if err != nil {
		return node{}, r3.Vector{}, err
	}
	if b.exact {
		return n, ip.prefix[b.i], nil
	}
	delta := methods[ip.strategy].delta(ip, b.i, n)
	return n, ip.prefix[b.i].Add(delta), nil
}

// XAt returns the northing at q.
func (ip *Interpolator) XAt(q float64) (float64, error) {
	pos, err := ip.PositionAt(q)
	return pos.X, err
}

// YAt returns the easting at q.
func (ip *Interpolator) YAt(q float64) (float64, error) {
	pos, err := ip.PositionAt(q)
	return pos.Y, err
}

// ZAt returns the true vertical depth at q.
func (ip *Interpolator) ZAt(q float64) (float64, error) {
	pos, err := ip.PositionAt(q)
	return pos.Z, err
}

func (ip *Interpolator) Strategy() Strategy   { return ip.strategy }
func (ip *Interpolator) StrategyName() string { return ip.strategy.String() }
func (ip *Interpolator) Min() float64         { return ip.positions[0] }
func (ip *Interpolator) Max() float64         { return ip.positions[len(ip.positions)-1] }
func (ip *Interpolator) Substeps() int        { return ip.opts.substeps }

// Stations returns a copy of the sorted, de-duplicated stations ip was
// built from.
func (ip *Interpolator) Stations() *survey.Stations { return ip.st.Clone() }
