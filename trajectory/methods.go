package trajectory

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/phil-mansfield/wellpath/angle"
	"github.com/phil-mansfield/wellpath/math/interpolate"
)

// method is the per-strategy half of an Interpolator.
//
// angles returns the direction at q, which lies strictly inside the bracket
// starting at station i. delta returns the displacement from the start of the
// bracket to the point to. The bracket index i is -1 for the tie-in segment
// from the surface to the first station.
type method struct {
	minStations int
	init        func(ip *Interpolator)
	angles      func(ip *Interpolator, i int, q float64) (inc, azm float64)
	delta       func(ip *Interpolator, i int, to node) r3.Vector
}

var methods = [...]method{
	Linear: {
		minStations: 2,
		init:        linearInit,
		angles:      linearAngles,
		delta:       linearDelta,
	},
	MinimumCurvature: {
		minStations: 2,
		angles:      minCurvAngles,
		delta:       minCurvSegment,
	},
	Cubic: {
		minStations: 3,
		init:        cubicInit,
		angles:      cubicAngles,
		delta:       cubicDelta,
	},
}

// fraction returns how far q lies through the bracket starting at station i.
func (ip *Interpolator) fraction(i int, q float64) float64 {
	p0, p1 := ip.nodes[i].md, ip.nodes[i+1].md
	return (q - p0) / (p1 - p0)
}

//////////////////////
// Linear strategy //
//////////////////////

func linearInit(ip *Interpolator) {
	ip.inc = interpolate.NewLinear(ip.positions, ip.st.Inclinations(angle.Radians))
}

// linearAngles blends azimuth along the shorter arc and reads inclination
// off the piecewise linear curve through the stations.
func linearAngles(ip *Interpolator, i int, q float64) (inc, azm float64) {
	_, azm = blendAngles(ip.nodes[i], ip.nodes[i+1], ip.fraction(i, q))
	return ip.inc.Eval(q), azm
}

func linearDelta(ip *Interpolator, i int, to node) r3.Vector {
	return tangentialDelta(ip.from(i), to)
}

/////////////////////////////////
// Minimum curvature strategy //
/////////////////////////////////

func minCurvAngles(ip *Interpolator, i int, q float64) (inc, azm float64) {
	return arcAngles(ip.nodes[i], ip.nodes[i+1], ip.fraction(i, q))
}

func minCurvSegment(ip *Interpolator, i int, to node) r3.Vector {
	return minCurvDelta(ip.from(i), to)
}

/////////////////////
// Cubic strategy //
/////////////////////

func cubicInit(ip *Interpolator) {
	incs := make([]float64, len(ip.nodes))
	azms := make([]float64, len(ip.nodes))
	for i, n := range ip.nodes {
		incs[i], azms[i] = n.inc, n.azm
	}
	angle.Unwrap(azms)

	ip.inc = interpolate.NewSpline(ip.positions, incs)
	ip.azmSpline = interpolate.NewSpline(ip.positions, azms)
}

func cubicAngles(ip *Interpolator, _ int, q float64) (inc, azm float64) {
	inc = clamp(ip.inc.Eval(q), 0, math.Pi)
	return inc, angle.Wrap(ip.azmSpline.Eval(q))
}

// splineNode evaluates the fitted curve at q.
func (ip *Interpolator) splineNode(q float64) node {
	inc, azm := cubicAngles(ip, 0, q)
	return node{q, inc, azm}
}

// cubicDelta chains minimum curvature sub-segments between points on the
// fitted curve. Each station interval is cut into ip.opts.substeps equal
// pieces and a partial interval uses as many pieces as it needs to cover
// the same fraction of the interval.
func cubicDelta(ip *Interpolator, i int, to node) r3.Vector {
	from := ip.from(i)
	n := ip.opts.substeps
	if i < 0 || n <= 1 {
		return minCurvDelta(from, to)
	}

	f := (to.md - from.md) / (ip.nodes[i+1].md - from.md)
	m := int(math.Ceil(float64(n)*f - 1e-9))
	if m < 1 {
		m = 1
	}
	h := (to.md - from.md) / float64(m)

	sum := r3.Vector{}
	a := from
	for j := 1; j <= m; j++ {
		b := to
		if j < m {
			b = ip.splineNode(from.md + float64(j)*h)
		}
		sum = sum.Add(minCurvDelta(a, b))
		a = b
	}
	return sum
}
