package trajectory

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/phil-mansfield/wellpath/angle"
	"github.com/phil-mansfield/wellpath/survey"
)

const (
	// minDogleg is the dogleg angle below which a segment is treated as
	// straight.
	minDogleg = 1e-9
	// verticalTol is the inclination below which azimuth is undefined.
	verticalTol = 1e-12
)

// node is a point on the well path with its direction. Angles are radians.
type node struct {
	md, inc, azm float64
}

// origin is the surface tie-in every path is integrated from.
var origin = node{}

func nodeOf(v survey.Vertex) node {
	return node{v.Position(), v.Inclination(angle.Radians), v.Azimuth(angle.Radians)}
}

func (n node) vertex() survey.Vertex {
	return survey.NewVertex(n.md, n.inc, n.azm, angle.Radians)
}

func (n node) tangent() r3.Vector { return survey.Tangent(n.inc, n.azm) }

func (n node) finite() bool {
	return !math.IsNaN(n.inc) && !math.IsInf(n.inc, 0) &&
		!math.IsNaN(n.azm) && !math.IsInf(n.azm, 0)
}

// dogleg returns the angle between the directions of a and b.
func dogleg(a, b node) float64 {
	sinA, cosA := math.Sincos(a.inc)
	sinB, cosB := math.Sincos(b.inc)
	c := cosA*cosB + sinA*sinB*math.Cos(b.azm-a.azm)
	return math.Acos(clamp(c, -1, 1))
}

// ratioFactor is the minimum curvature ratio factor 2/β tan(β/2), which
// tends to 1 for straight segments.
func ratioFactor(beta float64) float64 {
	if beta <= minDogleg {
		return 1
	}
	return 2 / beta * math.Tan(beta/2)
}

// minCurvDelta returns the displacement from a to b along the circular arc
// joining their directions.
func minCurvDelta(a, b node) r3.Vector {
	dmd := b.md - a.md
	if dmd <= 0 {
		return r3.Vector{}
	}
	rf := ratioFactor(dogleg(a, b))
	return a.tangent().Add(b.tangent()).Mul(dmd / 2 * rf)
}

// tangentialDelta returns the displacement from a to b assuming the hole
// points in b's direction over the whole segment.
func tangentialDelta(a, b node) r3.Vector {
	dmd := b.md - a.md
	if dmd <= 0 {
		return r3.Vector{}
	}
	return b.tangent().Mul(dmd)
}

// blendAngles linearly interpolates between a and b at fraction f. Azimuth
// follows the shorter way around the compass. A vertical end has no azimuth
// of its own and takes the other end's.
func blendAngles(a, b node, f float64) (inc, azm float64) {
	inc = a.inc + f*(b.inc-a.inc)
	aVert, bVert := math.Abs(a.inc) < verticalTol, math.Abs(b.inc) < verticalTol
	switch {
	case aVert && bVert:
		azm = 0
	case aVert:
		azm = angle.Wrap(b.azm)
	case bVert:
		azm = angle.Wrap(a.azm)
	default:
		azm = angle.Wrap(a.azm + f*angle.Delta(a.azm, b.azm))
	}
	return inc, azm
}

// arcAngles returns the direction at fraction f along the great circle
// from a's direction to b's.
func arcAngles(a, b node, f float64) (inc, azm float64) {
	beta := dogleg(a, b)
	if beta <= minDogleg || math.Pi-beta <= minDogleg {
		return blendAngles(a, b, f)
	}

	s := math.Sin(beta)
	t := a.tangent().Mul(math.Sin((1-f)*beta) / s).
		Add(b.tangent().Mul(math.Sin(f*beta) / s))

	inc = math.Acos(clamp(t.Z/t.Norm(), -1, 1))
	if math.Hypot(t.X, t.Y) < verticalTol {
		_, azm = blendAngles(a, b, f)
		return inc, azm
	}
	return inc, angle.Wrap(math.Atan2(t.Y, t.X))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
