// Package target defines QuadTarget, the detector's final output: a
// candidate center plus the two in-image axis directions of the
// quadrant pattern.
package target

import (
	"math"

	"quadloco/internal/quad/geom"
	"quadloco/pkg/geometry"
)

// stableAngleTolerance is the minimum angular separation between dirX
// and dirY for a QuadTarget to be considered stable.
const stableAngleTolerance = 1.0e-6

// QuadTarget is a candidate quad-fiducial center with its two axis
// directions and a center uncertainty.
type QuadTarget struct {
	Center      geom.Spot
	DirX        geom.Vector2
	DirY        geom.Vector2
	CenterSigma float64
}

// New constructs a QuadTarget from unit axis directions.
func New(center geom.Spot, dirX, dirY geom.Vector2, sigma float64) QuadTarget {
	return QuadTarget{
		Center:      center,
		DirX:        geom.Direction(dirX),
		DirY:        geom.Direction(dirY),
		CenterSigma: sigma,
	}
}

// Dextral reports whether dirY is counter-clockwise from dirX.
func (q QuadTarget) Dextral() bool {
	return geom.Outer(q.DirX, q.DirY) > 0
}

// Stable reports whether dirX and dirY are meaningfully distinct
// directions.
func (q QuadTarget) Stable() bool {
	angle := relativeAngle(q.DirX, q.DirY)
	return math.Abs(angle) > stableAngleTolerance
}

func relativeAngle(a, b geom.Vector2) float64 {
	return geom.Principal(b.Angle() - a.Angle())
}

// Equal reports whether q and o describe the same quad target up to
// the pattern's inherent half-turn symmetry: (center, -dirX, -dirY) is
// equivalent to (center, dirX, dirY).
func (q QuadTarget) Equal(o QuadTarget) bool {
	if q.Center != o.Center {
		return false
	}
	sameOrientation := nearlyEqualDir(q.DirX, o.DirX) && nearlyEqualDir(q.DirY, o.DirY)
	flippedOrientation := nearlyEqualDir(q.DirX, o.DirX.Scale(-1)) && nearlyEqualDir(q.DirY, o.DirY.Scale(-1))
	return sameOrientation || flippedOrientation
}

func nearlyEqualDir(a, b geom.Vector2) bool {
	const eps = 1.0e-9
	return math.Abs(a.Row-b.Row) < eps && math.Abs(a.Col-b.Col) < eps
}

// Footprint returns the four corners of the quad's boundary square at
// the given half-size, in counter-clockwise order starting from the
// (+DirX,+DirY) corner. The result is in (X,Y) = (Col,Row) order for
// consumption by callers working in image/overlay coordinates.
func (q QuadTarget) Footprint(halfSize float64) []geometry.Point2D {
	signs := [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	corners := make([]geometry.Point2D, len(signs))
	for i, s := range signs {
		off := q.DirX.Scale(s[0] * halfSize).Add(q.DirY.Scale(s[1] * halfSize))
		corners[i] = geometry.NewPoint2D(q.Center.Col+off.Col, q.Center.Row+off.Row)
	}
	return corners
}

// Bounds returns the axis-aligned bounding box of the quad's footprint
// at the given half-size, for quick containment/overlap checks.
func (q QuadTarget) Bounds(halfSize float64) geometry.Rect {
	return geometry.BoundingBox(q.Footprint(halfSize))
}
