package geom

import "math"

// TwoPi is the full-circle period.
const TwoPi = 2.0 * math.Pi

// AngRing maps angles to bin indices around a full circle split into a
// fixed number of bins, caching the bin width and its inverse. Angles
// are normalized to a principal value in [-pi, +pi) before indexing, so
// arithmetic near the wrap point (e.g. an angle near -pi compared with
// one near +pi) behaves sensibly.
type AngRing struct {
	NumBins     int
	anglePerBin float64
	invPerBin   float64
}

// NewAngRing constructs an AngRing with numBins bins spanning the full
// circle.
func NewAngRing(numBins int) AngRing {
	delta := TwoPi / float64(numBins)
	return AngRing{NumBins: numBins, anglePerBin: delta, invPerBin: 1.0 / delta}
}

// AnglePerBin returns the bin width in radians.
func (r AngRing) AnglePerBin() float64 {
	return r.anglePerBin
}

// Principal maps an arbitrary angle into [-pi, +pi).
func Principal(angle float64) float64 {
	a := math.Mod(angle+math.Pi, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a - math.Pi
}

// IndexFor returns the bin index containing angle.
func (r AngRing) IndexFor(angle float64) int {
	ndx := int(math.Floor((Principal(angle) + math.Pi) * r.invPerBin))
	if ndx >= r.NumBins {
		ndx = r.NumBins - 1
	}
	if ndx < 0 {
		ndx = 0
	}
	return ndx
}

// AngleAt returns the angle at the start of bin i (wrapping i modulo
// NumBins).
func (r AngRing) AngleAt(i int) float64 {
	i = ((i % r.NumBins) + r.NumBins) % r.NumBins
	return float64(i)*r.anglePerBin - math.Pi
}

// RelativeIndex wraps an arbitrary (possibly negative or overflowing)
// bin offset from base modulo NumBins.
func (r AngRing) RelativeIndex(base, offset int) int {
	i := base + offset
	i %= r.NumBins
	if i < 0 {
		i += r.NumBins
	}
	return i
}

// Distance returns the unsigned angular distance between a and b on the
// full circle, in [0, pi].
func Distance(a, b float64) float64 {
	d := Principal(a - b)
	if d < 0 {
		d = -d
	}
	if d > math.Pi {
		d = TwoPi - d
	}
	return d
}
