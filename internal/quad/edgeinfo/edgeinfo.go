// Package edgeinfo accumulates, for each edgel, a running estimate of
// how strongly it sits on a radial edge of a quad target, by comparing
// it pairwise against every other edgel in the set.
package edgeinfo

import (
	"math"
	"sort"

	"quadloco/internal/quad/geom"
)

// DefaultGapSigma is sigma used for the Gaussian gap weight.
const DefaultGapSigma = 2.0

// DefaultFacingCosPower is the exponent applied to the facing dot
// product.
const DefaultFacingCosPower = 30

// facingThreshold is the minimum facing dot product (anti-parallel
// window of about +-60 degrees) for a pair to be considered.
const facingThreshold = 0.5

// gapSigmaMultiple bounds how many sigmas of gap are tolerated before a
// pair is skipped.
const gapSigmaMultiple = 4.0

// Info is the per-edgel running tracker: the edgel itself, its
// accumulated radial weight, and the accumulated direction sum.
type Info struct {
	Edgel     geom.Edgel
	Weight    float64
	Direction geom.Vector2
}

// Angle returns atan2(direction.col, direction.row) for this edgel's
// best-estimate radial direction.
func (in Info) Angle() float64 {
	return in.Direction.Angle()
}

// Accumulate evaluates every ordered pair of edgels and returns the
// per-edgel Info in the same order as edgels.
func Accumulate(edgels []geom.Edgel) []Info {
	n := len(edgels)
	weights := make([]float64, n)
	dirSums := make([]geom.Vector2, n)

	for i := 0; i < n; i++ {
		ei := edgels[i]
		for j := i + 1; j < n; j++ {
			ej := edgels[j]

			dotFacing := -ei.Gradient.Dot(ej.Gradient.Vector2) / (ei.Magnitude() * ej.Magnitude())
			if dotFacing < facingThreshold {
				continue
			}

			dirI := geom.Direction(ei.Gradient.Vector2)
			dirJ := geom.Direction(ej.Gradient.Vector2)

			gap := 0.5 * (dirI.Dot(ej.Location.Sub(ei.Location.Vector2)) +
				dirJ.Dot(ei.Location.Sub(ej.Location.Vector2)))
			if math.Abs(gap) >= gapSigmaMultiple*DefaultGapSigma {
				continue
			}

			wFacing := math.Pow(dotFacing, DefaultFacingCosPower)
			wGap := math.Exp(-(gap / DefaultGapSigma) * (gap / DefaultGapSigma))
			w := wFacing * wGap

			meanDirIJ := geom.Direction(dirI.Sub(dirJ))
			meanDirJI := geom.Direction(dirJ.Sub(dirI))

			weights[i] += w
			dirSums[i] = dirSums[i].Add(meanDirIJ.Scale(w))

			weights[j] += w
			dirSums[j] = dirSums[j].Add(meanDirJI.Scale(w))
		}
	}

	out := make([]Info, n)
	for i, e := range edgels {
		out[i] = Info{
			Edgel:     e,
			Weight:    weights[i],
			Direction: geom.Direction(dirSums[i]),
		}
	}
	return out
}

// DefaultDominantMultiple is the default multiplier applied to the
// grid diagonal to bound the number of edgels kept by ThinDominant.
const DefaultDominantMultiple = 6.0

// ThinDominant keeps only the strongest k = min(len(edgels),
// multiple*diagonal) edgels by gradient magnitude, returning them
// still in their original relative order.
func ThinDominant(edgels []geom.Edgel, diagonal float64, multiple float64) []geom.Edgel {
	k := int(multiple * diagonal)
	if k > len(edgels) {
		k = len(edgels)
	}
	if k >= len(edgels) {
		return edgels
	}

	type indexed struct {
		edgel geom.Edgel
		ndx   int
	}
	tmp := make([]indexed, len(edgels))
	for i, e := range edgels {
		tmp[i] = indexed{edgel: e, ndx: i}
	}
	sort.Slice(tmp, func(i, j int) bool {
		return tmp[i].edgel.Magnitude() > tmp[j].edgel.Magnitude()
	})
	tmp = tmp[:k]
	sort.Slice(tmp, func(i, j int) bool {
		return tmp[i].ndx < tmp[j].ndx
	})

	out := make([]geom.Edgel, k)
	for i, t := range tmp {
		out[i] = t.edgel
	}
	return out
}
