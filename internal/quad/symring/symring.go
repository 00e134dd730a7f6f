// Package symring implements the symmetry-ring peak finder: an
// independent, translation-equivariant, 180-degree-rotation-invariant
// filter whose response is maximal at centers of two-fold symmetric
// intensity structure, plus a multi-scale driver that combines several
// ring radii and reports the peaks of the combined response.
package symring

import (
	"math"
	"sort"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// ringSamples is the number of antipodal sample pairs taken around a
// ring of a given half-size: sixteen evenly spaced directions, four per
// quadrant, to keep the filter cheap while still resolving a ring of
// radius up to a handful of pixels.
const ringSamples = 16

// Response computes the symmetry response at every interior pixel of
// src for a ring of the given half-size (radius in pixels). The
// response is high where antipodal samples on the ring agree with each
// other while differing from the pixel's own value.
func Response(src *grid.Grid[float64], halfSize int) *grid.Grid[float64] {
	size := src.Size()
	out := grid.New[float64](size)

	offsets := ringOffsets(halfSize)

	for r := halfSize; r < size.High-halfSize; r++ {
		for c := halfSize; c < size.Wide-halfSize; c++ {
			center := src.AtFast(r, c)

			agree := 0.0
			contrast := 0.0
			n := len(offsets)
			for k := 0; k < n; k++ {
				o := offsets[k]
				a := src.AtFast(r+o.dr, c+o.dc)
				b := src.AtFast(r-o.dr, c-o.dc)
				diff := a - b
				agree += diff * diff
				meanAB := 0.5 * (a + b)
				dc := meanAB - center
				contrast += dc * dc
			}
			agree /= float64(n)
			contrast /= float64(n)

			// High contrast with antipodal agreement (low `agree`)
			// indicates a two-fold symmetric step through the center.
			out.Set(r, c, contrast/(1.0+agree))
		}
	}
	return out
}

type ringOffset struct {
	dr, dc int
}

func ringOffsets(halfSize int) []ringOffset {
	offsets := make([]ringOffset, 0, ringSamples)
	for k := 0; k < ringSamples; k++ {
		theta := 2 * math.Pi * float64(k) / float64(ringSamples)
		dr := int(math.Round(float64(halfSize) * math.Cos(theta)))
		dc := int(math.Round(float64(halfSize) * math.Sin(theta)))
		if dr == 0 && dc == 0 {
			continue
		}
		offsets = append(offsets, ringOffset{dr: dr, dc: dc})
	}
	return offsets
}

// Peak is a located symmetry-response peak.
type Peak struct {
	Location geom.RowCol
	Strength float64
}

// MultiScale runs Response at each of the declared ring half-sizes,
// combines them by geometric mean, and returns the local maxima of the
// combined response sorted by descending strength.
func MultiScale(src *grid.Grid[float64], halfSizes []int) []Peak {
	if len(halfSizes) == 0 {
		return nil
	}

	size := src.Size()
	combined := grid.NewFilled[float64](size, 1.0)
	maxHalf := 0
	for _, h := range halfSizes {
		if h > maxHalf {
			maxHalf = h
		}
		resp := Response(src, h)
		for r := 0; r < size.High; r++ {
			for c := 0; c < size.Wide; c++ {
				v := resp.AtFast(r, c)
				if v < 0 {
					v = 0
				}
				combined.Set(r, c, combined.AtFast(r, c)*v)
			}
		}
	}
	n := float64(len(halfSizes))
	for i, v := range combined.Raw() {
		combined.Raw()[i] = math.Pow(v, 1.0/n)
	}

	peaks := localMaxima(combined, maxHalf)
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Strength > peaks[j].Strength })
	return peaks
}

// localMaxima finds every interior pixel (outside a border of width
// margin) whose value is strictly greater than all eight neighbors.
func localMaxima(g *grid.Grid[float64], margin int) []Peak {
	size := g.Size()
	var peaks []Peak
	for r := margin; r < size.High-margin; r++ {
		for c := margin; c < size.Wide-margin; c++ {
			v := g.AtFast(r, c)
			if v <= 0 {
				continue
			}
			isMax := true
			for dr := -1; dr <= 1 && isMax; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.AtFast(r+dr, c+dc) >= v {
						isMax = false
						break
					}
				}
			}
			if isMax {
				peaks = append(peaks, Peak{Location: geom.RowCol{Row: r, Col: c}, Strength: v})
			}
		}
	}
	return peaks
}
