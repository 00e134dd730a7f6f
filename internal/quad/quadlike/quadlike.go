// Package quadlike scores how strongly a given location resembles a
// quad target by combining the azimuth cycle verifier's boolean gate
// with the symmetry-ring response's continuous strength.
package quadlike

import (
	"math"

	"quadloco/internal/quad/azimuth"
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
	"quadloco/internal/quad/symring"
)

// Score is the quad-like probability for a candidate location: in
// [0, 1), zero whenever the azimuth gate fails.
type Score struct {
	Passed      bool
	Strength    float64
	Probability float64
}

// strengthScale controls how quickly symmetry strength saturates
// toward a probability of 1.
const strengthScale = 4.0

// At scores how quad-like the source image looks at center, using a
// ring of the given radius for the azimuth check and the same radius
// (plus a smaller companion scale) for the symmetry response.
func At(src *grid.Grid[float64], center geom.Spot, radius float64, minRadius float64) Score {
	passed := azimuth.Verify(src, center, radius, minRadius)
	if !passed {
		return Score{}
	}

	halfSizes := companionScales(radius)
	peaks := symring.MultiScale(src, halfSizes)

	strength := nearestStrength(peaks, center)
	prob := 1.0 - math.Exp(-strength/strengthScale)

	return Score{Passed: true, Strength: strength, Probability: prob}
}

func companionScales(radius float64) []int {
	big := int(math.Round(radius))
	if big < 2 {
		big = 2
	}
	small := big * 3 / 5
	if small < 1 {
		small = 1
	}
	if small == big {
		return []int{big}
	}
	return []int{big, small}
}

func nearestStrength(peaks []symring.Peak, center geom.Spot) float64 {
	best := 0.0
	bestDist := math.Inf(1)
	for _, p := range peaks {
		spot := p.Location.ToSpot()
		d := spot.Sub(center.Vector2).Magnitude()
		if d < bestDist {
			bestDist = d
			best = p.Strength
		}
	}
	return best
}
