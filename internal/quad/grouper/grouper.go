// Package grouper assigns edge-infos to the dominant direction peaks
// found by the angle tracker and fits a ray per group.
package grouper

import (
	"math"
	"sort"

	"quadloco/internal/quad/edgeinfo"
	"quadloco/internal/quad/geom"
)

// DefaultCosPower is the exponent N applied to the direction-agreement
// cosine when building the edgel-to-angle weight table.
const DefaultCosPower = 10

// agreementThreshold is the minimum cosine of the angle between an
// edgel's direction and a candidate peak direction for it to
// contribute to that peak's group.
const agreementThreshold = 0.75

// Group is a fitted ray plus its supporting weight, one per direction
// peak.
type Group struct {
	Ray    geom.Ray
	Weight float64
}

// Build evaluates the |infos|x|peakAngles| weight table and fits one
// ray per peak angle, sorted by descending weight.
func Build(infos []edgeinfo.Info, peakAngles []float64) []Group {
	groups := make([]Group, 0, len(peakAngles))

	for _, pa := range peakAngles {
		angleDir := geom.NewVector2(math.Cos(pa), math.Sin(pa))

		var locSum geom.Vector2
		var dirSum geom.Vector2
		var wSum float64

		for _, in := range infos {
			if in.Weight == 0 {
				continue
			}
			dot := in.Direction.Dot(angleDir)
			if dot <= agreementThreshold {
				continue
			}

			wRadial := math.Pow(dot, DefaultCosPower)
			mag := in.Edgel.Magnitude()
			wRadialGrad := wRadial * mag

			locSum = locSum.Add(in.Edgel.Location.Vector2.Scale(wRadialGrad))
			dirSum = dirSum.Add(in.Edgel.Gradient.Vector2.Scale(wRadial))
			wSum += wRadialGrad
		}

		if wSum == 0 {
			continue
		}

		start := geom.SpotFromVector(locSum.Scale(1.0 / wSum))
		dir := geom.Direction(dirSum)
		groups = append(groups, Group{
			Ray:    geom.NewRay(start, dir),
			Weight: wSum,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Weight > groups[j].Weight
	})
	return groups
}
