// Package eval orchestrates the full edge-based detection pipeline:
// gradient computation, edgel extraction, edge-info accumulation,
// direction grouping, pairwise ray intersection, consensus
// reweighting, quad candidate synthesis, and least-squares
// refinement. Run exposes every stage's output; SigQuadWeights returns
// only the final candidates.
package eval

import (
	"math"
	"sort"

	"quadloco/internal/quad/angle"
	"quadloco/internal/quad/edgel"
	"quadloco/internal/quad/edgeinfo"
	"quadloco/internal/quad/fitter"
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
	"quadloco/internal/quad/gridops"
	"quadloco/internal/quad/grouper"
	"quadloco/internal/quad/qconfig"
	"quadloco/internal/quad/target"
)

// Candidate pairs a QuadTarget with its detection weight.
type Candidate = geom.ItemWgt[target.QuadTarget]

// edgeLine is a radial line from a candidate spot to a supporting
// ray's start, used during quad candidate synthesis.
type edgeLine struct {
	angleOfLine float64
	lineDir     geom.Vector2
	turnMoment  float64
}

// Diagnostics exposes the pipeline's intermediate results alongside its
// final candidates, for tools that render or inspect why a detection
// succeeded or failed.
type Diagnostics struct {
	Edgels     []geom.Edgel
	Groups     []grouper.Group
	Candidates []Candidate
}

// SigQuadWeights runs the full pipeline over the float raster src and
// returns candidate quad targets sorted by descending weight.
func SigQuadWeights(src *grid.Grid[float64], params qconfig.Params) []Candidate {
	return Run(src, params).Candidates
}

// Run executes the full pipeline and returns every intermediate stage's
// output alongside the final candidates.
func Run(src *grid.Grid[float64], params qconfig.Params) Diagnostics {
	size := src.Size()

	gradGrid := gridops.Gradient(src, params.GradientStepHalf)
	edgels := edgel.LinkedFrom(gradGrid, params.SupportRatio)
	edgels = edgeinfo.ThinDominant(edgels, size.Diagonal(), params.DominantEdgelMultiple)
	infos := edgeinfo.Accumulate(edgels)

	tracker := angle.NewTracker(params.NumAngleBins)
	for _, in := range infos {
		if in.Weight == 0 {
			continue
		}
		tracker.Consider(in.Angle(), in.Weight, params.AngleHalfSpread)
	}
	peakAngles := tracker.AnglesOfPeaks()

	groups := grouper.Build(infos, peakAngles)
	if len(groups) < 2 {
		return Diagnostics{Edgels: edgels, Groups: groups}
	}

	spots := pairwiseCenters(groups, size, params)
	spots = reweightByConsensus(spots, groups)

	candidates := synthesizeCandidates(spots, groups, params)
	candidates = refitCandidates(candidates, groups, params)

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Weight > candidates[j].Weight
	})
	return Diagnostics{Edgels: edgels, Groups: groups, Candidates: candidates}
}

// pairwiseCenters intersects every unordered pair of rays, discarding
// intersections outside the image and penalizing rays whose starts are
// close together.
func pairwiseCenters(groups []grouper.Group, size geom.SizeHW, params qconfig.Params) []Candidate {
	var spots []Candidate
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			cf := fitter.New()
			cf.AddRay(groups[i].Ray, groups[i].Weight)
			cf.AddRay(groups[j].Ray, groups[j].Weight)
			res, ok := cf.Solve()
			if !ok {
				continue
			}
			if res.Center.Row < 0 || res.Center.Row >= float64(size.High) ||
				res.Center.Col < 0 || res.Center.Col >= float64(size.Wide) {
				continue
			}

			sep := groups[i].Ray.Start.Sub(groups[j].Ray.Start.Vector2).Magnitude()
			ratio := sep / params.RaySeparationSigma
			sepWeight := 1.0 - math.Exp(-(ratio * ratio))

			weight := groups[i].Weight * groups[j].Weight * sepWeight
			if weight <= 0 {
				continue
			}

			spots = append(spots, Candidate{
				Item:   target.New(res.Center, groups[i].Ray.Direction, groups[j].Ray.Direction, math.NaN()),
				Weight: weight,
			})
		}
	}
	return spots
}

// reweightByConsensus multiplies each spot's weight by its agreement
// with every ray, not just the pair that produced it.
func reweightByConsensus(spots []Candidate, groups []grouper.Group) []Candidate {
	out := make([]Candidate, len(spots))
	for i, sp := range spots {
		consensus := 0.0
		for _, g := range groups {
			d := g.Ray.AlongDistance(sp.Item.Center)
			p := math.Exp(-d * d)
			consensus += g.Weight * p
		}
		out[i] = Candidate{Item: sp.Item, Weight: sp.Weight * consensus}
	}
	return out
}

// synthesizeCandidates forms, for each spot, the radial edge lines to
// every ray and attempts to identify two near-orthogonal opposed axis
// pairs (+X, +Y) from their turn moments.
func synthesizeCandidates(spots []Candidate, groups []grouper.Group, params qconfig.Params) []Candidate {
	var out []Candidate

	for _, sp := range spots {
		lines := buildEdgeLines(sp.Item.Center, groups)
		if len(lines) < 4 {
			continue
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].angleOfLine < lines[j].angleOfLine })

		xNdx := firstPositiveMoment(lines)
		if xNdx < 0 {
			continue
		}
		yNdx := nextOppositeSignWithinPi(lines, xNdx)
		if yNdx < 0 {
			continue
		}

		xOppNdx, xOppWeight := findOpposite(lines, xNdx, params.EdgeLineAngleSigma)
		if xOppNdx < 0 {
			continue
		}
		yOppNdx, yOppWeight := findOpposite(lines, yNdx, params.EdgeLineAngleSigma)
		if yOppNdx < 0 {
			continue
		}

		dirX := geom.Direction(lines[xNdx].lineDir.Sub(lines[xOppNdx].lineDir))
		dirY := geom.Direction(lines[yNdx].lineDir.Sub(lines[yOppNdx].lineDir))

		weight := xOppWeight * yOppWeight
		out = append(out, Candidate{
			Item:   target.New(sp.Item.Center, dirX, dirY, math.NaN()),
			Weight: weight,
		})
	}
	return out
}

func buildEdgeLines(spot geom.Spot, groups []grouper.Group) []edgeLine {
	lines := make([]edgeLine, 0, len(groups))
	for _, g := range groups {
		toRay := g.Ray.Start.Sub(spot.Vector2)
		if toRay.Magnitude() == 0 {
			continue
		}
		lineDir := geom.Direction(toRay)
		lines = append(lines, edgeLine{
			angleOfLine: lineDir.Angle(),
			lineDir:     lineDir,
			turnMoment:  geom.Outer(lineDir, g.Ray.Direction),
		})
	}
	return lines
}

func firstPositiveMoment(lines []edgeLine) int {
	for i, l := range lines {
		if l.turnMoment > 0 {
			return i
		}
	}
	return -1
}

func nextOppositeSignWithinPi(lines []edgeLine, fromNdx int) int {
	n := len(lines)
	base := lines[fromNdx].angleOfLine
	fromSign := sign(lines[fromNdx].turnMoment)
	for step := 1; step < n; step++ {
		ndx := (fromNdx + step) % n
		da := geom.Principal(lines[ndx].angleOfLine - base)
		if da < 0 {
			da += 2 * math.Pi
		}
		if da > math.Pi {
			break
		}
		if sign(lines[ndx].turnMoment) != fromSign && lines[ndx].turnMoment != 0 {
			return ndx
		}
	}
	return -1
}

// findOpposite finds the other line with the same sign of moment as
// lines[ndx] whose direction is closest to the antipode of
// lines[ndx].lineDir, returning its index and the Gaussian weight of
// that match (sigma on the unit-circle chordal distance).
func findOpposite(lines []edgeLine, ndx int, sigma float64) (int, float64) {
	target := lines[ndx].lineDir.Scale(-1)
	wantSign := sign(lines[ndx].turnMoment)

	best := -1
	bestDist := math.Inf(1)
	for i, l := range lines {
		if i == ndx {
			continue
		}
		if sign(l.turnMoment) != wantSign {
			continue
		}
		d := l.lineDir.Sub(target).Magnitude()
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return -1, 0
	}
	weight := math.Exp(-(bestDist / sigma) * (bestDist / sigma))
	return best, weight
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// refitCandidates re-collects the rays nearly collinear with each
// candidate's center and replaces the center with a least-squares fit,
// discarding candidates with too little support.
func refitCandidates(candidates []Candidate, groups []grouper.Group, params qconfig.Params) []Candidate {
	var out []Candidate
	for _, cand := range candidates {
		cf := fitter.New()
		support := 0
		for _, g := range groups {
			miss := math.Abs(g.Ray.AlongDistance(cand.Item.Center))
			if miss >= params.EdgeMissMax {
				continue
			}
			cf.AddRay(g.Ray, g.Weight)
			support++
		}
		if support < params.MinSupportingRays {
			continue
		}
		res, ok := cf.Solve()
		if !ok {
			continue
		}

		refit := target.New(res.Center, cand.Item.DirX, cand.Item.DirY, res.Sigma.Value)
		weight := math.Exp(-res.Sigma.Value * res.Sigma.Value)
		if !res.Sigma.Valid {
			continue
		}
		out = append(out, Candidate{Item: refit, Weight: weight})
	}
	return out
}
