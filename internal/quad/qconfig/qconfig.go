// Package qconfig collects the named thresholds and tuning constants
// of the detection pipeline. eval.Run reads most of them from Params;
// the fields whose docs say so are not read by any stage, and the stage
// named there uses its own package constant instead.
package qconfig

// Params holds every tunable threshold of the pipeline. A zero Params
// is not usable; start from Default() and use the With* fluent copies
// to override individual fields.
type Params struct {
	// SupportRatio is the neighborhood projection ratio threshold for
	// linked edgel extraction (edgel.DefaultSupportRatio).
	SupportRatio float64

	// GradientStepHalf is the half-step used by central-difference
	// gradient computation (gridops.DefaultStepHalf).
	GradientStepHalf int

	// DominantEdgelMultiple is the multiplier k = multiple*diagonal
	// bounding how many edgels survive thinning (edgeinfo.ThinDominant).
	DominantEdgelMultiple float64

	// NumAngleBins is the number of bins in the angle tracker's
	// circular histogram (angle.DefaultNumBins).
	NumAngleBins int

	// AngleHalfSpread is the half-spread (in bins) of the Gaussian
	// smear deposited per angle vote.
	AngleHalfSpread int

	// GroupCosPower mirrors the exponent N applied to direction-agreement
	// cosines when building edge groups. Not read: grouper.Build uses
	// grouper.DefaultCosPower.
	GroupCosPower float64

	// EdgeInfoFacingCosPower mirrors the exponent N applied to the facing
	// dot product in edge-info accumulation. Not read:
	// edgeinfo.Accumulate uses edgeinfo.DefaultFacingCosPower.
	EdgeInfoFacingCosPower float64

	// EdgeInfoGapSigma mirrors sigma for the Gaussian gap weight in
	// edge-info accumulation. Not read: edgeinfo.Accumulate uses
	// edgeinfo.DefaultGapSigma.
	EdgeInfoGapSigma float64

	// RaySeparationSigma is sigma for the separation-weight penalty
	// applied to intersections of rays whose starts are close together
	// (eval stage 2). Tied to the gradient's central-difference stride
	// of 1 pixel: at 2.5x that stride, two rays are assumed to arise
	// from the same multi-pixel-wide gradient footprint rather than
	// from two distinct edges.
	RaySeparationSigma float64

	// EdgeLineAngleSigma is sigma for the Gaussian weight given to an
	// opposite-line match by its unit-circle distance (eval stage 4).
	EdgeLineAngleSigma float64

	// MinSupportingRays is the minimum number of nearly-collinear rays
	// required to keep a quad candidate through least-squares refit
	// (eval stage 5).
	MinSupportingRays int

	// EdgeMissMax is the maximum perpendicular distance (px) a ray may
	// miss a candidate's center by and still be treated as supporting
	// it during least-squares refit (eval stage 5).
	EdgeMissMax float64

	// SymmetryRingRadii are ring half-sizes for the multi-scale
	// symmetry filter. Not read: callers pass half-sizes to
	// symring.MultiScale directly (quadlike.At derives its own).
	SymmetryRingRadii []int

	// AzimuthInnerRadiusFraction is a fraction of the sampling radius
	// for the "tiny inner disk" of the azimuth cycle verifier. Not read:
	// azimuth.Verify takes the inner radius as its minRadius argument.
	AzimuthInnerRadiusFraction float64
}

// Default returns the pipeline's baseline parameters.
func Default() Params {
	return Params{
		SupportRatio:               2.5,
		GradientStepHalf:           1,
		DominantEdgelMultiple:      6.0,
		NumAngleBins:               32,
		AngleHalfSpread:            2,
		GroupCosPower:              10,
		EdgeInfoFacingCosPower:     30,
		EdgeInfoGapSigma:           2.0,
		RaySeparationSigma:         2.5,
		EdgeLineAngleSigma:         0.5,
		MinSupportingRays:          4,
		EdgeMissMax:                2.0,
		SymmetryRingRadii:          []int{5, 3},
		AzimuthInnerRadiusFraction: 0.15,
	}
}

// WithSupportRatio returns a copy of p with SupportRatio overridden.
func (p Params) WithSupportRatio(v float64) Params {
	p.SupportRatio = v
	return p
}

// WithNumAngleBins returns a copy of p with NumAngleBins overridden.
func (p Params) WithNumAngleBins(v int) Params {
	p.NumAngleBins = v
	return p
}

// WithSymmetryRingRadii returns a copy of p with SymmetryRingRadii overridden.
func (p Params) WithSymmetryRingRadii(v []int) Params {
	p.SymmetryRingRadii = append([]int(nil), v...)
	return p
}

// WithMinSupportingRays returns a copy of p with MinSupportingRays overridden.
func (p Params) WithMinSupportingRays(v int) Params {
	p.MinSupportingRays = v
	return p
}
