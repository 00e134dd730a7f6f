package fitter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/fitter"
	"quadloco/internal/quad/geom"
)

func TestSolveTwoPerpendicularRaysIntersectAtKnownPoint(t *testing.T) {
	cf := fitter.New()
	// Ray.Direction is the line's normal (as grouper.Build constructs
	// it from the gradient), not its tangent. direction=(0,1) through
	// (0,5) is the line col=5; direction=(1,0) through (5,0) is the
	// line row=5. They cross at (5, 5).
	cf.AddRay(geom.NewRay(geom.NewSpot(0, 5), geom.NewVector2(0, 1)), 1.0)
	cf.AddRay(geom.NewRay(geom.NewSpot(5, 0), geom.NewVector2(1, 0)), 1.0)

	res, ok := cf.Solve()
	require.True(t, ok)
	require.InDelta(t, 5.0, res.Center.Row, 1e-9)
	require.InDelta(t, 5.0, res.Center.Col, 1e-9)
}

func TestSolveManyRaysThroughSamePointRecoversIt(t *testing.T) {
	center := geom.NewSpot(12, 7)
	normals := []geom.Vector2{
		geom.NewVector2(1, 0),
		geom.NewVector2(0, 1),
		geom.NewVector2(1, 1),
		geom.NewVector2(1, -1),
	}

	cf := fitter.New()
	for _, n := range normals {
		// Each ray's line has normal n and passes through center, so
		// start=center trivially satisfies its own constraint.
		cf.AddRay(geom.NewRay(center, geom.Direction(n)), 1.0)
	}

	res, ok := cf.Solve()
	require.True(t, ok)
	require.InDelta(t, center.Row, res.Center.Row, 1e-6)
	require.InDelta(t, center.Col, res.Center.Col, 1e-6)
}

func TestSolveParallelRaysAreSingular(t *testing.T) {
	cf := fitter.New()
	cf.AddRay(geom.NewRay(geom.NewSpot(0, 0), geom.NewVector2(1, 0)), 1.0)
	cf.AddRay(geom.NewRay(geom.NewSpot(0, 1), geom.NewVector2(1, 0)), 1.0)

	_, ok := cf.Solve()
	require.False(t, ok)
}

func TestSolveWithNoRaysIsSingular(t *testing.T) {
	cf := fitter.New()
	require.Equal(t, 0, cf.NumObservations())
	_, ok := cf.Solve()
	require.False(t, ok)
}

func TestNumObservationsCounts(t *testing.T) {
	cf := fitter.New()
	cf.AddRay(geom.NewRay(geom.NewSpot(0, 0), geom.NewVector2(1, 0)), 1.0)
	cf.AddRay(geom.NewRay(geom.NewSpot(1, 1), geom.NewVector2(0, 1)), 1.0)
	require.Equal(t, 2, cf.NumObservations())
}
