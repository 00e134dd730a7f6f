package simquad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/geom"
	"quadloco/internal/simquad"
)

func TestIdealFaceOn2x2MatchesExactQuadrantPattern(t *testing.T) {
	g := simquad.IdealFaceOn2x2()
	require.Equal(t, geom.NewSizeHW(2, 2), g.Size())
	require.Equal(t, 1.0, g.At(0, 0))
	require.Equal(t, 0.0, g.At(0, 1))
	require.Equal(t, 0.0, g.At(1, 0))
	require.Equal(t, 1.0, g.At(1, 1))
}

func TestRenderSaturatesCellsFarFromAxes(t *testing.T) {
	size := geom.NewSizeHW(20, 20)
	center := geom.NewSpot(10, 10)
	g := simquad.Render(size, center, simquad.DefaultTarget(), 8)

	// Far from the axis boundaries each quadrant should be saturated to
	// its pure Hi or Lo value.
	require.InDelta(t, 1.0, g.At(15, 15), 1e-9)
	require.InDelta(t, 1.0, g.At(4, 4), 1e-9)
	require.InDelta(t, 0.0, g.At(4, 15), 1e-9)
	require.InDelta(t, 0.0, g.At(15, 4), 1e-9)
}

func TestRenderClampsOversampleToAtLeastOne(t *testing.T) {
	size := geom.NewSizeHW(2, 2)
	center := geom.NewSpot(1, 1)
	g := simquad.Render(size, center, simquad.DefaultTarget(), 0)
	require.Equal(t, simquad.IdealFaceOn2x2().Raw(), g.Raw())
}
