package edgel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/edgel"
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
	"quadloco/internal/quad/gridops"
)

func stepGrid(high, wide int) *grid.Grid[float64] {
	g := grid.New[float64](geom.NewSizeHW(high, wide))
	for r := 0; r < high; r++ {
		v := 0.0
		if r >= high/2 {
			v = 10.0
		}
		for c := 0; c < wide; c++ {
			g.Set(r, c, v)
		}
	}
	return g
}

func TestAllFromEmitsEveryNonZeroInteriorEdgel(t *testing.T) {
	g := stepGrid(8, 8)
	grad := gridops.Gradient(g, gridops.DefaultStepHalf)
	edgels := edgel.AllFrom(grad)

	require.Len(t, edgels, 2*(8-2))
	for _, e := range edgels {
		require.True(t, e.IsValid())
		require.Greater(t, e.Magnitude(), 0.0)
	}
}

func TestLinkedFromRejectsUniformRegion(t *testing.T) {
	g := grid.New[float64](geom.NewSizeHW(8, 8))
	g.Fill(5.0)
	grad := gridops.Gradient(g, gridops.DefaultStepHalf)
	edgels := edgel.LinkedFrom(grad, edgel.DefaultSupportRatio)
	require.Empty(t, edgels)
}

func TestLinkedFromStepEdgeCount(t *testing.T) {
	g := stepGrid(8, 8)
	grad := gridops.Gradient(g, gridops.DefaultStepHalf)
	edgels := edgel.LinkedFrom(grad, edgel.DefaultSupportRatio)
	require.Len(t, edgels, 2*(8-4))
}
