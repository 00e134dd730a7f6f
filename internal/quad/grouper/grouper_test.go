package grouper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/edgeinfo"
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grouper"
)

func infoAt(row, col, gradRow, gradCol, dirRow, dirCol, weight float64) edgeinfo.Info {
	return edgeinfo.Info{
		Edgel:     geom.NewEdgel(geom.NewSpot(row, col), geom.NewGrad(gradRow, gradCol)),
		Weight:    weight,
		Direction: geom.NewVector2(dirRow, dirCol),
	}
}

func TestBuildFitsOneGroupPerPeakAngle(t *testing.T) {
	infos := []edgeinfo.Info{
		infoAt(5, 5, 2, 0, 1, 0, 1.0),
		infoAt(5, 7, 3, 0, 1, 0, 1.0),
	}

	groups := grouper.Build(infos, []float64{0.0})
	require.Len(t, groups, 1)

	g := groups[0]
	require.InDelta(t, 5.0, g.Weight, 1e-9)
	require.InDelta(t, 1.0, g.Ray.Direction.Row, 1e-9)
	require.InDelta(t, 0.0, g.Ray.Direction.Col, 1e-9)
	require.InDelta(t, 5.0, g.Ray.Start.Row, 1e-9)
	require.InDelta(t, 6.2, g.Ray.Start.Col, 1e-9)
}

func TestBuildSkipsZeroWeightInfos(t *testing.T) {
	infos := []edgeinfo.Info{
		infoAt(0, 0, 1, 0, 1, 0, 0.0),
	}
	groups := grouper.Build(infos, []float64{0.0})
	require.Empty(t, groups)
}

func TestBuildOmitsPeakWithNoAgreeingInfos(t *testing.T) {
	infos := []edgeinfo.Info{
		infoAt(0, 0, 1, 0, 1, 0, 1.0),
	}
	// A peak angle orthogonal to the only info's direction should not
	// pick it up.
	groups := grouper.Build(infos, []float64{geom.TwoPi / 4})
	require.Empty(t, groups)
}

func TestBuildSortsGroupsByDescendingWeight(t *testing.T) {
	infos := []edgeinfo.Info{
		infoAt(0, 0, 1, 0, 1, 0, 1.0),
		infoAt(0, 0, 5, 1, 0, 1, 5.0),
	}
	groups := grouper.Build(infos, []float64{0.0, geom.TwoPi / 4})
	require.Len(t, groups, 2)
	require.GreaterOrEqual(t, groups[0].Weight, groups[1].Weight)
}
