package symring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
	"quadloco/internal/quad/symring"
)

// quadrantGrid builds a size x size grid with a two-fold (180 degree)
// symmetric pinwheel pattern about (cr, cc): the value depends only on
// the sign of the product of offsets from center, which is preserved
// under point reflection through the center.
func quadrantGrid(size, cr, cc int) *grid.Grid[float64] {
	g := grid.New[float64](geom.NewSizeHW(size, size))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			v := 0.0
			if (r-cr)*(c-cc) >= 0 {
				v = 1.0
			}
			g.Set(r, c, v)
		}
	}
	return g
}

func TestResponseIsPositiveAtSymmetryCenter(t *testing.T) {
	g := quadrantGrid(21, 10, 10)
	resp := symring.Response(g, 3)
	require.Greater(t, resp.AtFast(10, 10), 0.0)
}

func TestMultiScaleFindsPeakNearSymmetryCenter(t *testing.T) {
	g := quadrantGrid(25, 12, 12)
	peaks := symring.MultiScale(g, []int{2, 3})
	require.NotEmpty(t, peaks)

	best := peaks[0]
	dr := best.Location.Row - 12
	dc := best.Location.Col - 12
	dist := dr*dr + dc*dc
	require.LessOrEqual(t, dist, 9)
	require.Greater(t, best.Strength, 0.0)
}

func TestMultiScaleEmptyHalfSizesReturnsNil(t *testing.T) {
	g := quadrantGrid(10, 5, 5)
	require.Nil(t, symring.MultiScale(g, nil))
}
