package gridops

import (
	"math"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// BilinearSample samples src at the fractional location s using
// bilinear interpolation of the four surrounding cell values. Returns
// (0, false) if s falls outside the region where all four samples are
// in bounds.
func BilinearSample(src *grid.Grid[float64], s geom.Spot) (float64, bool) {
	size := src.Size()

	r0 := math.Floor(s.Row)
	c0 := math.Floor(s.Col)
	r0i, c0i := int(r0), int(c0)

	if r0i < 0 || c0i < 0 || r0i+1 >= size.High || c0i+1 >= size.Wide {
		return 0, false
	}

	fr := s.Row - r0
	fc := s.Col - c0

	v00 := src.AtFast(r0i, c0i)
	v01 := src.AtFast(r0i, c0i+1)
	v10 := src.AtFast(r0i+1, c0i)
	v11 := src.AtFast(r0i+1, c0i+1)

	top := v00 + fc*(v01-v00)
	bot := v10 + fc*(v11-v10)
	return top + fr*(bot-top), true
}

// BorderFill overwrites the outer border of width w in place with
// value.
func BorderFill(g *grid.Grid[float64], w int, value float64) {
	size := g.Size()
	for r := 0; r < size.High; r++ {
		for c := 0; c < size.Wide; c++ {
			if r < w || r >= size.High-w || c < w || c >= size.Wide-w {
				g.Set(r, c, value)
			}
		}
	}
}

// SubGrid returns a copy of the rectangular region described by spec,
// as a generic Grid.Chip wrapper specialized to float64 for callers
// that don't want to import grid directly.
func SubGrid(g *grid.Grid[float64], spec geom.ChipSpec) *grid.Grid[float64] {
	return g.Chip(spec)
}

// ByteToFloat converts a byte raster (as produced by a PGM reader) into
// a float64 grid with values in [0, 255].
func ByteToFloat(src *grid.Grid[byte]) *grid.Grid[float64] {
	size := src.Size()
	out := grid.New[float64](size)
	for i, v := range src.Raw() {
		out.Raw()[i] = float64(v)
	}
	return out
}
