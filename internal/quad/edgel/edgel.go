// Package edgel extracts candidate edge-point samples (edgels) from a
// gradient field, either unconditionally (AllFrom) or filtered to those
// whose immediate neighborhood corroborates the gradient direction
// (LinkedFrom, used by the core pipeline).
package edgel

import (
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// DefaultSupportRatio is the neighborhood projection ratio threshold
// used by LinkedFrom.
const DefaultSupportRatio = 2.5

// borderRelax scales down the support ratio for edgels on the
// outermost two cells of the grid. It only takes effect for cells whose
// eight neighbors are all valid; cells next to an invalid gradient
// border are skipped by LinkedFrom instead.
const borderRelax = 0.5

// borderWidth is the width of the relaxed-threshold border.
const borderWidth = 2

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// AllFrom emits every interior non-zero edgel in grad, with no
// corroboration filter.
func AllFrom(grad *grid.Grid[geom.Grad]) []geom.Edgel {
	size := grad.Size()
	var out []geom.Edgel
	for r := 1; r < size.High-1; r++ {
		for c := 1; c < size.Wide-1; c++ {
			g := grad.AtFast(r, c)
			if !g.IsValid() || g.Magnitude() == 0 {
				continue
			}
			out = append(out, geom.NewEdgel(geom.NewSpot(float64(r), float64(c)), g))
		}
	}
	return out
}

// LinkedFrom emits every interior non-zero edgel whose neighborhood
// projection ratio exceeds supportRatio (half that value within the
// outermost two-cell border). A cell with any invalid neighbor is not
// emitted, so for a grid from gridops.Gradient the cells adjacent to its
// invalid border never are.
func LinkedFrom(gradGrid *grid.Grid[geom.Grad], supportRatio float64) []geom.Edgel {
	size := gradGrid.Size()
	var out []geom.Edgel

	for r := 1; r < size.High-1; r++ {
		for c := 1; c < size.Wide-1; c++ {
			g := gradGrid.AtFast(r, c)
			if !g.IsValid() || g.Magnitude() == 0 {
				continue
			}

			sum := g.Vector2
			complete := true
			for _, off := range neighborOffsets {
				nr, nc := r+off[0], c+off[1]
				if nr < 0 || nr >= size.High || nc < 0 || nc >= size.Wide {
					complete = false
					break
				}
				ng := gradGrid.AtFast(nr, nc)
				if !ng.IsValid() {
					complete = false
					break
				}
				sum = sum.Add(ng.Vector2)
			}
			if !complete {
				// A cell missing any neighbor's gradient (always true
				// for cells adjacent to the gradient's own invalid
				// border) has no well-formed neighborhood to
				// corroborate against.
				continue
			}

			mag := g.Magnitude()
			proj := sum.Dot(g.Vector2) / mag

			threshold := supportRatio
			if r < borderWidth || r >= size.High-borderWidth ||
				c < borderWidth || c >= size.Wide-borderWidth {
				threshold *= borderRelax
			}

			if proj > threshold*mag {
				out = append(out, geom.NewEdgel(geom.NewSpot(float64(r), float64(c)), g))
			}
		}
	}
	return out
}
