// Package gridops implements the per-pixel grid operations the
// detection pipeline builds on: central-difference gradient fields,
// bilinear sampling, border fill, and sub-grid extraction.
package gridops

import (
	"math"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// DefaultStepHalf is the default half-step used by Gradient.
const DefaultStepHalf = 1

// Gradient computes the central-difference gradient field of src. The
// outer border of width stepHalf is filled with an invalid (NaN, NaN)
// Grad sentinel, since no interior difference can be formed there.
func Gradient(src *grid.Grid[float64], stepHalf int) *grid.Grid[geom.Grad] {
	size := src.Size()
	out := grid.NewFilled[geom.Grad](size, invalidGrad())

	h := stepHalf
	denom := 2.0 * float64(h)
	for r := h; r < size.High-h; r++ {
		for c := h; c < size.Wide-h; c++ {
			gr := (src.AtFast(r+h, c) - src.AtFast(r-h, c)) / denom
			gc := (src.AtFast(r, c+h) - src.AtFast(r, c-h)) / denom
			out.Set(r, c, geom.NewGrad(gr, gc))
		}
	}
	return out
}

func invalidGrad() geom.Grad {
	return geom.NewGrad(math.NaN(), math.NaN())
}

// IsValidGrad reports whether g is not the invalid sentinel.
func IsValidGrad(g geom.Grad) bool {
	return g.IsValid()
}
