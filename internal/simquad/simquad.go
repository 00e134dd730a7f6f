// Package simquad renders synthetic, face-on quad-target images for
// testing the detection pipeline without checked-in sample rasters.
// It deliberately covers only the flat, orthographic case: no camera
// projection or perspective distortion, since calibrating and modeling
// a real camera is out of scope for the detector itself.
package simquad

import (
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
)

// Target describes a two-fold alternating light/dark quadrant pattern
// in its own reference frame, centered at the origin with quadrant
// boundaries along dirX/dirY. The pattern is unbounded: every sample
// falls in one of the quadrants.
type Target struct {
	DirX    geom.Vector2
	DirY    geom.Vector2
	Lo      float64
	Hi      float64
}

// DefaultTarget returns a target aligned with the row/col axes, dark
// quadrants at 0 and light quadrants at 1.
func DefaultTarget() Target {
	return Target{
		DirX: geom.NewVector2(1, 0),
		DirY: geom.NewVector2(0, 1),
		Lo:   0,
		Hi:   1,
	}
}

// quadrantValue classifies a point in the target's own frame (relative
// to its center) into one of the two alternating intensities. The
// pattern is the sign agreement of the two axis projections: same sign
// (both positive or both negative) is Hi, opposite signs is Lo.
func (t Target) quadrantValue(localRow, localCol float64) float64 {
	row := localRow*t.DirX.Row + localCol*t.DirX.Col
	col := localRow*t.DirY.Row + localCol*t.DirY.Col
	if (row >= 0) == (col >= 0) {
		return t.Hi
	}
	return t.Lo
}

// Render rasterizes target into a size grid centered at center, using
// numOverSample x numOverSample regularly spaced sub-pixel samples per
// output cell to approximate the target's area-averaged intensity
// (box-filter antialiasing, no camera projection).
func Render(size geom.SizeHW, center geom.Spot, target Target, numOverSample int) *grid.Grid[float64] {
	if numOverSample < 1 {
		numOverSample = 1
	}
	out := grid.New[float64](size)
	step := 1.0 / float64(numOverSample)
	offset := step / 2.0

	for r := 0; r < size.High; r++ {
		for c := 0; c < size.Wide; c++ {
			sum := 0.0
			for sr := 0; sr < numOverSample; sr++ {
				sampleRow := float64(r) + offset + float64(sr)*step
				for sc := 0; sc < numOverSample; sc++ {
					sampleCol := float64(c) + offset + float64(sc)*step
					localRow := sampleRow - center.Row
					localCol := sampleCol - center.Col
					sum += target.quadrantValue(localRow, localCol)
				}
			}
			n := float64(numOverSample * numOverSample)
			out.Set(r, c, sum/n)
		}
	}
	return out
}

// IdealFaceOn2x2 renders the minimal case directly: a 2x2 grid with
// the target center at the grid center and no oversampling, which
// must equal [[1,0],[0,1]] exactly for the default target.
func IdealFaceOn2x2() *grid.Grid[float64] {
	size := geom.NewSizeHW(2, 2)
	center := geom.NewSpot(1, 1)
	return Render(size, center, DefaultTarget(), 1)
}
