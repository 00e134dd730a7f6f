// Package quaddiag renders diagnostic overlays of a detection run --
// edgel ticks, fitted ray lines, and candidate-center crosshairs --
// onto a copy of the source raster, for visual inspection of why a
// candidate was (or wasn't) found.
package quaddiag

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"quadloco/internal/quad/eval"
	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/grid"
	"quadloco/internal/quad/grouper"
	"quadloco/pkg/geometry"
)

// rayExtension is how far (in pixels) each fitted ray is drawn past
// its start point in both directions.
const rayExtension = 40.0

// footprintHalfSize is the half-width, in pixels, of the quad outline
// drawn around each candidate's center.
const footprintHalfSize = 12.0

// Dump holds a diagnostic overlay image ready to write to disk.
type Dump struct {
	mat    gocv.Mat
	bounds geometry.Rect
}

// NewDump builds a grayscale-on-color base image from src, scaled to
// 8-bit, so overlays drawn in color remain legible.
func NewDump(src *grid.Grid[float64]) *Dump {
	size := src.Size()
	mat := gocv.NewMatWithSize(size.High, size.Wide, gocv.MatTypeCV8UC3)
	min, max := rangeOf(src)
	span := max - min
	if span == 0 {
		span = 1
	}
	for r := 0; r < size.High; r++ {
		for c := 0; c < size.Wide; c++ {
			v := src.AtFast(r, c)
			level := uint8(255 * (v - min) / span)
			mat.SetUCharAt3(r, c, 0, level)
			mat.SetUCharAt3(r, c, 1, level)
			mat.SetUCharAt3(r, c, 2, level)
		}
	}
	return &Dump{
		mat:    mat,
		bounds: geometry.NewRect(0, 0, float64(size.Wide), float64(size.High)),
	}
}

func rangeOf(g *grid.Grid[float64]) (float64, float64) {
	min, max := g.AtFast(0, 0), g.AtFast(0, 0)
	for _, v := range g.Raw() {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func toScalar(col color.RGBA) gocv.Scalar {
	return gocv.NewScalar(float64(col.B), float64(col.G), float64(col.R), 0)
}

func toPoint(s geom.Spot) image.Point {
	return image.Pt(int(s.Col), int(s.Row))
}

func toPointV(v geom.Vector2) image.Point {
	return image.Pt(int(v.Col), int(v.Row))
}

func toImagePoint(p geometry.Point2D) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// DrawEdgels marks each edgel location with a single colored dot.
func (d *Dump) DrawEdgels(edgels []geom.Edgel, col color.RGBA) {
	gc := toScalar(col)
	for _, e := range edgels {
		gocv.Circle(&d.mat, toPoint(e.Location), 1, gc, -1)
	}
}

// DrawRays draws each group's fitted ray as a line segment through its
// start point.
func (d *Dump) DrawRays(groups []grouper.Group, col color.RGBA) {
	gc := toScalar(col)
	for _, g := range groups {
		a := g.Ray.Start.Vector2.Sub(g.Ray.Direction.Scale(rayExtension))
		b := g.Ray.Start.Vector2.Add(g.Ray.Direction.Scale(rayExtension))
		gocv.Line(&d.mat, toPointV(a), toPointV(b), gc, 1)
	}
}

// DrawCandidates marks each candidate's refined center with a
// crosshair and outlines its oriented footprint square. The outline is
// skipped for a candidate whose footprint falls entirely outside the
// image; its crosshair is still drawn.
func (d *Dump) DrawCandidates(candidates []eval.Candidate, col color.RGBA) {
	gc := toScalar(col)
	for _, c := range candidates {
		pt := toPoint(c.Item.Center)
		gocv.Line(&d.mat, image.Pt(pt.X-4, pt.Y), image.Pt(pt.X+4, pt.Y), gc, 1)
		gocv.Line(&d.mat, image.Pt(pt.X, pt.Y-4), image.Pt(pt.X, pt.Y+4), gc, 1)

		if !c.Item.Bounds(footprintHalfSize).Intersects(d.bounds) {
			continue
		}
		corners := c.Item.Footprint(footprintHalfSize)
		for i := range corners {
			a := toImagePoint(corners[i])
			b := toImagePoint(corners[(i+1)%len(corners)])
			gocv.Line(&d.mat, a, b, gc, 1)
		}
	}
}

// Save writes the overlay to path (format inferred from extension,
// e.g. ".png").
func (d *Dump) Save(path string) error {
	ok := gocv.IMWrite(path, d.mat)
	if !ok {
		return fmt.Errorf("quaddiag: failed to write %s", path)
	}
	return nil
}

// Close releases the underlying image buffer.
func (d *Dump) Close() error {
	return d.mat.Close()
}
