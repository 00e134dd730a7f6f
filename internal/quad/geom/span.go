package geom

import "math"

// Span is a half-open interval [Min, Max).
type Span struct {
	Min float64
	Max float64
}

// NewSpan constructs a Span.
func NewSpan(min, max float64) Span {
	return Span{Min: min, Max: max}
}

// IsValid reports whether the span is finite and non-degenerate.
func (s Span) IsValid() bool {
	return !math.IsNaN(s.Min) && !math.IsNaN(s.Max) && s.Min < s.Max
}

// Magnitude returns Max - Min.
func (s Span) Magnitude() float64 {
	return s.Max - s.Min
}

// Contains reports whether value lies in [Min, Max).
func (s Span) Contains(value float64) bool {
	return value >= s.Min && value < s.Max
}

// FractionAtValue maps a value to its fraction of the span (0 at Min, 1 at Max).
func (s Span) FractionAtValue(value float64) float64 {
	return (value - s.Min) / s.Magnitude()
}

// ValueAtFraction maps a fraction of the span (0 at Min, 1 at Max) to a value.
func (s Span) ValueAtFraction(frac float64) float64 {
	return s.Min + frac*s.Magnitude()
}

// Area is the Cartesian product of two Spans (row span, col span).
type Area struct {
	Span0 Span // row span
	Span1 Span // col span
}

// NewArea constructs an Area from a row span and a col span.
func NewArea(span0, span1 Span) Area {
	return Area{Span0: span0, Span1: span1}
}

// IsValid reports whether both spans are valid.
func (a Area) IsValid() bool {
	return a.Span0.IsValid() && a.Span1.IsValid()
}

// Contains reports whether a spot lies within both spans.
func (a Area) Contains(s Spot) bool {
	return a.Span0.Contains(s.Row) && a.Span1.Contains(s.Col)
}

// FractionDyadAt maps a spot to its (row-fraction, col-fraction) pair.
func (a Area) FractionDyadAt(s Spot) (float64, float64) {
	return a.Span0.FractionAtValue(s.Row), a.Span1.FractionAtValue(s.Col)
}

// SpotAtFractionDyad maps a (row-fraction, col-fraction) pair back to a spot.
func (a Area) SpotAtFractionDyad(rowFrac, colFrac float64) Spot {
	return NewSpot(a.Span0.ValueAtFraction(rowFrac), a.Span1.ValueAtFraction(colFrac))
}

// Circle is a center plus a radius.
type Circle struct {
	Center Spot
	Radius float64
}

// NewCircle constructs a Circle.
func NewCircle(center Spot, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// IsValid reports whether the center is valid and the radius positive.
func (c Circle) IsValid() bool {
	return c.Center.IsValid() && c.Radius > 0
}

// CircumscribingCircle returns the circle centered at (H/2, W/2) with
// radius 0.5*diagonal of the given grid size.
func CircumscribingCircle(size SizeHW) Circle {
	center := NewSpot(float64(size.High)/2.0, float64(size.Wide)/2.0)
	return Circle{Center: center, Radius: 0.5 * size.Diagonal()}
}

// Contains reports whether a spot lies within the circle.
func (c Circle) Contains(s Spot) bool {
	d := s.Sub(c.Center.Vector2)
	return d.Magnitude() <= c.Radius
}
