package geom

import "math"

// Spot is a location in image coordinates: Row is axis 0, Col is axis 1,
// both measured in pixel units where integer values denote the top-left
// corner of the indexed cell. The geometric center of cell (r,c) is at
// (r+0.5, c+0.5).
type Spot struct {
	Vector2
}

// NewSpot constructs a Spot at (row, col).
func NewSpot(row, col float64) Spot {
	return Spot{Vector2{Row: row, Col: col}}
}

// SpotFromVector wraps a Vector2 as a Spot.
func SpotFromVector(v Vector2) Spot {
	return Spot{v}
}

// Grad is an image gradient: magnitude and direction are the edge
// strength and normal direction.
type Grad struct {
	Vector2
}

// NewGrad constructs a Grad at (row, col) components.
func NewGrad(row, col float64) Grad {
	return Grad{Vector2{Row: row, Col: col}}
}

// GradFromVector wraps a Vector2 as a Grad.
func GradFromVector(v Vector2) Grad {
	return Grad{v}
}

// Magnitude returns the gradient's edge strength.
func (g Grad) Magnitude() float64 {
	return g.Vector2.Magnitude()
}

// RowCol is a non-negative integer grid address.
type RowCol struct {
	Row int
	Col int
}

// RowColFromSpot floors a Spot's components into a RowCol.
func RowColFromSpot(s Spot) RowCol {
	return RowCol{Row: int(math.Floor(s.Row)), Col: int(math.Floor(s.Col))}
}

// ToSpot returns the Spot at the top-left corner of this cell.
func (rc RowCol) ToSpot() Spot {
	return NewSpot(float64(rc.Row), float64(rc.Col))
}

// SizeHW is a grid/image extent in (height, width) order.
type SizeHW struct {
	High int
	Wide int
}

// NewSizeHW constructs a SizeHW.
func NewSizeHW(high, wide int) SizeHW {
	return SizeHW{High: high, Wide: wide}
}

// Diagonal returns sqrt(h^2 + w^2).
func (s SizeHW) Diagonal() float64 {
	h, w := float64(s.High), float64(s.Wide)
	return math.Sqrt(h*h + w*w)
}

// Perimeter returns 2*(h+w).
func (s SizeHW) Perimeter() float64 {
	return 2.0 * float64(s.High+s.Wide)
}

// IsValid reports whether the size can hold at least one cell.
func (s SizeHW) IsValid() bool {
	return s.High > 0 && s.Wide > 0
}

// ChipSpec defines a rectangular sub-region of a larger grid: an origin
// (top-left corner, in parent coordinates) plus a size.
type ChipSpec struct {
	Origin RowCol
	Size   SizeHW
}

// ToParent maps a chip-local (row, col) to the parent grid's (row, col).
func (c ChipSpec) ToParent(local RowCol) RowCol {
	return RowCol{Row: c.Origin.Row + local.Row, Col: c.Origin.Col + local.Col}
}

// ToLocal maps a parent (row, col) to chip-local coordinates. The second
// return value is false if the point lies outside the chip.
func (c ChipSpec) ToLocal(parent RowCol) (RowCol, bool) {
	local := RowCol{Row: parent.Row - c.Origin.Row, Col: parent.Col - c.Origin.Col}
	inside := local.Row >= 0 && local.Row < c.Size.High &&
		local.Col >= 0 && local.Col < c.Size.Wide
	return local, inside
}
