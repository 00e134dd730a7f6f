package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/geom"
)

func TestVectorArithmetic(t *testing.T) {
	a := geom.NewVector2(3, 4)
	b := geom.NewVector2(1, 2)

	require.Equal(t, geom.NewVector2(4, 6), a.Add(b))
	require.Equal(t, geom.NewVector2(2, 2), a.Sub(b))
	require.Equal(t, 11.0, a.Dot(b))
	require.InDelta(t, 5.0, a.Magnitude(), 1e-12)
}

func TestOuterProduct(t *testing.T) {
	u := geom.NewVector2(1, 0)
	v := geom.NewVector2(0, 1)
	require.Equal(t, 1.0, geom.Outer(u, v))
	require.Equal(t, -1.0, geom.Outer(v, u))
}

func TestDirectionOfZeroVectorIsZero(t *testing.T) {
	z := geom.Direction(geom.NewVector2(0, 0))
	require.Equal(t, geom.NewVector2(0, 0), z)
}

func TestCCWPerp(t *testing.T) {
	v := geom.NewVector2(1, 0)
	require.Equal(t, geom.NewVector2(0, 1), geom.CCWPerp(v))
}

func TestVectorIsValid(t *testing.T) {
	require.True(t, geom.NewVector2(0, 0).IsValid())
	require.False(t, geom.NewVector2(math.NaN(), 0).IsValid())
	require.False(t, geom.NewVector2(math.Inf(1), 0).IsValid())
}

func TestRayProjectRejectPythagorean(t *testing.T) {
	ray := geom.NewRay(geom.NewSpot(0, 0), geom.NewVector2(1, 0))
	p := geom.NewSpot(3, 4)

	along := ray.AlongDistance(p)
	perp := ray.PerpDistance(p)
	distFromStart := p.Sub(ray.Start.Vector2).Magnitude()

	require.InDelta(t, distFromStart*distFromStart, along*along+perp*perp, 1e-9)
}

func TestRayIsAhead(t *testing.T) {
	ray := geom.NewRay(geom.NewSpot(0, 0), geom.NewVector2(1, 0))
	require.True(t, ray.IsAhead(geom.NewSpot(1, 0)))
	require.False(t, ray.IsAhead(geom.NewSpot(-1, 0)))
}

func TestRowColFromSpotFloors(t *testing.T) {
	rc := geom.RowColFromSpot(geom.NewSpot(2.9, 3.1))
	require.Equal(t, geom.RowCol{Row: 2, Col: 3}, rc)
}

func TestSizeHWDiagonalAndPerimeter(t *testing.T) {
	s := geom.NewSizeHW(3, 4)
	require.InDelta(t, 5.0, s.Diagonal(), 1e-12)
	require.Equal(t, 14.0, s.Perimeter())
}

func TestChipSpecRoundTrip(t *testing.T) {
	chip := geom.ChipSpec{Origin: geom.RowCol{Row: 10, Col: 20}, Size: geom.NewSizeHW(5, 5)}
	local := geom.RowCol{Row: 2, Col: 3}
	parent := chip.ToParent(local)
	require.Equal(t, geom.RowCol{Row: 12, Col: 23}, parent)

	back, ok := chip.ToLocal(parent)
	require.True(t, ok)
	require.Equal(t, local, back)

	_, ok = chip.ToLocal(geom.RowCol{Row: 0, Col: 0})
	require.False(t, ok)
}

func TestSpanFractionRoundTrip(t *testing.T) {
	s := geom.NewSpan(10, 20)
	require.InDelta(t, 0.25, s.FractionAtValue(12.5), 1e-12)
	require.InDelta(t, 12.5, s.ValueAtFraction(0.25), 1e-12)
}

func TestAreaContains(t *testing.T) {
	area := geom.NewArea(geom.NewSpan(0, 10), geom.NewSpan(0, 10))
	require.True(t, area.Contains(geom.NewSpot(5, 5)))
	require.False(t, area.Contains(geom.NewSpot(10, 5)))
}

func TestCircumscribingCircle(t *testing.T) {
	c := geom.CircumscribingCircle(geom.NewSizeHW(6, 8))
	require.Equal(t, geom.NewSpot(3, 4), c.Center)
	require.InDelta(t, 5.0, c.Radius, 1e-12)
}

func TestAngRingIndexInvariant(t *testing.T) {
	ring := geom.NewAngRing(16)
	for _, a := range []float64{-3.0, -0.1, 0.0, 0.5, 2.9, 3.1} {
		ndx := ring.IndexFor(a)
		lo := ring.AngleAt(ndx)
		hi := lo + ring.AnglePerBin()
		p := geom.Principal(a)
		require.True(t, p >= lo-1e-9 && p < hi+1e-9, "angle %v bin [%v, %v)", p, lo, hi)
	}
}

func TestItemWgtSumWeights(t *testing.T) {
	items := []geom.ItemWgt[int]{
		geom.NewItemWgt(1, 0.5),
		geom.NewItemWgt(2, 1.5),
	}
	require.Equal(t, 2.0, geom.SumWeights(items))
}
