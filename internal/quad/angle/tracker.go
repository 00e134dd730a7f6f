// Package angle implements AngleTracker, a circular histogram of
// weighted angle votes smeared by a Gaussian kernel, used to find the
// dominant radial-edge directions of a quad target.
package angle

import (
	"math"

	"quadloco/internal/quad/geom"
	"quadloco/internal/quad/peak"
)

// DefaultNumBins is the number of histogram bins spanning the full
// circle.
const DefaultNumBins = 32

// Tracker accumulates weighted angle votes into a circular histogram.
type Tracker struct {
	ring geom.AngRing
	bins []float64
}

// NewTracker constructs a Tracker with numBins bins.
func NewTracker(numBins int) *Tracker {
	return &Tracker{
		ring: geom.NewAngRing(numBins),
		bins: make([]float64, numBins),
	}
}

// NumBins returns the number of histogram bins.
func (t *Tracker) NumBins() int {
	return len(t.bins)
}

// Consider deposits a 1-D Gaussian of total amplitude weight centered
// at angle, spread across the bin containing angle plus halfSpread
// neighbors on each side, with standard deviation equal to one bin
// width. Deposits wrap circularly.
func (t *Tracker) Consider(angleVal float64, weight float64, halfSpread int) {
	if weight == 0 {
		return
	}
	centerNdx := t.ring.IndexFor(angleVal)
	sigma := t.ring.AnglePerBin()

	// Normalize the discrete Gaussian samples across the deposited
	// bins so their sum equals weight exactly.
	type contribution struct {
		ndx int
		amp float64
	}
	contribs := make([]contribution, 0, 2*halfSpread+1)
	total := 0.0
	for off := -halfSpread; off <= halfSpread; off++ {
		ndx := t.ring.RelativeIndex(centerNdx, off)
		center := t.ring.AngleAt(centerNdx)
		binAngle := t.ring.AngleAt(ndx)
		d := geom.Distance(binAngle, center)
		amp := math.Exp(-0.5 * (d / sigma) * (d / sigma))
		contribs = append(contribs, contribution{ndx: ndx, amp: amp})
		total += amp
	}
	if total == 0 {
		return
	}
	for _, c := range contribs {
		t.bins[c.ndx] += weight * c.amp / total
	}
}

// Bins returns the current histogram values, one per bin.
func (t *Tracker) Bins() []float64 {
	return t.bins
}

// PeakIndices returns the bin indices of the histogram's peaks, per
// the circular peak finder.
func (t *Tracker) PeakIndices() []int {
	return peak.Indices(t.bins, peak.Circle)
}

// AnglesOfPeaks returns the angle at the start of each peak bin (see
// geom.AngRing.AngleAt).
func (t *Tracker) AnglesOfPeaks() []float64 {
	ndxs := t.PeakIndices()
	out := make([]float64, len(ndxs))
	for i, n := range ndxs {
		out[i] = t.ring.AngleAt(n)
	}
	return out
}
