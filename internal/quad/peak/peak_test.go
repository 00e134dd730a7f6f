package peak_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/peak"
)

func TestConstantSequenceHasNoPeaks(t *testing.T) {
	values := []float64{3, 3, 3, 3, 3}
	require.Empty(t, peak.Indices(values, peak.Linear))
	require.Empty(t, peak.Indices(values, peak.Circle))
}

func TestSingleSpikeLinear(t *testing.T) {
	values := []float64{0, 0, 5, 0, 0}
	peaks := peak.Indices(values, peak.Linear)
	require.Equal(t, []int{2}, peaks)
}

func TestPlateauMiddleLowerForEvenWidth(t *testing.T) {
	values := []float64{0, 5, 5, 5, 5, 0}
	peaks := peak.Indices(values, peak.Linear)
	// plateau spans indices 1..4 (width 4); lower-middle is index 2.
	require.Equal(t, []int{2}, peaks)
}

func TestTwoSpikesLinear(t *testing.T) {
	values := []float64{0, 4, 0, 0, 6, 0}
	peaks := peak.Indices(values, peak.Linear)
	require.Equal(t, []int{1, 4}, peaks)
}

func TestCircularSinglePeak(t *testing.T) {
	values := []float64{0, 0, 5, 0, 0, 0}
	peaks := peak.Indices(values, peak.Circle)
	require.Equal(t, []int{2}, peaks)
}

func TestCircularPeakWrappingAcrossBoundary(t *testing.T) {
	// The peak straddles the array boundary: rising into index 5,
	// plateau at 5 and 0, dropping at index 1.
	values := []float64{9, 1, 0, 0, 3, 9}
	peaks := peak.Indices(values, peak.Circle)
	require.Len(t, peaks, 1)
}

func TestCircularTwoDistinctPeaks(t *testing.T) {
	values := []float64{0, 5, 0, 0, 7, 0}
	peaks := peak.Indices(values, peak.Circle)
	require.ElementsMatch(t, []int{1, 4}, peaks)
}
