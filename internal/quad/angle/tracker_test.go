package angle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/angle"
)

func TestConsiderDepositsTotalWeight(t *testing.T) {
	tr := angle.NewTracker(16)
	tr.Consider(0, 10.0, 2)

	sum := 0.0
	for _, v := range tr.Bins() {
		sum += v
	}
	require.InDelta(t, 10.0, sum, 1e-9)
}

func TestSingleConsiderYieldsSinglePeak(t *testing.T) {
	tr := angle.NewTracker(32)
	tr.Consider(1.0, 5.0, 2)

	peaks := tr.AnglesOfPeaks()
	require.Len(t, peaks, 1)
	require.InDelta(t, 1.0, peaks[0], 2*math.Pi/32)
}

func TestTwoFarApartConsiderationsYieldTwoPeaks(t *testing.T) {
	tr := angle.NewTracker(32)
	tr.Consider(0.0, 5.0, 1)
	tr.Consider(math.Pi, 5.0, 1)

	peaks := tr.AnglesOfPeaks()
	require.Len(t, peaks, 2)
}
