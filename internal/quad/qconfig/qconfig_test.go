package qconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quadloco/internal/quad/qconfig"
)

func TestDefaultIsUsable(t *testing.T) {
	p := qconfig.Default()
	require.Equal(t, 32, p.NumAngleBins)
	require.Equal(t, []int{5, 3}, p.SymmetryRingRadii)
}

func TestWithMethodsReturnIndependentCopies(t *testing.T) {
	base := qconfig.Default()
	overridden := base.WithNumAngleBins(64).WithSupportRatio(1.0).
		WithMinSupportingRays(2).WithSymmetryRingRadii([]int{7})

	require.Equal(t, 32, base.NumAngleBins)
	require.Equal(t, 64, overridden.NumAngleBins)
	require.Equal(t, 2.5, base.SupportRatio)
	require.Equal(t, 1.0, overridden.SupportRatio)
	require.Equal(t, []int{5, 3}, base.SymmetryRingRadii)
	require.Equal(t, []int{7}, overridden.SymmetryRingRadii)
	require.Equal(t, 2, overridden.MinSupportingRays)
}
