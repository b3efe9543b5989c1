package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCaptureName(t *testing.T) {
	phase, view, ok := ParseCaptureName("RECOVERY48HR_LEG_BACK")
	require.True(t, ok)
	require.Equal(t, PhaseRecovery, phase)
	require.Equal(t, ViewLegBack, view)

	_, _, ok = ParseCaptureName("PREWORKOUT_")
	require.False(t, ok)

	_, _, ok = ParseCaptureName("notes")
	require.False(t, ok)
}

func TestGroupCaptures(t *testing.T) {
	g, err := NewTemperatureGrid([][]float64{{30}})
	require.NoError(t, err)

	views, byView := GroupCaptures(map[string]*TemperatureGrid{
		CaptureName(PhasePre, ViewLegFront):  g,
		CaptureName(PhasePost, ViewLegFront): g,
		CaptureName(PhasePre, ViewLegBack):   g,
		"calibration":                        g,
	})
	require.Equal(t, []string{ViewLegBack, ViewLegFront}, views)
	require.NotNil(t, byView[ViewLegFront].Post)
	require.Nil(t, byView[ViewLegFront].Recovery)
	require.Nil(t, byView[ViewLegBack].Post)
}
