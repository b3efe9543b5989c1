package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"thermo-agent/internal/domain/entity"
)

func TestFormatReport(t *testing.T) {
	report := &entity.SessionReport{
		SessionID: "001",
		Analyses: map[string]*entity.ViewReport{
			entity.ViewLegFront: {
				VisualSummary:   "Analysis of LEG_FRONT reveals a mean temperature of 34.2°C. Critical asymmetry of 2.50°C detected.",
				Classification:  entity.RiskHigh,
				Recommendations: []string{"Immediate cessation of high-impact activity."},
				AsymmetryReport: entity.AsymmetryReport{HotterSide: "Left", PeakRegion: "Quadriceps"},
				InflammationTrend: &entity.InflammationTrend{
					AsymmetryChange: "+0.40°C",
				},
			},
			entity.ViewLegBack: {
				VisualSummary:  "Insufficient thermal data detected in LEG_BACK to perform anatomical segmentation.",
				Classification: entity.RiskUnknown,
			},
		},
	}

	messages := FormatReport(report)
	require.Len(t, messages, 2)
	require.Contains(t, messages[0], "001 — LEG BACK")
	require.Contains(t, messages[0], "Risk: Unknown")
	require.NotContains(t, messages[0], "Post-workout")

	require.Contains(t, messages[1], "Risk: High")
	require.Contains(t, messages[1], "hotter side: Left")
	require.Contains(t, messages[1], "Post-workout: asymmetry +0.40°C")
	require.Contains(t, messages[1], "• Immediate cessation of high-impact activity.")
}

func TestFormatReport_Empty(t *testing.T) {
	require.Empty(t, FormatReport(&entity.SessionReport{SessionID: "x"}))
}
