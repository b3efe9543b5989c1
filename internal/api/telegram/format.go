package telegram

import (
	"fmt"
	"sort"
	"strings"

	"thermo-agent/internal/domain/entity"
)

// FormatReport готовит по одному текстовому сообщению на ракурс, в алфавитном порядке.
func FormatReport(report *entity.SessionReport) []string {
	views := make([]string, 0, len(report.Analyses))
	for v := range report.Analyses {
		views = append(views, v)
	}
	sort.Strings(views)

	messages := make([]string, 0, len(views))
	for _, v := range views {
		messages = append(messages, formatView(report.SessionID, v, report.Analyses[v]))
	}
	return messages
}

func formatView(sessionID, view string, r *entity.ViewReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s — %s\n", sessionID, strings.ReplaceAll(view, "_", " "))
	fmt.Fprintf(&b, "%s\n\n", r.VisualSummary)
	fmt.Fprintf(&b, "Risk: %s\n", r.Classification)

	a := r.AsymmetryReport
	fmt.Fprintf(&b, "Asymmetry: %s (%s), hotter side: %s, peak: %s %s\n",
		a.BaselineAsymmetry, a.Classification, a.HotterSide, a.PeakRegion, a.PeakValue)
	fmt.Fprintf(&b, "Background: %s, skin above ambient: %s\n", r.AmbientStats.BackgroundTemp, r.AmbientStats.RelativeSkinTemp)

	if t := r.InflammationTrend; t != nil {
		fmt.Fprintf(&b, "\nPost-workout: asymmetry %s, hotter %s, peak node %s, relative shift %s, peak %s\n",
			t.AsymmetryChange, t.HotterSide, t.PeakAsymmetryNode, t.RelativeTempShift, t.PeakIntensity)
	}
	if d := r.RecoveryDelta; d != nil {
		fmt.Fprintf(&b, "48h recovery: asymmetry %s, hotter %s, peak node %s, relative %s\n",
			d.AsymmetryRecovery, d.HotterSide, d.PeakRecoveryNode, d.RelativeTempRecovery)
	}
	if s := r.RecoveryStatus; s != nil {
		fmt.Fprintf(&b, "Recovery: %s, hotspots %s\n%s\n", s.RecoveryPercentage, s.LingeringHotspots, s.Recommendation)
	}

	b.WriteString("\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "• %s\n", rec)
	}
	return strings.TrimRight(b.String(), "\n")
}
