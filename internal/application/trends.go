package app

import (
	"fmt"
	"math"

	"thermo-agent/internal/domain/entity"
)

const (
	recommendationHighRisk = "High Risk: Implement immediate cryotherapy and 24hr complete rest. Possible localized strain."
	recommendationModerate = "Moderate: Targeted active recovery (swimming/cycling) and contrast baths recommended."
	recommendationOptimal  = "Optimal: Recovery on track. Resume standard training intensity."
)

// muscleLabels группы мышц верхнего и нижнего квадранта по ракурсу.
var muscleLabels = map[string][2]string{
	entity.ViewLegFront: {"Quadriceps", "Tibialis Anterior"},
	entity.ViewLegBack:  {"Hamstrings", "Gastrocnemius"},
}

func asymmetryReport(view string, s entity.StatsRecord) entity.AsymmetryReport {
	abs := math.Abs(s.Asymmetry)
	region, value := peakRegion(view, s)
	return entity.AsymmetryReport{
		BaselineAsymmetry: fmt.Sprintf("%.2f°C deviation", abs),
		HotterSide:        hotterSide(s.Asymmetry),
		PeakRegion:        region,
		PeakValue:         formatTemp(value),
		Classification:    asymmetryClass(abs),
	}
}

func inflammationTrend(view string, base, post entity.StatsRecord) *entity.InflammationTrend {
	node, _ := peakRegion(view, post)
	return &entity.InflammationTrend{
		AsymmetryChange:   formatSigned(math.Abs(post.Asymmetry) - math.Abs(base.Asymmetry)),
		HotterSide:        hotterSide(post.Asymmetry),
		PeakAsymmetryNode: node,
		RelativeTempShift: formatSigned(post.RelativeTemp - base.RelativeTemp),
		PeakIntensity:     formatTemp(post.MaxTemp),
	}
}

func recoveryDelta(view string, base, rec entity.StatsRecord) *entity.RecoveryDelta {
	node, _ := peakRegion(view, rec)
	return &entity.RecoveryDelta{
		AsymmetryRecovery:    formatSigned(math.Abs(rec.Asymmetry) - math.Abs(base.Asymmetry)),
		HotterSide:           hotterSide(rec.Asymmetry),
		PeakRecoveryNode:     node,
		RelativeTempRecovery: formatSigned(rec.RelativeTemp - base.RelativeTemp),
	}
}

// recoveryStatus сравнивает прирост средней после тренировки с остаточным через 48 часов.
// Без снимка после тренировки процент восстановления равен 0.
func recoveryStatus(base entity.StatsRecord, post *entity.StatsRecord, rec entity.StatsRecord) *entity.RecoveryStatus {
	pct := 0.0
	if post != nil {
		if inc := post.OverallMean - base.OverallMean; inc != 0 {
			pct = (1 - (rec.OverallMean-base.OverallMean)/inc) * 100
		}
	}
	lingering := rec.MaxTemp - base.MaxTemp

	hotspots := "Resolved"
	if lingering > 1.5 {
		hotspots = "Present"
	}

	return &entity.RecoveryStatus{
		RecoveryPercentage: fmt.Sprintf("%.1f%%", pct),
		LingeringHotspots:  hotspots,
		Recommendation:     recoveryRecommendation(pct, lingering),
	}
}

func recoveryRecommendation(pct, lingering float64) string {
	switch {
	case pct < 50 || lingering > 2.0:
		return recommendationHighRisk
	case pct < 80:
		return recommendationModerate
	default:
		return recommendationOptimal
	}
}

// peakRegion выбирает квадрант с большей по модулю асимметрией; при равенстве берётся верхний.
func peakRegion(view string, s entity.StatsRecord) (string, float64) {
	if s.Degraded() {
		return "Undetermined", 0
	}
	upper := math.Abs(s.Regions[entity.RegionUpper].Asymmetry)
	lower := math.Abs(s.Regions[entity.RegionLower].Asymmetry)
	if lower > upper {
		return muscleLabel(view, 1), lower
	}
	return muscleLabel(view, 0), upper
}

func muscleLabel(view string, idx int) string {
	if labels, ok := muscleLabels[view]; ok {
		return labels[idx]
	}
	return [2]string{"Upper", "Lower"}[idx]
}

func hotterSide(asym float64) string {
	switch {
	case asym > 0:
		return "Left"
	case asym < 0:
		return "Right"
	default:
		return "Balanced"
	}
}

func asymmetryClass(abs float64) string {
	switch {
	case abs > 1.2:
		return "Pathological"
	case abs > 0.3:
		return "Subtle"
	default:
		return "Negligible"
	}
}

func formatTemp(v float64) string {
	return fmt.Sprintf("%.2f°C", v)
}

func formatSigned(v float64) string {
	return fmt.Sprintf("%+.2f°C", v)
}
