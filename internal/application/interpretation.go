package app

import (
	"fmt"
	"math"
	"strings"

	"thermo-agent/internal/domain/entity"
)

// Рекомендации по уровню риска. Для Unknown используется список Low.
var (
	recommendationsHigh = []string{
		"Immediate cessation of high-impact activity.",
		"Clinical consultation for possible tissue damage.",
		"Acute cryotherapy protocol (15 min every 2 hours).",
	}
	recommendationsMedium = []string{
		"Focus on active recovery and mobility work.",
		"Contrast baths (3 min hot / 1 min cold).",
		"Reduce training volume by 30% for the next 48h.",
	}
	recommendationsLow = []string{
		"Resume standard training protocol.",
		"Standard post-workout hydration and nutrition.",
		"Routine stretching focusing on major muscle groups.",
	}
)

// interpretationState накапливаемый результат конвейера.
type interpretationState struct {
	view   string
	stats  entity.StatsRecord
	result entity.InterpretationResult
}

type stage struct {
	name string
	run  func(*interpretationState)
}

// InterpretationPipeline линейный конвейер interpreter → risk_assessor → planner.
// Каждая стадия только добавляет своё поле в результат.
type InterpretationPipeline struct {
	stages []stage
}

// NewInterpretationPipeline создаёт конвейер с фиксированным порядком стадий.
func NewInterpretationPipeline() *InterpretationPipeline {
	return &InterpretationPipeline{
		stages: []stage{
			{name: "interpreter", run: interpret},
			{name: "risk_assessor", run: assessRisk},
			{name: "planner", run: planRecovery},
		},
	}
}

// Stages возвращает имена стадий в порядке выполнения.
func (p *InterpretationPipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

// Run прогоняет статистику ракурса через все стадии.
func (p *InterpretationPipeline) Run(view string, stats entity.StatsRecord) entity.InterpretationResult {
	st := &interpretationState{view: view, stats: stats}
	for _, s := range p.stages {
		s.run(st)
	}
	return st.result
}

func interpret(st *interpretationState) {
	mean := st.stats.OverallMean
	if mean == 0 {
		st.result.Interpretation = fmt.Sprintf("Insufficient thermal data detected in %s to perform anatomical segmentation.", st.view)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis of %s reveals a mean temperature of %.1f°C. ", st.view, mean)

	asym := math.Abs(st.stats.Asymmetry)
	switch {
	case asym > 1.0:
		fmt.Fprintf(&b, "Critical asymmetry of %.2f°C detected.", asym)
	case asym > 0.4:
		fmt.Fprintf(&b, "Moderate asymmetry of %.2f°C detected.", asym)
	default:
		b.WriteString("Thermal distribution is within normal physiological limits.")
	}
	st.result.Interpretation = b.String()
}

// assessRisk не согласуется с порогами interpret: формулировка и уровень могут расходиться.
func assessRisk(st *interpretationState) {
	asym := math.Abs(st.stats.Asymmetry)
	maxTemp := st.stats.MaxTemp

	switch {
	case maxTemp == 0:
		st.result.RiskLevel = entity.RiskUnknown
	case asym > 1.2 || maxTemp > 36.5:
		st.result.RiskLevel = entity.RiskHigh
	case asym > 0.6:
		st.result.RiskLevel = entity.RiskMedium
	default:
		st.result.RiskLevel = entity.RiskLow
	}
}

func planRecovery(st *interpretationState) {
	var list []string
	switch st.result.RiskLevel {
	case entity.RiskHigh:
		list = recommendationsHigh
	case entity.RiskMedium:
		list = recommendationsMedium
	default:
		list = recommendationsLow
	}
	st.result.Recommendations = append([]string(nil), list...)
}
