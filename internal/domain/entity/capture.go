package entity

import (
	"sort"
	"strings"
)

// Phase фаза съёмки относительно тренировки.
type Phase string

const (
	PhasePre      Phase = "PREWORKOUT"
	PhasePost     Phase = "POSTWORKOUT"
	PhaseRecovery Phase = "RECOVERY48HR"
)

// Phases все известные фазы в порядке съёмки.
var Phases = []Phase{PhasePre, PhasePost, PhaseRecovery}

// Стандартные ракурсы.
const (
	ViewLegFront = "LEG_FRONT"
	ViewLegBack  = "LEG_BACK"
)

// CaptureName возвращает имя снимка вида PHASE_VIEW.
func CaptureName(phase Phase, view string) string {
	return string(phase) + "_" + view
}

// ParseCaptureName разбирает имя снимка на фазу и ракурс.
func ParseCaptureName(name string) (Phase, string, bool) {
	for _, p := range Phases {
		prefix := string(p) + "_"
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return p, name[len(prefix):], true
		}
	}
	return "", "", false
}

// ViewCaptures снимки одного ракурса по фазам. Pre обязателен для анализа.
type ViewCaptures struct {
	Pre      *TemperatureGrid
	Post     *TemperatureGrid
	Recovery *TemperatureGrid
}

// GroupCaptures раскладывает снимки сессии по ракурсам.
// Возвращает ракурсы в алфавитном порядке.
func GroupCaptures(grids map[string]*TemperatureGrid) ([]string, map[string]ViewCaptures) {
	byView := make(map[string]ViewCaptures)
	for name, g := range grids {
		phase, view, ok := ParseCaptureName(name)
		if !ok {
			continue
		}
		vc := byView[view]
		switch phase {
		case PhasePre:
			vc.Pre = g
		case PhasePost:
			vc.Post = g
		case PhaseRecovery:
			vc.Recovery = g
		}
		byView[view] = vc
	}

	views := make([]string, 0, len(byView))
	for v := range byView {
		views = append(views, v)
	}
	sort.Strings(views)
	return views, byView
}
