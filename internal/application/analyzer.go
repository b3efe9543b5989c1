package app

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"thermo-agent/internal/domain/entity"
	"thermo-agent/internal/domain/port"
)

// AnalyzerOptions параметры анализа сессии.
type AnalyzerOptions struct {
	MinSkinTemp  float64
	MaxSkinTemp  float64
	ImageBaseURL string
}

// SessionAnalyzer прогоняет снимки сессии через сегментацию, выделение
// регионов, статистику и интерпретацию и собирает итоговый отчёт.
type SessionAnalyzer struct {
	sessions   port.SessionSource
	segmenter  port.Segmenter
	extractor  port.RegionExtractor
	aggregator *StatsAggregator
	pipeline   *InterpretationPipeline
	opts       AnalyzerOptions
}

// FrameAnalysis результат обработки одного снимка.
type FrameAnalysis struct {
	Mask    *entity.SkinMask
	Regions *entity.LimbRegions
	Stats   entity.StatsRecord
	Coarse  *entity.CoarseStats // только если конечности не найдены
}

// NewSessionAnalyzer создаёт анализатор сессий.
func NewSessionAnalyzer(sessions port.SessionSource, segmenter port.Segmenter, extractor port.RegionExtractor, opts AnalyzerOptions) *SessionAnalyzer {
	return &SessionAnalyzer{
		sessions:   sessions,
		segmenter:  segmenter,
		extractor:  extractor,
		aggregator: NewStatsAggregator(),
		pipeline:   NewInterpretationPipeline(),
		opts:       opts,
	}
}

// ListSessions возвращает доступные сессии.
func (a *SessionAnalyzer) ListSessions(ctx context.Context) ([]string, error) {
	return a.sessions.ListSessions(ctx)
}

// ProcessFrame строит маску, регионы и статистику одного снимка.
func (a *SessionAnalyzer) ProcessFrame(grid *entity.TemperatureGrid) FrameAnalysis {
	mask := a.segmenter.Segment(grid, a.opts.MinSkinTemp, a.opts.MaxSkinTemp)
	regions := a.extractor.Extract(grid, mask)

	fa := FrameAnalysis{
		Mask:    mask,
		Regions: regions,
		Stats:   a.aggregator.Aggregate(grid, mask, regions),
	}
	if regions == nil {
		coarse := a.aggregator.Halves(a.extractor.SplitHalves(grid, mask))
		fa.Coarse = &coarse
	}
	return fa
}

// AnalyzeSession загружает сессию и строит отчёт по каждому ракурсу,
// для которого есть снимок до тренировки. Ракурсы обрабатываются параллельно.
func (a *SessionAnalyzer) AnalyzeSession(ctx context.Context, sessionID string) (*entity.SessionReport, error) {
	grids, err := a.sessions.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	views, byView := entity.GroupCaptures(grids)
	reports := make([]*entity.ViewReport, len(views))

	g, gctx := errgroup.WithContext(ctx)
	for i, view := range views {
		captures := byView[view]
		if captures.Pre == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = a.AnalyzeView(sessionID, view, captures)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &entity.SessionReport{
		SessionID: sessionID,
		Analyses:  make(map[string]*entity.ViewReport, len(views)),
	}
	for i, view := range views {
		if reports[i] != nil {
			report.Analyses[view] = reports[i]
		}
	}
	return report, nil
}

// AnalyzeView строит отчёт по ракурсу. Отсутствующие фазы просто пропускаются.
func (a *SessionAnalyzer) AnalyzeView(sessionID, view string, captures entity.ViewCaptures) *entity.ViewReport {
	base := a.ProcessFrame(captures.Pre)
	interp := a.pipeline.Run(view, base.Stats)

	report := &entity.ViewReport{
		VisualSummary:       interp.Interpretation,
		Classification:      interp.RiskLevel,
		Recommendations:     interp.Recommendations,
		RecommendationsText: strings.Join(interp.Recommendations, " | "),
		BaselineStats:       base.Stats,
		AsymmetryReport:     asymmetryReport(view, base.Stats),
		AmbientStats: entity.AmbientStats{
			BackgroundTemp:   formatTemp(base.Stats.BackgroundMean),
			RelativeSkinTemp: formatTemp(base.Stats.RelativeTemp),
		},
		FallbackSplit: base.Coarse,
		Images:        a.imageLinks(sessionID, view),
	}

	var post *entity.StatsRecord
	if captures.Post != nil {
		stats := a.ProcessFrame(captures.Post).Stats
		post = &stats
		report.InflammationTrend = inflammationTrend(view, base.Stats, stats)
	}
	if captures.Recovery != nil {
		stats := a.ProcessFrame(captures.Recovery).Stats
		report.RecoveryDelta = recoveryDelta(view, base.Stats, stats)
		report.RecoveryStatus = recoveryStatus(base.Stats, post, stats)
	}

	return report
}

func (a *SessionAnalyzer) imageLinks(sessionID, view string) entity.ImageLinks {
	link := func(phase entity.Phase) string {
		return fmt.Sprintf("%s/images/%s/%s.png", strings.TrimRight(a.opts.ImageBaseURL, "/"), sessionID, entity.CaptureName(phase, view))
	}
	return entity.ImageLinks{
		Pre:      link(entity.PhasePre),
		Post:     link(entity.PhasePost),
		Recovery: link(entity.PhaseRecovery),
	}
}
