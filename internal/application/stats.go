package app

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"thermo-agent/internal/domain/entity"
)

// StatsAggregator сводит сетку, маску и регионы в StatsRecord.
// Чистая функция: одинаковый вход всегда даёт побитово одинаковый результат.
type StatsAggregator struct{}

// NewStatsAggregator создаёт агрегатор статистики.
func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{}
}

// Aggregate считает статистику снимка. Если regions == nil, возвращает
// вырожденную запись с нулевыми полями и пустой картой регионов.
func (a *StatsAggregator) Aggregate(grid *entity.TemperatureGrid, mask *entity.SkinMask, regions *entity.LimbRegions) entity.StatsRecord {
	if regions == nil {
		return entity.StatsRecord{Regions: map[string]entity.RegionStats{}}
	}

	var skin, background []float64
	for i := 0; i < grid.Len(); i++ {
		if mask.IsSet(i) {
			skin = append(skin, grid.Value(i))
		} else {
			background = append(background, grid.Value(i))
		}
	}

	rec := entity.StatsRecord{
		BackgroundMean: mean(background),
		OverallMean:    mean(skin),
		MaxTemp:        maxOf(skin),
	}
	rec.RelativeTemp = rec.OverallMean - rec.BackgroundMean

	upper := regionStats(regions.Left.Upper, regions.Right.Upper)
	lower := regionStats(regions.Left.Lower, regions.Right.Lower)
	rec.Regions = map[string]entity.RegionStats{
		entity.RegionUpper: upper,
		entity.RegionLower: lower,
	}
	rec.Asymmetry = (upper.Asymmetry + lower.Asymmetry) / 2

	return rec
}

// Halves считает средние грубого деления пополам.
func (a *StatsAggregator) Halves(h entity.HalfSplit) entity.CoarseStats {
	s := entity.CoarseStats{
		LeftMean:  mean(h.Left),
		RightMean: mean(h.Right),
	}
	s.Asymmetry = s.LeftMean - s.RightMean
	return s
}

func regionStats(left, right []float64) entity.RegionStats {
	s := entity.RegionStats{
		LeftMean:  mean(left),
		RightMean: mean(right),
	}
	s.Asymmetry = s.LeftMean - s.RightMean
	return s
}

// mean возвращает 0 для пустой выборки.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Max(xs)
}
