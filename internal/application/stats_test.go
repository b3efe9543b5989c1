package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"thermo-agent/internal/domain/entity"
)

func uniformGrid(t *testing.T, rows, cols int, v float64) *entity.TemperatureGrid {
	t.Helper()
	values := make([][]float64, rows)
	for r := range values {
		values[r] = make([]float64, cols)
		for c := range values[r] {
			values[r][c] = v
		}
	}
	g, err := entity.NewTemperatureGrid(values)
	require.NoError(t, err)
	return g
}

func fullMask(rows, cols int) *entity.SkinMask {
	data := make([]uint8, rows*cols)
	for i := range data {
		data[i] = entity.MaskForeground
	}
	return entity.NewSkinMask(rows, cols, data)
}

func TestStatsAggregator_UniformSkin(t *testing.T) {
	g := uniformGrid(t, 10, 10, 37.0)
	regions := &entity.LimbRegions{
		Left:  entity.RegionSamples{Upper: []float64{37, 37}, Lower: []float64{37}},
		Right: entity.RegionSamples{Upper: []float64{37}, Lower: []float64{37, 37}},
	}

	rec := NewStatsAggregator().Aggregate(g, fullMask(10, 10), regions)
	require.Equal(t, 37.0, rec.OverallMean)
	require.Equal(t, 0.0, rec.BackgroundMean)
	require.Equal(t, 37.0, rec.RelativeTemp)
	require.Equal(t, 37.0, rec.MaxTemp)
	require.Equal(t, 0.0, rec.Asymmetry)
}

func TestStatsAggregator_Degraded(t *testing.T) {
	g := uniformGrid(t, 8, 8, 21.0)
	mask := entity.NewSkinMask(8, 8, nil)

	rec := NewStatsAggregator().Aggregate(g, mask, nil)
	require.Zero(t, rec.OverallMean)
	require.Zero(t, rec.MaxTemp)
	require.Zero(t, rec.Asymmetry)
	require.Zero(t, rec.BackgroundMean)
	require.Zero(t, rec.RelativeTemp)
	require.NotNil(t, rec.Regions)
	require.Empty(t, rec.Regions)
	require.True(t, rec.Degraded())
}

func TestStatsAggregator_AsymmetryIsMeanOfQuadrants(t *testing.T) {
	g, err := entity.NewTemperatureGrid([][]float64{
		{22, 35.1, 34.0},
		{22, 33.7, 33.9},
	})
	require.NoError(t, err)
	mask := entity.NewSkinMask(2, 3, []uint8{0, 1, 1, 0, 1, 1})
	regions := &entity.LimbRegions{
		Left:  entity.RegionSamples{Upper: []float64{35.1, 34.7}, Lower: []float64{33.7}},
		Right: entity.RegionSamples{Upper: []float64{34.0}, Lower: []float64{33.9, 34.3}},
	}

	rec := NewStatsAggregator().Aggregate(g, mask, regions)
	upper := rec.Regions[entity.RegionUpper]
	lower := rec.Regions[entity.RegionLower]
	require.Equal(t, (upper.Asymmetry+lower.Asymmetry)/2, rec.Asymmetry)
	require.Equal(t, upper.LeftMean-upper.RightMean, upper.Asymmetry)
	require.Equal(t, 22.0, rec.BackgroundMean)
	require.Equal(t, 35.1, rec.MaxTemp)
	require.InDelta(t, 34.175, rec.OverallMean, 1e-9)
	require.Equal(t, rec.OverallMean-rec.BackgroundMean, rec.RelativeTemp)
}

func TestStatsAggregator_EmptyQuadrant(t *testing.T) {
	g := uniformGrid(t, 4, 4, 34.0)
	regions := &entity.LimbRegions{
		Left:  entity.RegionSamples{Upper: []float64{34}, Lower: []float64{34}},
		Right: entity.RegionSamples{Lower: []float64{34}},
	}

	rec := NewStatsAggregator().Aggregate(g, fullMask(4, 4), regions)
	require.Equal(t, 0.0, rec.Regions[entity.RegionUpper].RightMean)
	require.Equal(t, 34.0, rec.Regions[entity.RegionUpper].Asymmetry)
	require.Equal(t, 17.0, rec.Asymmetry)
}

func TestStatsAggregator_Idempotent(t *testing.T) {
	g, err := entity.NewTemperatureGrid([][]float64{
		{21.3, 33.1, 34.7, 21.9},
		{20.8, 33.3, 34.9, 22.4},
	})
	require.NoError(t, err)
	mask := entity.NewSkinMask(2, 4, []uint8{0, 1, 1, 0, 0, 1, 1, 0})
	regions := &entity.LimbRegions{
		Left:  entity.RegionSamples{Upper: []float64{33.1}, Lower: []float64{33.3}},
		Right: entity.RegionSamples{Upper: []float64{34.7}, Lower: []float64{34.9}},
	}

	a := NewStatsAggregator()
	first := a.Aggregate(g, mask, regions)
	second := a.Aggregate(g, mask, regions)
	require.Equal(t, first, second)
	require.Equal(t, math.Float64bits(first.Asymmetry), math.Float64bits(second.Asymmetry))
	require.Equal(t, math.Float64bits(first.BackgroundMean), math.Float64bits(second.BackgroundMean))
}

func TestStatsAggregator_Halves(t *testing.T) {
	s := NewStatsAggregator().Halves(entity.HalfSplit{
		Left:  []float64{34, 36},
		Right: []float64{33},
	})
	require.Equal(t, 35.0, s.LeftMean)
	require.Equal(t, 33.0, s.RightMean)
	require.Equal(t, 2.0, s.Asymmetry)

	empty := NewStatsAggregator().Halves(entity.HalfSplit{})
	require.Zero(t, empty.Asymmetry)
}
