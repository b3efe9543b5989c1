package port

import "thermo-agent/internal/domain/entity"

// Segmenter интерфейс сегментации кожи
type Segmenter interface {
	// Segment строит маску кожи по диапазону температур [minTemp, maxTemp]
	Segment(grid *entity.TemperatureGrid, minTemp, maxTemp float64) *entity.SkinMask
}

// RegionExtractor интерфейс выделения конечностей
type RegionExtractor interface {
	// Extract возвращает выборки по квадрантам или nil, если конечностей меньше двух
	Extract(grid *entity.TemperatureGrid, mask *entity.SkinMask) *entity.LimbRegions

	// SplitHalves делит маску пополам по вертикали без деления на верх/низ
	SplitHalves(grid *entity.TemperatureGrid, mask *entity.SkinMask) entity.HalfSplit
}
