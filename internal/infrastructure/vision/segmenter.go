package vision

import (
	"thermo-agent/internal/domain/entity"
	"thermo-agent/internal/domain/port"
)

// Параметры сегментации по умолчанию: диапазон температуры открытой кожи
// при комнатной температуре и размер структурного элемента.
const (
	DefaultMinSkinTemp = 26.0
	DefaultMaxSkinTemp = 38.0
	DefaultKernelSize  = 5
)

// Segmenter строит маску кожи порогом по температуре и морфологической очисткой.
type Segmenter struct {
	KernelSize int
}

// NewSegmenter создаёт сегментатор с квадратным элементом 5×5.
func NewSegmenter() *Segmenter {
	return &Segmenter{KernelSize: DefaultKernelSize}
}

// Segment помечает кожей пиксели из [minTemp, maxTemp] (границы включены),
// затем выполняет открытие и закрытие. Пустая маска допустима.
func (s *Segmenter) Segment(grid *entity.TemperatureGrid, minTemp, maxTemp float64) *entity.SkinMask {
	rows, cols := grid.Rows(), grid.Cols()

	raw := make([]uint8, grid.Len())
	for i := range raw {
		v := grid.Value(i)
		if v >= minTemp && v <= maxTemp {
			raw[i] = entity.MaskForeground
		}
	}

	k := s.KernelSize
	if k <= 0 {
		k = DefaultKernelSize
	}
	return entity.NewSkinMask(rows, cols, openClose(raw, rows, cols, k))
}

var _ port.Segmenter = (*Segmenter)(nil)
