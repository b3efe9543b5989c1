package port

import (
	"io"

	"thermo-agent/internal/domain/entity"
)

// HeatmapRenderer интерфейс построения тепловой карты снимка
type HeatmapRenderer interface {
	// RenderPNG рисует сетку температур в PNG
	RenderPNG(w io.Writer, grid *entity.TemperatureGrid) error
}
