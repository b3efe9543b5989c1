package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"thermo-agent/internal/domain/entity"
	"thermo-agent/internal/domain/port"
)

// HeatmapRenderer рисует сетку температур палитрой Heat.
type HeatmapRenderer struct {
	PixelScale float64 // точек на ячейку сетки
	Colors     int
}

// NewHeatmapRenderer создаёт рендерер с масштабом 4 точки на ячейку.
func NewHeatmapRenderer() *HeatmapRenderer {
	return &HeatmapRenderer{PixelScale: 4, Colors: 64}
}

// RenderPNG рисует тепловую карту без осей. Строка 0 сетки рисуется сверху.
func (r *HeatmapRenderer) RenderPNG(w io.Writer, grid *entity.TemperatureGrid) error {
	p := plot.New()
	p.HideAxes()

	h := plotter.NewHeatMap(gridXYZ{grid: grid}, palette.Heat(r.Colors, 1))
	if h.Max == h.Min {
		// однородный снимок: палитре нужен ненулевой диапазон
		h.Max = h.Min + 1
	}
	p.Add(h)

	width := vg.Length(float64(grid.Cols()) * r.PixelScale)
	height := vg.Length(float64(grid.Rows()) * r.PixelScale)
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("heatmap writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write heatmap: %w", err)
	}
	return nil
}

// gridXYZ адаптирует сетку к plotter.GridXYZ; ось Y направлена вверх.
type gridXYZ struct {
	grid *entity.TemperatureGrid
}

func (g gridXYZ) Dims() (c, r int) { return g.grid.Cols(), g.grid.Rows() }

func (g gridXYZ) Z(c, r int) float64 { return g.grid.At(g.grid.Rows()-1-r, c) }

func (g gridXYZ) X(c int) float64 { return float64(c) }

func (g gridXYZ) Y(r int) float64 { return float64(r) }

var _ port.HeatmapRenderer = (*HeatmapRenderer)(nil)
