package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"thermo-agent/internal/domain/entity"
)

func gridFromFunc(t *testing.T, rows, cols int, f func(r, c int) float64) *entity.TemperatureGrid {
	t.Helper()
	values := make([][]float64, rows)
	for r := range values {
		values[r] = make([]float64, cols)
		for c := range values[r] {
			values[r][c] = f(r, c)
		}
	}
	g, err := entity.NewTemperatureGrid(values)
	require.NoError(t, err)
	return g
}

func maskFromRects(rows, cols int, rects ...image.Rectangle) *entity.SkinMask {
	data := make([]uint8, rows*cols)
	for _, rect := range rects {
		for r := rect.Min.Y; r < rect.Max.Y; r++ {
			for c := rect.Min.X; c < rect.Max.X; c++ {
				data[r*cols+c] = entity.MaskForeground
			}
		}
	}
	return entity.NewSkinMask(rows, cols, data)
}

func inRects(r, c int, rects ...image.Rectangle) bool {
	p := image.Pt(c, r)
	for _, rect := range rects {
		if p.In(rect) {
			return true
		}
	}
	return false
}
