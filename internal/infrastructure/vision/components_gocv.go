//go:build gocv

package vision

import (
	"fmt"
	"image/color"

	"gocv.io/x/gocv"

	"thermo-agent/internal/domain/entity"
)

// findComponents находит внешние контуры маски и заливает каждый в отдельную маску.
func findComponents(mask *entity.SkinMask) []entity.LimbComponent {
	rows, cols := mask.Rows(), mask.Cols()
	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8U, mask.Bytes())
	if err != nil {
		panic(fmt.Sprintf("vision: mask %dx%d: %v", rows, cols, err))
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	comps := make([]entity.LimbComponent, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		filled := gocv.Zeros(rows, cols, gocv.MatTypeCV8U)
		gocv.DrawContours(&filled, contours, i, white, -1)
		data := filled.ToBytes()
		filled.Close()

		var pixels []int
		sumX := 0
		for p, v := range data {
			if v == 0 {
				continue
			}
			pixels = append(pixels, p)
			sumX += p % cols
		}
		if len(pixels) == 0 {
			continue
		}

		rect := gocv.BoundingRect(contours.At(i))
		comps = append(comps, entity.LimbComponent{
			X:         rect.Min.X,
			Y:         rect.Min.Y,
			Width:     rect.Dx(),
			Height:    rect.Dy(),
			Area:      len(pixels),
			CentroidX: sumX / len(pixels),
			Pixels:    pixels,
		})
	}
	return comps
}
