//go:build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// openClose выполняет MORPH_OPEN, затем MORPH_CLOSE прямоугольным элементом k×k.
func openClose(src []uint8, rows, cols, k int) []uint8 {
	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8U, src)
	if err != nil {
		panic(fmt.Sprintf("vision: mask %dx%d: %v", rows, cols, err))
	}
	defer mat.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(k, k))
	defer kernel.Close()

	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyEx(mat, &opened, gocv.MorphOpen, kernel)

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyEx(opened, &closed, gocv.MorphClose, kernel)

	return closed.ToBytes()
}
