//go:build !gocv

package vision

// openClose выполняет открытие (эрозия, затем дилатация), а потом закрытие
// (дилатация, затем эрозия) квадратным элементом k×k с якорем в центре.
// Пиксели за границей изображения в окне не учитываются, как в OpenCV.
func openClose(src []uint8, rows, cols, k int) []uint8 {
	opened := dilate(erode(src, rows, cols, k), rows, cols, k)
	return erode(dilate(opened, rows, cols, k), rows, cols, k)
}

func erode(src []uint8, rows, cols, k int) []uint8 {
	return rectFilter(src, rows, cols, k, minU8)
}

func dilate(src []uint8, rows, cols, k int) []uint8 {
	return rectFilter(src, rows, cols, k, maxU8)
}

// rectFilter считает min/max по окну k×k двумя проходами: по строкам и по столбцам.
func rectFilter(src []uint8, rows, cols, k int, pick func(a, b uint8) uint8) []uint8 {
	lo := -(k / 2)
	hi := k - 1 + lo

	tmp := make([]uint8, len(src))
	for r := 0; r < rows; r++ {
		off := r * cols
		for c := 0; c < cols; c++ {
			v := src[off+c]
			for d := lo; d <= hi; d++ {
				cc := c + d
				if cc < 0 || cc >= cols {
					continue
				}
				v = pick(v, src[off+cc])
			}
			tmp[off+c] = v
		}
	}

	dst := make([]uint8, len(src))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := tmp[r*cols+c]
			for d := lo; d <= hi; d++ {
				rr := r + d
				if rr < 0 || rr >= rows {
					continue
				}
				v = pick(v, tmp[rr*cols+c])
			}
			dst[r*cols+c] = v
		}
	}
	return dst
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
