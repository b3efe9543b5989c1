//go:build !gocv

package vision

import (
	"sort"

	"thermo-agent/internal/domain/entity"
)

// findComponents находит внешние области маски с заполненными дырами.
// Фон, связный с краем (4-связность), считается внешним; всё остальное
// делится на области по 8-связности, как контуры RETR_EXTERNAL в OpenCV.
func findComponents(mask *entity.SkinMask) []entity.LimbComponent {
	rows, cols := mask.Rows(), mask.Cols()
	outside := floodOutside(mask)
	visited := make([]bool, rows*cols)

	var comps []entity.LimbComponent
	stack := make([]int, 0, 64)
	for i := 0; i < rows*cols; i++ {
		if outside[i] || visited[i] {
			continue
		}

		visited[i] = true
		stack = append(stack[:0], i)
		var pixels []int
		minX, minY, maxX, maxY := cols, rows, -1, -1
		sumX := 0
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pixels = append(pixels, p)

			r, c := p/cols, p%cols
			sumX += c
			minX, maxX = minInt(minX, c), maxInt(maxX, c)
			minY, maxY = minInt(minY, r), maxInt(maxY, r)

			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					rr, cc := r+dr, c+dc
					if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
						continue
					}
					n := rr*cols + cc
					if outside[n] || visited[n] {
						continue
					}
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}

		sort.Ints(pixels)
		comps = append(comps, entity.LimbComponent{
			X:         minX,
			Y:         minY,
			Width:     maxX - minX + 1,
			Height:    maxY - minY + 1,
			Area:      len(pixels),
			CentroidX: sumX / len(pixels),
			Pixels:    pixels,
		})
	}
	return comps
}

// floodOutside помечает фон, достижимый от края изображения.
func floodOutside(mask *entity.SkinMask) []bool {
	rows, cols := mask.Rows(), mask.Cols()
	outside := make([]bool, rows*cols)
	queue := make([]int, 0, 2*(rows+cols))

	push := func(r, c int) {
		i := r*cols + c
		if outside[i] || mask.IsSet(i) {
			return
		}
		outside[i] = true
		queue = append(queue, i)
	}

	for c := 0; c < cols; c++ {
		push(0, c)
		push(rows-1, c)
	}
	for r := 0; r < rows; r++ {
		push(r, 0)
		push(r, cols-1)
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		r, c := i/cols, i%cols
		if r > 0 {
			push(r-1, c)
		}
		if r < rows-1 {
			push(r+1, c)
		}
		if c > 0 {
			push(r, c-1)
		}
		if c < cols-1 {
			push(r, c+1)
		}
	}
	return outside
}
