package vision

import (
	"sort"

	"thermo-agent/internal/domain/entity"
	"thermo-agent/internal/domain/port"
)

// RegionExtractor выделяет две конечности как две крупнейшие области маски.
type RegionExtractor struct{}

// NewRegionExtractor создаёт экстрактор регионов.
func NewRegionExtractor() *RegionExtractor {
	return &RegionExtractor{}
}

// Components возвращает области маски по убыванию площади.
// При равной площади первой идёт область, чей первый пиксель выше/левее.
func (e *RegionExtractor) Components(mask *entity.SkinMask) []entity.LimbComponent {
	comps := findComponents(mask)
	sort.SliceStable(comps, func(i, j int) bool {
		if comps[i].Area != comps[j].Area {
			return comps[i].Area > comps[j].Area
		}
		return comps[i].Pixels[0] < comps[j].Pixels[0]
	})
	return comps
}

// Extract делит две крупнейшие области на левую/правую по X центра масс
// и каждую на верх/низ по середине рамки. Возвращает nil, если областей меньше двух.
// При равном X центра левой считается более крупная область.
func (e *RegionExtractor) Extract(grid *entity.TemperatureGrid, mask *entity.SkinMask) *entity.LimbRegions {
	comps := e.Components(mask)
	if len(comps) < 2 {
		return nil
	}

	limbs := []entity.LimbComponent{comps[0], comps[1]}
	sort.SliceStable(limbs, func(i, j int) bool {
		return limbs[i].CentroidX < limbs[j].CentroidX
	})

	return &entity.LimbRegions{
		Left:  splitComponent(grid, mask, limbs[0]),
		Right: splitComponent(grid, mask, limbs[1]),
	}
}

// splitComponent собирает температуры пикселей кожи области: строки выше MidY идут в верх.
func splitComponent(grid *entity.TemperatureGrid, mask *entity.SkinMask, c entity.LimbComponent) entity.RegionSamples {
	mid := c.MidY()
	cols := grid.Cols()

	var s entity.RegionSamples
	for _, p := range c.Pixels {
		if !mask.IsSet(p) {
			continue
		}
		if p/cols < mid {
			s.Upper = append(s.Upper, grid.Value(p))
		} else {
			s.Lower = append(s.Lower, grid.Value(p))
		}
	}
	return s
}

// SplitHalves делит маску по столбцу cols/2: левее него левая сторона.
func (e *RegionExtractor) SplitHalves(grid *entity.TemperatureGrid, mask *entity.SkinMask) entity.HalfSplit {
	mid := grid.Cols() / 2

	var h entity.HalfSplit
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if !mask.At(r, c) {
				continue
			}
			if c < mid {
				h.Left = append(h.Left, grid.At(r, c))
			} else {
				h.Right = append(h.Right, grid.At(r, c))
			}
		}
	}
	return h
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var _ port.RegionExtractor = (*RegionExtractor)(nil)
