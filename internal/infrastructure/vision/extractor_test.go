package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionExtractor_LeftRightOrder(t *testing.T) {
	left := image.Rect(8, 5, 23, 35)
	right := image.Rect(36, 5, 51, 35)
	g := gridFromFunc(t, 40, 60, func(r, c int) float64 {
		switch {
		case inRects(r, c, left):
			return 35.5
		case inRects(r, c, right):
			return 33.0
		}
		return 22.0
	})
	// Правую область делаем крупнее, чтобы порядок не зависел от площади.
	mask := maskFromRects(40, 60, left, right, image.Rect(36, 35, 51, 37))

	regions := NewRegionExtractor().Extract(g, mask)
	require.NotNil(t, regions)
	require.Len(t, regions.Left.Upper, 15*15)
	require.Len(t, regions.Left.Lower, 15*15)
	for _, v := range regions.Left.Upper {
		require.Equal(t, 35.5, v)
	}
	for _, v := range regions.Right.Upper {
		require.Equal(t, 33.0, v)
	}
}

func TestRegionExtractor_OddHeightSplit(t *testing.T) {
	left := image.Rect(2, 5, 7, 36)
	right := image.Rect(20, 5, 25, 36)
	g := gridFromFunc(t, 40, 30, func(r, c int) float64 { return float64(r) })
	mask := maskFromRects(40, 30, left, right)

	regions := NewRegionExtractor().Extract(g, mask)
	require.NotNil(t, regions)
	// h=31, mid=5+15=20: верх 5..19, низ 20..35.
	require.Len(t, regions.Left.Upper, 15*5)
	require.Len(t, regions.Left.Lower, 16*5)
	for _, v := range regions.Left.Upper {
		require.Less(t, v, 20.0)
	}
	for _, v := range regions.Left.Lower {
		require.GreaterOrEqual(t, v, 20.0)
	}
}

func TestRegionExtractor_SingleComponent(t *testing.T) {
	g := gridFromFunc(t, 20, 20, func(int, int) float64 { return 34.0 })
	mask := maskFromRects(20, 20, image.Rect(2, 2, 18, 18))

	require.Nil(t, NewRegionExtractor().Extract(g, mask))
}

func TestRegionExtractor_EmptyMask(t *testing.T) {
	g := gridFromFunc(t, 20, 20, func(int, int) float64 { return 20.0 })
	mask := maskFromRects(20, 20)

	require.Nil(t, NewRegionExtractor().Extract(g, mask))
}

func TestRegionExtractor_KeepsTwoLargest(t *testing.T) {
	small := image.Rect(0, 0, 3, 3)
	left := image.Rect(10, 5, 20, 25)
	right := image.Rect(30, 5, 40, 25)
	g := gridFromFunc(t, 30, 45, func(r, c int) float64 {
		if inRects(r, c, small) {
			return 37.0
		}
		return 33.0
	})
	mask := maskFromRects(30, 45, small, left, right)

	e := NewRegionExtractor()
	comps := e.Components(mask)
	require.Len(t, comps, 3)
	require.Equal(t, 200, comps[0].Area)
	require.Equal(t, 9, comps[2].Area)

	regions := e.Extract(g, mask)
	require.NotNil(t, regions)
	for _, v := range append(regions.Left.Upper, regions.Left.Lower...) {
		require.Equal(t, 33.0, v)
	}
}

func TestRegionExtractor_EqualCentroidLargerIsLeft(t *testing.T) {
	top := image.Rect(5, 2, 15, 12)
	bottom := image.Rect(5, 20, 15, 28)
	g := gridFromFunc(t, 30, 20, func(r, c int) float64 {
		if inRects(r, c, top) {
			return 35.0
		}
		return 33.0
	})
	mask := maskFromRects(30, 20, top, bottom)

	comps := NewRegionExtractor().Components(mask)
	require.Equal(t, comps[0].CentroidX, comps[1].CentroidX)

	regions := NewRegionExtractor().Extract(g, mask)
	require.NotNil(t, regions)
	require.Len(t, regions.Left.Upper, 50)
	require.Equal(t, 35.0, regions.Left.Upper[0])
	require.Equal(t, 33.0, regions.Right.Upper[0])
}

func TestRegionExtractor_HoleBelongsToOuterComponent(t *testing.T) {
	ring := []image.Rectangle{
		image.Rect(2, 2, 22, 6),
		image.Rect(2, 18, 22, 22),
		image.Rect(2, 6, 6, 18),
		image.Rect(18, 6, 22, 18),
	}
	inner := image.Rect(10, 10, 14, 14)
	other := image.Rect(30, 2, 40, 22)
	rects := append(append([]image.Rectangle{}, ring...), inner, other)

	g := gridFromFunc(t, 25, 45, func(int, int) float64 { return 34.0 })
	mask := maskFromRects(25, 45, rects...)

	comps := NewRegionExtractor().Components(mask)
	require.Len(t, comps, 2)
	require.Equal(t, 400, comps[0].Area)
	require.Equal(t, 2, comps[0].X)
	require.Equal(t, 20, comps[0].Height)

	regions := NewRegionExtractor().Extract(g, mask)
	require.NotNil(t, regions)
	require.Equal(t, 400-144+16, len(regions.Left.Upper)+len(regions.Left.Lower))
}

func TestRegionExtractor_SplitHalves(t *testing.T) {
	g := gridFromFunc(t, 4, 5, func(_, c int) float64 { return float64(c) })
	mask := maskFromRects(4, 5, image.Rect(0, 0, 5, 4))

	h := NewRegionExtractor().SplitHalves(g, mask)
	require.Len(t, h.Left, 8)
	require.Len(t, h.Right, 12)
	for _, v := range h.Left {
		require.Less(t, v, 2.0)
	}
}
