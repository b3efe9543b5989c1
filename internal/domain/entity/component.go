package entity

// LimbComponent внешняя связная область маски (кандидат на конечность).
type LimbComponent struct {
	X         int // координата X левого верхнего угла рамки
	Y         int // координата Y левого верхнего угла рамки
	Width     int // ширина рамки в пикселях
	Height    int // высота рамки в пикселях
	Area      int // площадь области в пикселях (с заполненными дырами)
	CentroidX int // X центра масс, округлён вниз
	Pixels    []int
}

// MidY возвращает строку, по которой область делится на верх и низ.
func (c LimbComponent) MidY() int {
	return c.Y + c.Height/2
}

// RegionSamples выборки температур верхней и нижней половины конечности.
type RegionSamples struct {
	Upper []float64
	Lower []float64
}

// LimbRegions выборки по четырём квадрантам: левая/правая × верх/низ.
type LimbRegions struct {
	Left  RegionSamples
	Right RegionSamples
}

// HalfSplit грубое деление маски по вертикали пополам, без верха/низа.
type HalfSplit struct {
	Left  []float64
	Right []float64
}
