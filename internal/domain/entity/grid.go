package entity

import (
	"fmt"
	"math"
)

// TemperatureGrid неизменяемая матрица температур одного снимка (°C).
type TemperatureGrid struct {
	rows int
	cols int
	data []float64
}

// NewTemperatureGrid собирает сетку из строк значений.
// Пустая, рваная сетка или значения NaN/Inf отклоняются сразу при загрузке.
func NewTemperatureGrid(values [][]float64) (*TemperatureGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidGrid)
	}

	rows, cols := len(values), len(values[0])
	data := make([]float64, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, r+1, len(row), cols)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &CellError{Row: r + 1, Col: c + 1, Value: fmt.Sprint(v)}
			}
		}
		data = append(data, row...)
	}

	return &TemperatureGrid{rows: rows, cols: cols, data: data}, nil
}

// Rows возвращает количество строк.
func (g *TemperatureGrid) Rows() int { return g.rows }

// Cols возвращает количество столбцов.
func (g *TemperatureGrid) Cols() int { return g.cols }

// At возвращает температуру в ячейке (r, c).
func (g *TemperatureGrid) At(r, c int) float64 { return g.data[r*g.cols+c] }

// Len возвращает общее число ячеек.
func (g *TemperatureGrid) Len() int { return len(g.data) }

// Value возвращает температуру по плоскому индексу (row-major).
func (g *TemperatureGrid) Value(i int) float64 { return g.data[i] }
