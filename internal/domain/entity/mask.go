package entity

// MaskForeground значение пикселя кожи в маске (как в бинарных масках OpenCV).
const MaskForeground uint8 = 255

// SkinMask бинарная маска того же размера, что и сетка: 255 для ткани, 0 для фона.
type SkinMask struct {
	rows int
	cols int
	data []uint8
}

// NewSkinMask оборачивает готовые байты маски. Любое ненулевое значение
// приводится к MaskForeground.
func NewSkinMask(rows, cols int, data []uint8) *SkinMask {
	norm := make([]uint8, rows*cols)
	for i := range norm {
		if i < len(data) && data[i] != 0 {
			norm[i] = MaskForeground
		}
	}
	return &SkinMask{rows: rows, cols: cols, data: norm}
}

// Rows возвращает количество строк.
func (m *SkinMask) Rows() int { return m.rows }

// Cols возвращает количество столбцов.
func (m *SkinMask) Cols() int { return m.cols }

// At сообщает, помечен ли пиксель (r, c) как кожа.
func (m *SkinMask) At(r, c int) bool { return m.data[r*m.cols+c] != 0 }

// IsSet сообщает, помечен ли пиксель по плоскому индексу.
func (m *SkinMask) IsSet(i int) bool { return m.data[i] != 0 }

// Count возвращает число пикселей кожи.
func (m *SkinMask) Count() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Bytes возвращает копию данных маски.
func (m *SkinMask) Bytes() []uint8 {
	out := make([]uint8, len(m.data))
	copy(out, m.data)
	return out
}
