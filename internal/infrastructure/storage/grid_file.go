package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"thermo-agent/internal/domain/entity"
)

// Поддерживаемые форматы снимков в порядке приоритета.
const (
	extXLSX = ".xlsx"
	extCSV  = ".csv"
)

var gridExtensions = []string{extXLSX, extCSV}

// ParseCell разбирает значение ячейки вида "34.5", "34.5℃" или "34.5 °C".
// BOM в начале, который оставляют выгрузки из Excel, отбрасывается.
func ParseCell(raw string) (float64, error) {
	s := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
	s = strings.TrimSuffix(s, "℃")
	s = strings.TrimSuffix(s, "°C")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty cell")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", raw)
	}
	return v, nil
}

// loadGridFile читает снимок из .xlsx (первый лист) или .csv.
func loadGridFile(path string) (*entity.TemperatureGrid, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case extXLSX:
		records, err = readXLSX(path)
	case extCSV:
		records, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported grid file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return gridFromRecords(filepath.Base(path), records)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	// Сырые значения: форматированный текст ячейки округляет температуру по формату
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// gridFromRecords превращает строки таблицы в сетку. Любая плохая ячейка даёт ошибку.
func gridFromRecords(file string, records [][]string) (*entity.TemperatureGrid, error) {
	values := make([][]float64, len(records))
	for r, rec := range records {
		row := make([]float64, len(rec))
		for c, cell := range rec {
			v, err := ParseCell(cell)
			if err != nil {
				return nil, &entity.CellError{File: file, Row: r + 1, Col: c + 1, Value: cell}
			}
			row[c] = v
		}
		values[r] = row
	}

	g, err := entity.NewTemperatureGrid(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return g, nil
}
