package entity

// Ключи карты регионов в StatsRecord.
const (
	RegionUpper = "upper"
	RegionLower = "lower"
)

// RegionStats средние левой и правой стороны одного уровня и их разница.
type RegionStats struct {
	LeftMean  float64 `json:"left_mean"`
	RightMean float64 `json:"right_mean"`
	Asymmetry float64 `json:"asymmetry"`
}

// StatsRecord сводная статистика снимка.
// Если конечности не найдены, все поля нулевые, а Regions пустая.
type StatsRecord struct {
	BackgroundMean float64                `json:"background_mean"`
	OverallMean    float64                `json:"overall_mean"`
	RelativeTemp   float64                `json:"relative_temp"`
	MaxTemp        float64                `json:"max_temp"`
	Asymmetry      float64                `json:"asymmetry"`
	Regions        map[string]RegionStats `json:"regions"`
}

// Degraded сообщает, что запись построена без найденных конечностей.
func (s StatsRecord) Degraded() bool {
	return len(s.Regions) == 0
}

// CoarseStats средние грубого деления пополам.
type CoarseStats struct {
	LeftMean  float64 `json:"left_mean"`
	RightMean float64 `json:"right_mean"`
	Asymmetry float64 `json:"asymmetry"`
}
