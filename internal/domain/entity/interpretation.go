package entity

// RiskLevel уровень риска по результатам интерпретации.
type RiskLevel string

const (
	RiskUnknown RiskLevel = "Unknown"
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
)

// InterpretationResult итог конвейера интерпретации.
type InterpretationResult struct {
	Interpretation  string    `json:"interpretation"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
}
