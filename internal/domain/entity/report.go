package entity

// SessionReport отчёт по сессии: ракурс -> отчёт по ракурсу.
type SessionReport struct {
	SessionID string                 `json:"session_id"`
	Analyses  map[string]*ViewReport `json:"analyses"`
}

// ViewReport отчёт по одному ракурсу.
type ViewReport struct {
	VisualSummary       string             `json:"visual_summary"`
	Classification      RiskLevel          `json:"classification"`
	Recommendations     []string           `json:"recommendations"`
	RecommendationsText string             `json:"recommendations_text"`
	BaselineStats       StatsRecord        `json:"baseline_stats"`
	AsymmetryReport     AsymmetryReport    `json:"asymmetry_report"`
	AmbientStats        AmbientStats       `json:"ambient_stats"`
	FallbackSplit       *CoarseStats       `json:"fallback_split,omitempty"`
	InflammationTrend   *InflammationTrend `json:"inflammation_trend,omitempty"`
	RecoveryDelta       *RecoveryDelta     `json:"recovery_delta,omitempty"`
	RecoveryStatus      *RecoveryStatus    `json:"recovery_status,omitempty"`
	Images              ImageLinks         `json:"images"`
}

// AsymmetryReport базовая асимметрия до тренировки.
type AsymmetryReport struct {
	BaselineAsymmetry string `json:"baseline_asymmetry"`
	HotterSide        string `json:"hotter_side"`
	PeakRegion        string `json:"peak_region"`
	PeakValue         string `json:"peak_value"`
	Classification    string `json:"classification"`
}

// AmbientStats температура фона и кожи относительно фона.
type AmbientStats struct {
	BackgroundTemp   string `json:"background_temp"`
	RelativeSkinTemp string `json:"relative_skin_temp"`
}

// InflammationTrend изменения сразу после тренировки.
type InflammationTrend struct {
	AsymmetryChange   string `json:"asymmetry_change"`
	HotterSide        string `json:"hotter_side"`
	PeakAsymmetryNode string `json:"peak_asymmetry_node"`
	RelativeTempShift string `json:"relative_temp_shift"`
	PeakIntensity     string `json:"peak_intensity"`
}

// RecoveryDelta изменения через 48 часов относительно базы.
type RecoveryDelta struct {
	AsymmetryRecovery    string `json:"asymmetry_recovery"`
	HotterSide           string `json:"hotter_side"`
	PeakRecoveryNode     string `json:"peak_recovery_node"`
	RelativeTempRecovery string `json:"relative_temp_recovery"`
}

// RecoveryStatus оценка восстановления.
type RecoveryStatus struct {
	RecoveryPercentage string `json:"recovery_percentage"`
	LingeringHotspots  string `json:"lingering_hotspots"`
	Recommendation     string `json:"recommendation"`
}

// ImageLinks ссылки на тепловые карты фаз.
type ImageLinks struct {
	Pre      string `json:"pre"`
	Post     string `json:"post"`
	Recovery string `json:"recovery"`
}
