package container

import (
	"thermo-agent/config"
	app "thermo-agent/internal/application"
	"thermo-agent/internal/infrastructure/render"
	"thermo-agent/internal/infrastructure/storage"
	"thermo-agent/internal/infrastructure/vision"
)

// Container собирает зависимости приложения
type Container struct {
	Sessions    *storage.SessionStore
	Analyzer    *app.SessionAnalyzer
	Renderer    *render.HeatmapRenderer
	UserService *app.UserService
}

func New(cfg *config.Config) *Container {
	sessions := storage.NewSessionStore(cfg.DataDir)
	analyzer := app.NewSessionAnalyzer(sessions, vision.NewSegmenter(), vision.NewRegionExtractor(), app.AnalyzerOptions{
		MinSkinTemp:  cfg.MinSkinTemp,
		MaxSkinTemp:  cfg.MaxSkinTemp,
		ImageBaseURL: cfg.PublicBaseURL,
	})

	return &Container{
		Sessions:    sessions,
		Analyzer:    analyzer,
		Renderer:    render.NewHeatmapRenderer(),
		UserService: app.NewUserService(storage.NewMemoryUserRepository()),
	}
}
