package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Значения по умолчанию.
const (
	DefaultDataDir       = "images"
	DefaultHTTPAddr      = ":8000"
	DefaultPublicBaseURL = "http://localhost:8000"
	DefaultFrontendDir   = "frontend/dist"
	DefaultMinSkinTemp   = 26.0
	DefaultMaxSkinTemp   = 38.0
)

type Config struct {
	DataDir       string
	HTTPAddr      string
	PublicBaseURL string
	FrontendDir   string
	TelegramToken string
	MinSkinTemp   float64
	MaxSkinTemp   float64
	ReportFile    string
}

// Load читает окружение. Validate вызывает сторона, применившая флаги командной строки.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:       getEnv("DATA_DIR", DefaultDataDir),
		HTTPAddr:      getEnv("HTTP_ADDR", DefaultHTTPAddr),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", DefaultPublicBaseURL),
		FrontendDir:   getEnv("FRONTEND_DIR", DefaultFrontendDir),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		ReportFile:    os.Getenv("REPORT_FILE"),
	}

	var err error
	if cfg.MinSkinTemp, err = getFloat("SKIN_MIN_TEMP", DefaultMinSkinTemp); err != nil {
		return nil, err
	}
	if cfg.MaxSkinTemp, err = getFloat("SKIN_MAX_TEMP", DefaultMaxSkinTemp); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.MinSkinTemp >= c.MaxSkinTemp {
		return fmt.Errorf("skin temperature range is empty: min %.2f >= max %.2f", c.MinSkinTemp, c.MaxSkinTemp)
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
