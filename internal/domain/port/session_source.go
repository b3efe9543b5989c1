package port

import (
	"context"

	"thermo-agent/internal/domain/entity"
)

// SessionSource интерфейс хранилища сессий съёмки
type SessionSource interface {
	// ListSessions возвращает идентификаторы доступных сессий
	ListSessions(ctx context.Context) ([]string, error)

	// LoadSession загружает все снимки сессии, ключ: имя снимка PHASE_VIEW
	LoadSession(ctx context.Context, sessionID string) (map[string]*entity.TemperatureGrid, error)

	// LoadCapture загружает один снимок сессии
	LoadCapture(ctx context.Context, sessionID, capture string) (*entity.TemperatureGrid, error)
}
