package port

import (
	"context"

	"thermo-agent/internal/domain/entity"
)

// UserRepository хранит состояние диалога бота по каждому пользователю.
type UserRepository interface {
	// Get возвращает копию пользователя, новый создаётся в главном меню
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя целиком, включая последнюю сессию
	Save(ctx context.Context, user *entity.User) error

	// UpdateState меняет только состояние; неизвестный пользователь пропускается
	UpdateState(ctx context.Context, userID int64, state entity.UserState) error
}
