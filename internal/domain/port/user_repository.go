package port

import (
	"context"
	"errors"

	"rescue-planner/internal/domain/entity"
)

// ErrUserNotFound оператор ещё не писал боту
var ErrUserNotFound = errors.New("user not found")

// UserRepository интерфейс хранилища операторов бота
type UserRepository interface {
	// Get возвращает оператора по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет состояние оператора
	Save(ctx context.Context, user *entity.User) error

	// UpdateState обновляет состояние известного оператора
	UpdateState(ctx context.Context, userID int64, state entity.UserState) error
}
