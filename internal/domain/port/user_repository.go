package port

import (
	"context"

	"acne-bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей и их сессий разметки
type UserRepository interface {
	// Get возвращает копию пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя вместе с фото и отметками
	Save(ctx context.Context, user *entity.User) error

	// Reset удаляет фото и отметки и возвращает пользователя в главное меню
	Reset(ctx context.Context, userID int64) error
}
