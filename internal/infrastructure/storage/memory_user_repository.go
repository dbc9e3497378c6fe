package storage

import (
	"context"
	"slices"
	"sync"

	"acne-bot/internal/domain/entity"
	"acne-bot/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей и их сессий
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает копию пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	r.mu.RLock()
	user, exists := r.users[userID]
	r.mu.RUnlock()

	if exists {
		return clone(user), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Пока ждали блокировку, пользователя мог создать другой обработчик
	if user, exists := r.users[userID]; exists {
		return clone(user), nil
	}
	newUser := entity.NewUser(userID, chatID)
	r.users[userID] = newUser

	return clone(newUser), nil
}

// Save сохраняет состояние пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	r.users[user.ID] = clone(user)
	r.mu.Unlock()

	return nil
}

// Reset сбрасывает сессию пользователя
func (r *MemoryUserRepository) Reset(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, exists := r.users[userID]; exists {
		user.Photo = nil
		user.ClearLesions()
		user.SetState(entity.StateMainMenu)
	}

	return nil
}

// clone отделяет сохранённое состояние от изменений вызывающего кода
func clone(u *entity.User) *entity.User {
	c := *u
	c.Lesions = slices.Clone(u.Lesions)
	return &c
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
