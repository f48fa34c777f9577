package repository

import (
	"context"

	"github.com/aidar/collabsphere/internal/domain"
)

// EventRepository определяет методы для работы с данными мероприятий
type EventRepository interface {
	// List возвращает все мероприятия, новые первыми
	List(ctx context.Context) ([]*domain.Event, error)

	// GetByID получает мероприятие по ID
	GetByID(ctx context.Context, eventID string) (*domain.Event, error)

	// Create создает мероприятие и возвращает присвоенный ID
	Create(ctx context.Context, event *domain.Event) (string, error)

	// Join записывает пользователя на мероприятие с проверкой вместимости
	Join(ctx context.Context, eventID, userID string) error

	// HasJoined проверяет, записан ли пользователь на мероприятие
	HasJoined(ctx context.Context, eventID, userID string) (bool, error)
}

// TeamRepository определяет методы для работы с данными команд
type TeamRepository interface {
	// List возвращает все команды, новые первыми
	List(ctx context.Context) ([]*domain.Team, error)

	// GetByID получает команду по ID
	GetByID(ctx context.Context, teamID string) (*domain.Team, error)

	// Create создает команду и возвращает присвоенный ID
	Create(ctx context.Context, team *domain.Team) (string, error)

	// Join добавляет пользователя в команду с проверкой вместимости
	Join(ctx context.Context, teamID, userID, userName string) error

	// HasJoined проверяет членство пользователя (участник или лидер)
	HasJoined(ctx context.Context, teamID, userID string) (bool, error)
}

// UserRepository определяет методы для работы с профилями пользователей
type UserRepository interface {
	// List возвращает все профили, новые первыми
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID получает профиль по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// GetByEmail получает профиль по email (первое совпадение,
	// уникальность на этом уровне не гарантируется)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create создает профиль и возвращает присвоенный ID
	Create(ctx context.Context, user *domain.User) (string, error)

	// Update частично обновляет профиль
	Update(ctx context.Context, userID string, update *domain.UserUpdate) error
}
