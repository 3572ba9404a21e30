// storage задаёт контракты слоя хранилища и его sentinel-ошибки.
// Реализация для PostgreSQL находится в подпакете postgres.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jossainson/ticketing-backend/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/событие/тип предложения).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/имя+дата события).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт нового пользователя.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUser обновляет email/имя/фамилию пользователя с данным email.
	UpdateUser(ctx context.Context, email string, upd UserUpdate) (*models.User, error)
	// UpdatePassword заменяет bcrypt-хэш пароля пользователя.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// UserUpdate — частичное обновление профиля.
// Обновляются только поля с ненулевыми указателями.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// ResetTokenStorage выполняет операции над токенами сброса пароля.
type ResetTokenStorage interface {
	// SaveResetToken сохраняет новый токен сброса.
	SaveResetToken(ctx context.Context, token *models.ResetToken) error
	// ResetTokens возвращает все сохранённые токены сброса.
	// Проверка предъявленного секрета — линейный перебор с bcrypt-сравнением,
	// поэтому выборка полная; объём записей мал и ограничен TTL+janitor.
	ResetTokens(ctx context.Context) ([]models.ResetToken, error)
	// DeleteExpiredResetTokens удаляет токены, чей срок истёк к моменту now.
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) error
}

// EventStorage выполняет операции над мероприятиями.
type EventStorage interface {
	// SaveEvent создаёт мероприятие.
	SaveEvent(ctx context.Context, event *models.Event) error
	// SaveEvents создаёт несколько мероприятий одной транзакцией.
	SaveEvents(ctx context.Context, events []*models.Event) error
	// Events возвращает все мероприятия.
	Events(ctx context.Context) ([]models.Event, error)
	// ActiveEvents возвращает активные мероприятия.
	ActiveEvents(ctx context.Context) ([]models.Event, error)
	// AvailableEvents возвращает активные будущие мероприятия со свободными местами.
	AvailableEvents(ctx context.Context, now time.Time) ([]models.Event, error)
	// EventByID находит мероприятие по идентификатору.
	EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// EventByNameAndDate находит мероприятие по имени и дате (для дедупликации).
	EventByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Event, error)
}

// OfferTypeStorage выполняет операции над типами предложений.
type OfferTypeStorage interface {
	// SaveOfferType создаёт тип предложения.
	SaveOfferType(ctx context.Context, offerType *models.OfferType) error
	// OfferTypes возвращает все типы предложений в порядке display_order.
	OfferTypes(ctx context.Context) ([]models.OfferType, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	ResetTokenStorage
	EventStorage
	OfferTypeStorage
	Close()
}
