// service содержит бизнес-логику ticketing-backend:
// регистрацию/аутентификацию пользователей, выпуск/проверку JWT-токенов,
// жизненный цикл токенов сброса пароля и работу с хранилищем через
// интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"context"
	"errors"

	"github.com/jossainson/ticketing-backend/internal/config"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidPassword — текущий пароль не совпал при смене пароля.
	// Транспорт: HTTP 400.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed — токен не является корректным JWT.
	// Транспорт: HTTP 401.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrSignatureInvalid — подпись токена не проходит проверку секретом
	// соответствующего типа (в том числе предъявление refresh вместо access
	// и наоборот). Транспорт: HTTP 401.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrEmailTaken — e-mail уже занят другим пользователем.
	// Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound — пользователь не найден. Транспорт: HTTP 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailNotSent — письмо не удалось отправить через внешний почтовый
	// провайдер. Транспорт: HTTP 502.
	ErrEmailNotSent = errors.New("email not sent")

	// ErrInvalidEmail — e-mail имеет некорректный формат или не проходит политику валидации.
	// Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidEvent — мероприятие не проходит валидацию
	// (пустое имя, неположительная вместимость, дата в прошлом).
	// Транспорт: HTTP 400.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrEventExists — мероприятие с таким именем и датой уже существует.
	// Транспорт: HTTP 409.
	ErrEventExists = errors.New("event already exists")

	// ErrEventNotFound — мероприятие не найдено. Транспорт: HTTP 404.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidOfferType — тип предложения не проходит валидацию.
	// Транспорт: HTTP 400.
	ErrInvalidOfferType = errors.New("invalid offer type")

	// ErrOfferTypeExists — тип предложения с таким именем уже существует.
	// Транспорт: HTTP 409.
	ErrOfferTypeExists = errors.New("offer type already exists")
)

// Mailer отправляет письма пользователям.
// Реализация для Resend находится в пакете internal/email.
type Mailer interface {
	// SendPasswordReset отправляет письмо со ссылкой на сброс пароля.
	// name — имя получателя для приветствия; может быть пустым.
	SendPasswordReset(ctx context.Context, to, name, link string) error
}

// Service описывает бизнес-логику ticketing-backend.
type Service struct {
	storage storage.Storage
	auth    config.AuthConfig
	cookies config.CookieConfig
	reset   config.ResetConfig
	mailer  Mailer
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg *config.Config, mailer Mailer) *Service {
	return &Service{
		storage: storage,
		auth:    cfg.Auth,
		cookies: cfg.Cookies,
		reset:   cfg.Reset,
		mailer:  mailer,
	}
}
