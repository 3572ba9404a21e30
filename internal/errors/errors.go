// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку (sentinel-ошибки пакета service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: комментарии к переменным ошибок
// в internal/service/service.go.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jossainson/ticketing-backend/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrInvalidArgument — локальная ошибка разбора входных данных хендлером.
var ErrInvalidArgument = errors.New("invalid argument")

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - прочие неизвестные ошибки — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — маппинг sentinel-ошибок -> HTTP/FE-код/сообщение.
//   - неверные кредиты и все дефекты токенов -> 401;
//   - конфликты уникальности -> 409;
//   - отсутствующие сущности -> 404;
//   - ошибки валидации входа -> 400;
//   - сбой внешнего почтового провайдера -> 502;
//   - Canceled -> 499, DeadlineExceeded -> 504;
//   - прочее -> 500/internal.
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired", "token expired"
	case errors.Is(err, service.ErrTokenMalformed):
		return http.StatusUnauthorized, "token_malformed", "token malformed"
	case errors.Is(err, service.ErrSignatureInvalid):
		return http.StatusUnauthorized, "signature_invalid", "token signature invalid"
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "email_taken", "email already taken"
	case errors.Is(err, service.ErrEventExists):
		return http.StatusConflict, "event_exists", "event already exists"
	case errors.Is(err, service.ErrOfferTypeExists):
		return http.StatusConflict, "offer_type_exists", "offer type already exists"
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "user_not_found", "user not found"
	case errors.Is(err, service.ErrEventNotFound):
		return http.StatusNotFound, "event_not_found", "event not found"
	case errors.Is(err, service.ErrInvalidPassword):
		return http.StatusBadRequest, "invalid_password", "invalid password"
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, "invalid_email", "invalid email format"
	case errors.Is(err, service.ErrWeakPassword):
		return http.StatusBadRequest, "weak_password", "password is too weak"
	case errors.Is(err, service.ErrEmptyPassword):
		return http.StatusBadRequest, "empty_password", "password is empty"
	case errors.Is(err, service.ErrInvalidEvent):
		return http.StatusBadRequest, "invalid_event", "invalid event"
	case errors.Is(err, service.ErrInvalidOfferType):
		return http.StatusBadRequest, "invalid_offer_type", "invalid offer type"
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrEmailNotSent):
		return http.StatusBadGateway, "email_not_sent", "email not sent"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
