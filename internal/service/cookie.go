package service

import (
	"net/http"
	"time"

	"github.com/jossainson/ticketing-backend/internal/models"
)

// sameSiteFromString переводит строковое значение конфигурации в http.SameSite.
// Неизвестные значения трактуются как lax.
func sameSiteFromString(v string) http.SameSite {
	switch v {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// newCookie собирает cookie с фиксированными транспортными атрибутами:
// HttpOnly всегда, Path "/", Secure/SameSite/Domain из конфигурации.
// Пустой Domain — атрибут не выставляется.
func (s *Service) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.cookies.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cookies.Secure,
		SameSite: sameSiteFromString(s.cookies.SameSite),
	}
}

// BindAuthCookies записывает пару токенов в cookie ответа.
// Время жизни cookie совпадает с TTL соответствующего токена.
func (s *Service) BindAuthCookies(w http.ResponseWriter, pair *models.TokenPair) {
	now := time.Now().UTC()

	accessAge := int(pair.AccessExpiresAt.Sub(now).Seconds())
	refreshAge := int(pair.RefreshExpiresAt.Sub(now).Seconds())

	http.SetCookie(w, s.newCookie(s.cookies.AccessName, pair.AccessToken, accessAge))
	http.SetCookie(w, s.newCookie(s.cookies.RefreshName, pair.RefreshToken, refreshAge))
}

// UnbindAuthCookies затирает обе cookie: пустое значение и Max-Age=0
// (в Go это MaxAge < 0). Выполняется безусловно, без проверки токенов.
func (s *Service) UnbindAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, s.newCookie(s.cookies.AccessName, "", -1))
	http.SetCookie(w, s.newCookie(s.cookies.RefreshName, "", -1))
}

// AccessCookieName возвращает имя cookie с access-токеном.
func (s *Service) AccessCookieName() string {
	return s.cookies.AccessName
}

// RefreshCookieName возвращает имя cookie с refresh-токеном.
func (s *Service) RefreshCookieName() string {
	return s.cookies.RefreshName
}
