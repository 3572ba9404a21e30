package middleware

import (
	"context"
	"net/http"

	apierrors "github.com/jossainson/ticketing-backend/internal/errors"
	"github.com/jossainson/ticketing-backend/internal/service"
)

type identityKey struct{}

// Identity — аутентифицированный субъект запроса.
type Identity struct {
	Email string
	Roles []string
}

// IdentityFromContext достаёт субъекта, положенного AuthCookie.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// AccessVerifier проверяет access-токен. Реализуется service.Service.
type AccessVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (string, []string, error)
	AccessCookieName() string
}

// AuthCookie аутентифицирует запрос по access-токену из cookie.
// Отсутствующая cookie и любой дефект токена — 401 с кодом из таксономии
// (invalid_credentials / token_expired / token_malformed / signature_invalid).
func AuthCookie(verifier AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(verifier.AccessCookieName())
			if err != nil || c.Value == "" {
				apierrors.WriteError(w, r, service.ErrInvalidCredentials)
				return
			}

			email, roles, err := verifier.VerifyAccessToken(r.Context(), c.Value)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, Identity{
				Email: email,
				Roles: roles,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
