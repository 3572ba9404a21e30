package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/pkg/log"
)

// tokenKind — тип JWT-токена. Каждый тип подписывается собственным секретом:
// access-токен нельзя проверить секретом refresh и наоборот.
type tokenKind string

const (
	tokenKindAccess  tokenKind = "access"
	tokenKindRefresh tokenKind = "refresh"
)

// authClaims — полезная нагрузка токенов.
// Роли включаются только в access-токен.
type authClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func (s *Service) secretFor(kind tokenKind) []byte {
	if kind == tokenKindRefresh {
		return []byte(s.auth.RefreshSecret)
	}

	return []byte(s.auth.AccessSecret)
}

func (s *Service) ttlFor(kind tokenKind) time.Duration {
	if kind == tokenKindRefresh {
		return s.auth.RefreshTokenTTL
	}

	return s.auth.AccessTokenTTL
}

// generateToken подписывает токен указанного типа (HS256).
// Subject — email пользователя. Каждому токену выдаётся свой jti:
// iat/exp усечены до секунд, и без него две подряд выпущенные пары
// для одного пользователя совпали бы байт в байт.
func (s *Service) generateToken(ctx context.Context, kind tokenKind, user *models.User, now time.Time) (string, error) {
	const op = "service.token.generateToken"

	lg := log.From(ctx)

	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttlFor(kind))),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.auth.Issuer,
			Subject:   user.Email,
		},
	}
	if kind == tokenKindAccess {
		claims.Roles = []string{user.Role}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretFor(kind))
	if err != nil {
		lg.Error("token_sign_failed",
			slog.String("op", op),
			slog.String("kind", string(kind)),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// verifyToken проверяет подпись и срок действия токена указанного типа.
//
// Маппинг ошибок библиотеки на sentinel-ошибки сервиса:
//   - истёкший срок -> ErrTokenExpired;
//   - не-JWT строка -> ErrTokenMalformed;
//   - всё остальное (чужая подпись, чужой секрет, неверный алгоритм,
//     неверный issuer) -> ErrSignatureInvalid.
func (s *Service) verifyToken(kind tokenKind, tokenStr string) (*authClaims, error) {
	const op = "service.token.verifyToken"

	token, err := jwt.ParseWithClaims(tokenStr, &authClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrSignatureInvalid)
			}

			return s.secretFor(kind), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.auth.Issuer),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrSignatureInvalid)
		}
	}

	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrSignatureInvalid)
	}

	return claims, nil
}

// VerifyAccessToken проверяет access-токен и возвращает email и роли владельца.
func (s *Service) VerifyAccessToken(ctx context.Context, tokenStr string) (string, []string, error) {
	const op = "service.token.VerifyAccessToken"

	claims, err := s.verifyToken(tokenKindAccess, tokenStr)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return claims.Subject, claims.Roles, nil
}

// issueTokenPair выпускает новую пару access+refresh токенов для пользователя.
func (s *Service) issueTokenPair(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	const op = "service.token.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateToken(ctx, tokenKindAccess, user, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.generateToken(ctx, tokenKindRefresh, user, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  now.Add(s.auth.AccessTokenTTL),
		RefreshExpiresAt: now.Add(s.auth.RefreshTokenTTL),
	}, nil
}
