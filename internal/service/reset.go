package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/pkg/log"
)

// ResetTokenStatus — результат проверки предъявленного секрета сброса.
type ResetTokenStatus int

const (
	// ResetTokenNotFound — секрет не совпал ни с одной записью.
	ResetTokenNotFound ResetTokenStatus = iota
	// ResetTokenExpired — секрет совпал, но срок записи истёк.
	ResetTokenExpired
	// ResetTokenValid — секрет совпал с живой записью.
	ResetTokenValid
)

// IssueResetToken выпускает токен сброса пароля для пользователя.
//
// Секрет — 32 случайных байта в base64url (43 символа, укладывается в лимит
// bcrypt 72 байта). В хранилище попадает только bcrypt-хэш; сам секрет
// возвращается ровно один раз и нигде не сохраняется.
func (s *Service) IssueResetToken(ctx context.Context, user *models.User) (string, error) {
	const op = "service.reset.IssueResetToken"

	lg := log.From(ctx)

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		lg.Error("reset_rand_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	plain := base64.RawURLEncoding.EncodeToString(b)

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	token := &models.ResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: string(hash),
		ExpiresAt: now.Add(s.reset.TokenTTL),
		CreatedAt: now,
	}

	if err := s.storage.SaveResetToken(ctx, token); err != nil {
		lg.Error("save_reset_token_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return plain, nil
}

// CheckResetToken проверяет предъявленный секрет линейным перебором записей
// с bcrypt-сравнением (хэш солёный, поиск по нему невозможен). Проверка
// не расходует токен: повторное предъявление того же секрета даёт тот же
// результат до истечения срока.
//
// Если секрет совпал и с истёкшей, и с живой записью, живая имеет приоритет.
func (s *Service) CheckResetToken(ctx context.Context, plain string) (ResetTokenStatus, error) {
	const op = "service.reset.CheckResetToken"

	if plain == "" {
		return ResetTokenNotFound, nil
	}

	tokens, err := s.storage.ResetTokens(ctx)
	if err != nil {
		return ResetTokenNotFound, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	matchedExpired := false
	for _, t := range tokens {
		if bcrypt.CompareHashAndPassword([]byte(t.TokenHash), []byte(plain)) != nil {
			continue
		}

		if now.Before(t.ExpiresAt) {
			return ResetTokenValid, nil
		}
		matchedExpired = true
	}

	if matchedExpired {
		return ResetTokenExpired, nil
	}

	return ResetTokenNotFound, nil
}

// PurgeExpiredResetTokens удаляет истёкшие токены сброса.
// Вызывается janitor-горутиной по тикеру (см. cmd).
func (s *Service) PurgeExpiredResetTokens(ctx context.Context) error {
	const op = "service.reset.PurgeExpiredResetTokens"

	if err := s.storage.DeleteExpiredResetTokens(ctx, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
