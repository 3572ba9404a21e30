package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

// SaveResetToken сохраняет новый токен сброса пароля.
func (s *Storage) SaveResetToken(ctx context.Context, token *models.ResetToken) error {
	const op = "storage.postgres.SaveResetToken"

	query := `
		INSERT INTO reset_tokens(id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.TokenHash,
		token.ExpiresAt,
		token.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResetTokens возвращает все сохранённые токены сброса.
// Записей мало (TTL один час + janitor), полная выборка — осознанный выбор:
// искать по хэшу нельзя, bcrypt-хэш не является ключом поиска.
func (s *Storage) ResetTokens(ctx context.Context) ([]models.ResetToken, error) {
	const op = "storage.postgres.ResetTokens"

	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM reset_tokens
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tokens []models.ResetToken
	for rows.Next() {
		var t models.ResetToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tokens = append(tokens, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

// DeleteExpiredResetTokens удаляет токены, чей срок истёк к моменту now.
func (s *Storage) DeleteExpiredResetTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredResetTokens"

	query := `
		DELETE FROM reset_tokens
		WHERE expires_at <= $1
	`

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserResetTokens возвращает токены конкретного пользователя (для тестов/отладки).
func (s *Storage) UserResetTokens(ctx context.Context, userID string) ([]models.ResetToken, error) {
	const op = "storage.postgres.UserResetTokens"

	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM reset_tokens
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tokens []models.ResetToken
	for rows.Next() {
		var t models.ResetToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tokens = append(tokens, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}
