package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/pkg/log"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

// UserProfile возвращает профиль пользователя по email.
func (s *Service) UserProfile(ctx context.Context, email string) (*models.User, error) {
	const op = "service.users.UserProfile"

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateProfile обновляет email/имя/фамилию пользователя.
// Меняются только поля с ненулевыми указателями; новый email валидируется.
func (s *Service) UpdateProfile(ctx context.Context, email string, upd storage.UserUpdate) (*models.User, error) {
	const op = "service.users.UpdateProfile"

	if upd.Email != nil {
		normEmail, err := validateEmail(*upd.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
		}
		upd.Email = &normEmail
	}

	user, err := s.storage.UpdateUser(ctx, email, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ChangePassword меняет пароль пользователя после проверки текущего.
// Несовпадение текущего пароля — ErrInvalidPassword.
func (s *Service) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	const op = "service.users.ChangePassword"

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, currentPassword) {
		return fmt.Errorf("%s: %w", op, ErrInvalidPassword)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePassword(ctx, email, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ForgotPassword запускает сценарий восстановления пароля.
//
// Анти-перечисление: для неизвестного email сценарий завершается успешно,
// не выдавая наружу факт отсутствия учётной записи. Для известного email
// выпускается токен сброса и отправляется письмо со ссылкой; сбой отправки
// возвращается как ErrEmailNotSent, уже созданная запись токена при этом
// не откатывается.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	const op = "service.users.ForgotPassword"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		// Неразличимо с неизвестным email.
		return nil
	}

	user, err := s.storage.UserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("forgot_password_unknown_email",
				slog.String("op", op),
			)
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	secret, err := s.IssueResetToken(ctx, user)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	link := s.reset.LinkBase + "?token=" + url.QueryEscape(secret)
	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.FirstName, link); err != nil {
		lg.Error("reset_email_send_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, ErrEmailNotSent)
	}

	return nil
}

// ValidateResetToken проверяет предъявленный секрет сброса.
func (s *Service) ValidateResetToken(ctx context.Context, secret string) (ResetTokenStatus, error) {
	const op = "service.users.ValidateResetToken"

	status, err := s.CheckResetToken(ctx, secret)
	if err != nil {
		return ResetTokenNotFound, fmt.Errorf("%s: %w", op, err)
	}

	return status, nil
}
