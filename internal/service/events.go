package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/pkg/log"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

// validateEvent проверяет бизнес-правила мероприятия:
// непустое имя, положительная вместимость, дата в будущем.
func validateEvent(e *models.Event, now time.Time) error {
	const op = "service.events.validateEvent"

	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidEvent)
	}

	if e.Capacity <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidEvent)
	}

	if !e.EventDate.After(now) {
		return fmt.Errorf("%s: %w", op, ErrInvalidEvent)
	}

	return nil
}

// prepareEvent выставляет служебные поля перед сохранением.
func prepareEvent(e *models.Event, now time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.AvailableSlots == 0 {
		e.AvailableSlots = e.Capacity
	}
	e.Name = strings.TrimSpace(e.Name)
	e.CreatedAt = now
	e.UpdatedAt = now
}

// CreateEvent создаёт мероприятие.
// Дубликат по паре имя+дата — ErrEventExists.
func (s *Service) CreateEvent(ctx context.Context, e *models.Event) (*models.Event, error) {
	const op = "service.events.CreateEvent"

	now := time.Now().UTC()
	if err := validateEvent(e, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.EventByNameAndDate(ctx, strings.TrimSpace(e.Name), e.EventDate); err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEventExists)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prepareEvent(e, now)

	if err := s.storage.SaveEvent(ctx, e); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

// CreateEvents создаёт пачку мероприятий одной транзакцией.
// Невалидные и дублирующиеся записи молча пропускаются (с warn-логом);
// возвращается число сохранённых.
func (s *Service) CreateEvents(ctx context.Context, events []*models.Event) (int, error) {
	const op = "service.events.CreateEvents"

	lg := log.From(ctx)

	now := time.Now().UTC()
	valid := make([]*models.Event, 0, len(events))
	for _, e := range events {
		if err := validateEvent(e, now); err != nil {
			lg.Warn("bulk_event_skipped",
				slog.String("op", op),
				slog.String("name", e.Name),
				slog.String("reason", "validation"),
			)
			continue
		}

		if _, err := s.storage.EventByNameAndDate(ctx, strings.TrimSpace(e.Name), e.EventDate); err == nil {
			lg.Warn("bulk_event_skipped",
				slog.String("op", op),
				slog.String("name", e.Name),
				slog.String("reason", "duplicate"),
			)
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("%s: %w", op, err)
		}

		prepareEvent(e, now)
		valid = append(valid, e)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	if err := s.storage.SaveEvents(ctx, valid); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return len(valid), nil
}

// Events возвращает все мероприятия.
func (s *Service) Events(ctx context.Context) ([]models.Event, error) {
	const op = "service.events.Events"

	events, err := s.storage.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// ActiveEvents возвращает активные мероприятия.
func (s *Service) ActiveEvents(ctx context.Context) ([]models.Event, error) {
	const op = "service.events.ActiveEvents"

	events, err := s.storage.ActiveEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// AvailableEvents возвращает активные будущие мероприятия со свободными местами.
func (s *Service) AvailableEvents(ctx context.Context) ([]models.Event, error) {
	const op = "service.events.AvailableEvents"

	events, err := s.storage.AvailableEvents(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// EventByID находит мероприятие по идентификатору.
func (s *Service) EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	const op = "service.events.EventByID"

	event, err := s.storage.EventByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}
