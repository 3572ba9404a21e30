package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

const eventColumns = `id, name, description, location, event_date, capacity, available_slots, is_active, created_at, updated_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Location,
		&e.EventDate,
		&e.Capacity,
		&e.AvailableSlots,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveEvent создаёт мероприятие.
func (s *Storage) SaveEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.SaveEvent"

	query := `
		INSERT INTO events(` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.Location,
		event.EventDate,
		event.Capacity,
		event.AvailableSlots,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
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

// SaveEvents создаёт несколько мероприятий одной транзакцией.
func (s *Storage) SaveEvents(ctx context.Context, events []*models.Event) error {
	const op = "storage.postgres.SaveEvents"

	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO events(` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, event := range events {
		_, err := tx.Exec(ctx, query,
			event.ID,
			event.Name,
			event.Description,
			event.Location,
			event.EventDate,
			event.Capacity,
			event.AvailableSlots,
			event.IsActive,
			event.CreatedAt,
			event.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			}

			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) queryEvents(ctx context.Context, op, query string, args ...any) ([]models.Event, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// Events возвращает все мероприятия.
func (s *Storage) Events(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.Events"

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date`

	return s.queryEvents(ctx, op, query)
}

// ActiveEvents возвращает активные мероприятия.
func (s *Storage) ActiveEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.postgres.ActiveEvents"

	query := `SELECT ` + eventColumns + ` FROM events WHERE is_active ORDER BY event_date`

	return s.queryEvents(ctx, op, query)
}

// AvailableEvents возвращает активные будущие мероприятия со свободными местами.
func (s *Storage) AvailableEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	const op = "storage.postgres.AvailableEvents"

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_active AND available_slots > 0 AND event_date > $1
		ORDER BY event_date
	`

	return s.queryEvents(ctx, op, query, now)
}

// EventByID находит мероприятие по идентификатору.
func (s *Storage) EventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	const op = "storage.postgres.EventByID"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// EventByNameAndDate находит мероприятие по имени и дате (для дедупликации).
func (s *Storage) EventByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Event, error) {
	const op = "storage.postgres.EventByNameAndDate"

	query := `SELECT ` + eventColumns + ` FROM events WHERE name = $1 AND event_date = $2`

	event, err := scanEvent(s.db.QueryRow(ctx, query, name, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}
