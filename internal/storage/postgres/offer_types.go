package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

// SaveOfferType создаёт тип предложения.
func (s *Storage) SaveOfferType(ctx context.Context, offerType *models.OfferType) error {
	const op = "storage.postgres.SaveOfferType"

	query := `
		INSERT INTO offer_types(id, name, description, price, number_of_tickets, is_active, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		offerType.ID,
		offerType.Name,
		offerType.Description,
		offerType.Price,
		offerType.NumberOfTickets,
		offerType.IsActive,
		offerType.DisplayOrder,
		offerType.CreatedAt,
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

// OfferTypes возвращает все типы предложений в порядке display_order.
func (s *Storage) OfferTypes(ctx context.Context) ([]models.OfferType, error) {
	const op = "storage.postgres.OfferTypes"

	query := `
		SELECT id, name, description, price, number_of_tickets, is_active, display_order, created_at
		FROM offer_types
		ORDER BY display_order
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var offerTypes []models.OfferType
	for rows.Next() {
		var ot models.OfferType
		err := rows.Scan(
			&ot.ID,
			&ot.Name,
			&ot.Description,
			&ot.Price,
			&ot.NumberOfTickets,
			&ot.IsActive,
			&ot.DisplayOrder,
			&ot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		offerTypes = append(offerTypes, ot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return offerTypes, nil
}
