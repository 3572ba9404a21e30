package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/storage"
)

// CreateOfferType создаёт тип предложения.
// Правила: непустое имя, неотрицательная цена, положительное число билетов.
func (s *Service) CreateOfferType(ctx context.Context, ot *models.OfferType) (*models.OfferType, error) {
	const op = "service.offer_types.CreateOfferType"

	if strings.TrimSpace(ot.Name) == "" || ot.Price < 0 || ot.NumberOfTickets <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidOfferType)
	}

	if ot.ID == uuid.Nil {
		ot.ID = uuid.New()
	}
	ot.Name = strings.TrimSpace(ot.Name)
	ot.CreatedAt = time.Now().UTC()

	if err := s.storage.SaveOfferType(ctx, ot); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrOfferTypeExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ot, nil
}

// OfferTypes возвращает все типы предложений в порядке display_order.
func (s *Service) OfferTypes(ctx context.Context) ([]models.OfferType, error) {
	const op = "service.offer_types.OfferTypes"

	offerTypes, err := s.storage.OfferTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return offerTypes, nil
}
