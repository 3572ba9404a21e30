package models

import (
	"time"

	"github.com/google/uuid"
)

// OfferType — тип предложения (solo/duo/famille и т.п.).
type OfferType struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Price           float64
	NumberOfTickets int32
	IsActive        bool
	DisplayOrder    int32
	CreatedAt       time.Time
}
