package models

import (
	"time"

	"github.com/google/uuid"
)

// Event — мероприятие, на которое продаются билеты.
type Event struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Location       string
	EventDate      time.Time
	Capacity       int32
	AvailableSlots int32
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
