package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/service"
)

// Handlers агрегирует зависимости (бизнес-логика).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// userResponse — публичное представление пользователя (без хэша пароля).
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userToResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// eventResponse — публичное представление мероприятия.
type eventResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	EventDate      time.Time `json:"event_date"`
	Capacity       int32     `json:"capacity"`
	AvailableSlots int32     `json:"available_slots"`
	IsActive       bool      `json:"is_active"`
}

func eventToResponse(e *models.Event) eventResponse {
	return eventResponse{
		ID:             e.ID.String(),
		Name:           e.Name,
		Description:    e.Description,
		Location:       e.Location,
		EventDate:      e.EventDate,
		Capacity:       e.Capacity,
		AvailableSlots: e.AvailableSlots,
		IsActive:       e.IsActive,
	}
}

func eventsToResponse(events []models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, eventToResponse(&events[i]))
	}
	return out
}

// offerTypeResponse — публичное представление типа предложения.
type offerTypeResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	NumberOfTickets int32   `json:"number_of_tickets"`
	IsActive        bool    `json:"is_active"`
	DisplayOrder    int32   `json:"display_order"`
}

func offerTypeToResponse(ot *models.OfferType) offerTypeResponse {
	return offerTypeResponse{
		ID:              ot.ID.String(),
		Name:            ot.Name,
		Description:     ot.Description,
		Price:           ot.Price,
		NumberOfTickets: ot.NumberOfTickets,
		IsActive:        ot.IsActive,
		DisplayOrder:    ot.DisplayOrder,
	}
}
