package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/jossainson/ticketing-backend/internal/errors"
	"github.com/jossainson/ticketing-backend/internal/models"
)

type eventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"event_date"`
	Capacity    int32     `json:"capacity"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

func (in eventRequest) toModel() *models.Event {
	e := &models.Event{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		EventDate:   in.EventDate,
		Capacity:    in.Capacity,
		IsActive:    true,
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	return e
}

type bulkCreateResponse struct {
	Created int `json:"created"`
}

// CreateEvent — POST /events.
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in eventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	event, err := h.Service.CreateEvent(r.Context(), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventToResponse(event))
}

// CreateEvents — POST /events/bulk.
// Невалидные и дублирующиеся записи пачки молча пропускаются.
func (h *Handlers) CreateEvents(w http.ResponseWriter, r *http.Request) {
	var in []eventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	events := make([]*models.Event, 0, len(in))
	for _, e := range in {
		events = append(events, e.toModel())
	}

	n, err := h.Service.CreateEvents(r.Context(), events)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bulkCreateResponse{Created: n})
}

// ListEvents — GET /events.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.Events(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(events))
}

// ListActiveEvents — GET /events/active.
func (h *Handlers) ListActiveEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.ActiveEvents(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(events))
}

// ListAvailableEvents — GET /events/available.
func (h *Handlers) ListAvailableEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.AvailableEvents(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(events))
}

// GetEvent — GET /events/{id}.
func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	event, err := h.Service.EventByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(event))
}
