package handlers

import (
	"net/http"

	apierrors "github.com/jossainson/ticketing-backend/internal/errors"
	"github.com/jossainson/ticketing-backend/internal/models"
)

type offerTypeRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	NumberOfTickets int32   `json:"number_of_tickets"`
	IsActive        *bool   `json:"is_active,omitempty"`
	DisplayOrder    int32   `json:"display_order"`
}

// CreateOfferType — POST /offer-types.
func (h *Handlers) CreateOfferType(w http.ResponseWriter, r *http.Request) {
	var in offerTypeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	ot := &models.OfferType{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		NumberOfTickets: in.NumberOfTickets,
		IsActive:        true,
		DisplayOrder:    in.DisplayOrder,
	}
	if in.IsActive != nil {
		ot.IsActive = *in.IsActive
	}

	created, err := h.Service.CreateOfferType(r.Context(), ot)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, offerTypeToResponse(created))
}

// ListOfferTypes — GET /offer-types.
func (h *Handlers) ListOfferTypes(w http.ResponseWriter, r *http.Request) {
	offerTypes, err := h.Service.OfferTypes(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]offerTypeResponse, 0, len(offerTypes))
	for i := range offerTypes {
		out = append(out, offerTypeToResponse(&offerTypes[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
