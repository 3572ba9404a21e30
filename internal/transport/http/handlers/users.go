package handlers

import (
	"net/http"

	apierrors "github.com/jossainson/ticketing-backend/internal/errors"
	"github.com/jossainson/ticketing-backend/internal/service"
	"github.com/jossainson/ticketing-backend/internal/storage"
	"github.com/jossainson/ticketing-backend/internal/transport/http/middleware"
)

type updateProfileRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type forgetPasswordRequest struct {
	Email string `json:"email"`
}

type resetTokenStatusResponse struct {
	Status string `json:"status"`
}

// Me — GET /users/me.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidCredentials)
		return
	}

	user, err := h.Service.UserProfile(r.Context(), id.Email)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// UpdateProfile — PUT /users.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidCredentials)
		return
	}

	var in updateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), id.Email, storage.UserUpdate{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// ChangePassword — PUT /users/password. Успех — 204 без тела.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidCredentials)
		return
	}

	var in changePasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	if err := h.Service.ChangePassword(r.Context(), id.Email, in.CurrentPassword, in.NewPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ForgetPassword — POST /users/forget-password.
// Всегда 200 для известного и неизвестного email (анти-перечисление);
// 502 только при сбое отправки письма.
func (h *Handlers) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var in forgetPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	if err := h.Service.ForgotPassword(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "reset email sent if account exists"})
}

// ValidateResetToken — GET /users/validate-reset-token?token=<секрет>.
// VALID -> 200, EXPIRED -> 410, NOT_FOUND -> 400.
func (h *Handlers) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("token")

	status, err := h.Service.ValidateResetToken(r.Context(), secret)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	switch status {
	case service.ResetTokenValid:
		writeJSON(w, http.StatusOK, resetTokenStatusResponse{Status: "VALID"})
	case service.ResetTokenExpired:
		writeJSON(w, http.StatusGone, resetTokenStatusResponse{Status: "EXPIRED"})
	default:
		writeJSON(w, http.StatusBadRequest, resetTokenStatusResponse{Status: "NOT_FOUND"})
	}
}
