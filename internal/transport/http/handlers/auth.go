package handlers

import (
	"net/http"

	apierrors "github.com/jossainson/ticketing-backend/internal/errors"
	"github.com/jossainson/ticketing-backend/internal/service"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register — POST /auth/register.
// 201 + профиль; пара токенов уезжает в cookie.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	user, pair, err := h.Service.RegisterUser(r.Context(), in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.Service.BindAuthCookies(w, pair)
	writeJSON(w, http.StatusCreated, userToResponse(user))
}

// Login — POST /auth/login.
// 200 + профиль; пара токенов уезжает в cookie.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	user, pair, err := h.Service.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.Service.BindAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, userToResponse(user))
}

// Refresh — POST /auth/refresh.
// Читает refresh-токен из cookie; отсутствие cookie неотличимо
// от негодного токена (401).
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.Service.RefreshCookieName())
	if err != nil || c.Value == "" {
		apierrors.WriteError(w, r, service.ErrInvalidCredentials)
		return
	}

	user, pair, err := h.Service.RefreshTokens(r.Context(), c.Value)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.Service.BindAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, userToResponse(user))
}

// Logout — POST /auth/logout.
// Безусловно затирает обе cookie и отвечает 204: состояние сессии
// живёт только на клиенте, проверять токены незачем.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Service.UnbindAuthCookies(w)
	w.WriteHeader(http.StatusNoContent)
}
