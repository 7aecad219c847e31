package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/auth"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
)

type Handler struct {
	Sessions *auth.Service
}

func NewHandler(sessions *auth.Service) *Handler {
	return &Handler{Sessions: sessions}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/admin/unlock", h.handleUnlock)
	r.Get("/admin/session", h.handleSession)
}

type unlockPayload struct {
	Password string `json:"password"`
}

func (h *Handler) handleUnlock(w http.ResponseWriter, r *http.Request) {
	var payload unlockPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := h.Sessions.Unlock(payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadPassword) {
			api.Fail(w, http.StatusUnauthorized, "bad_password", "incorrect password", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "unlock_failed", "failed to unlock admin area", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"token": token}, middleware.GetRequestID(r.Context()))
}

// handleSession reports whether the caller currently holds an admin
// session, so the UI can decide which controls to show.
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	api.Success(w, map[string]bool{"adminUnlocked": ok && session.AdminUnlocked()}, middleware.GetRequestID(r.Context()))
}
