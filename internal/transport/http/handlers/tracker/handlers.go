package trackerhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/tracker"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
	"koala/internal/transport/http/shared"
)

type Handler struct {
	Service *tracker.Service
}

func NewHandler(service *tracker.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tracker", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Get("/sessions", h.handleList)
		r.Get("/sessions.csv", h.handleExportCSV)
		r.Get("/active", h.handleActive)
		r.Post("/start", h.handleStart)
		r.Post("/stop", h.handleStop)
		r.Put("/sessions/{sessionID}", h.handleEdit)
		r.Delete("/sessions/{sessionID}", h.handleDelete)
		r.Get("/rate", h.handleGetRate)
		r.With(middleware.RequireAdmin).Put("/rate", h.handleSetRate)
	})
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "tracker_overview_failed", "failed to build tracker overview", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, overview, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "tracker_list_failed", "failed to list sessions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sessions, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "tracker_list_failed", "failed to list sessions", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="tracker_sessions.csv"`)
	if err := tracker.WriteSessionsCSV(w, sessions); err != nil {
		slog.Warn("tracker csv write failed", "err", err)
	}
}

func (h *Handler) handleActive(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.Active(r.Context())
	if err != nil {
		if errors.Is(err, tracker.ErrNoActiveTimer) {
			api.Success(w, nil, middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "tracker_active_failed", "failed to fetch active session", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	var payload tracker.StartInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("project", payload.Project, "project is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	session, err := h.Service.Start(r.Context(), payload)
	if err != nil {
		if errors.Is(err, tracker.ErrTimerRunning) {
			api.Fail(w, http.StatusConflict, "timer_running", "a timer is already running", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "tracker_start_failed", "failed to start timer", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.Stop(r.Context())
	if err != nil {
		if errors.Is(err, tracker.ErrNoActiveTimer) {
			api.Fail(w, http.StatusConflict, "no_active_timer", "no timer is running", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "tracker_stop_failed", "failed to stop timer", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

type editPayload struct {
	Project   string `json:"project"`
	Task      string `json:"task"`
	StartedAt string `json:"startedAt"`
	EndedAt   string `json:"endedAt"`
	Billable  bool   `json:"billable"`
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload editPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	startedAt, err := time.Parse(time.RFC3339, payload.StartedAt)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_time", "startedAt must be RFC3339", middleware.GetRequestID(r.Context()))
		return
	}
	endedAt, err := time.Parse(time.RFC3339, payload.EndedAt)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_time", "endedAt must be RFC3339", middleware.GetRequestID(r.Context()))
		return
	}

	session, err := h.Service.Edit(r.Context(), sessionID, tracker.EditInput{
		Project:   payload.Project,
		Task:      payload.Task,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Billable:  payload.Billable,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "session_not_found", "session not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, tracker.ErrInvalidSpan):
			api.Fail(w, http.StatusBadRequest, "invalid_span", "session end must be after start", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "tracker_edit_failed", "failed to edit session", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, session, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.Service.Delete(r.Context(), sessionID); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "session_not_found", "session not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "tracker_delete_failed", "failed to delete session", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": sessionID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.Service.HourlyRate(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "tracker_rate_failed", "failed to read hourly rate", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]float64{"hourlyRate": rate}, middleware.GetRequestID(r.Context()))
}

type ratePayload struct {
	HourlyRate float64 `json:"hourlyRate"`
}

func (h *Handler) handleSetRate(w http.ResponseWriter, r *http.Request) {
	var payload ratePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.SetHourlyRate(r.Context(), payload.HourlyRate); err != nil {
		if errors.Is(err, tracker.ErrInvalidRate) {
			api.Fail(w, http.StatusBadRequest, "invalid_rate", "hourly rate must not be negative", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "tracker_rate_failed", "failed to save hourly rate", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]float64{"hourlyRate": payload.HourlyRate}, middleware.GetRequestID(r.Context()))
}
