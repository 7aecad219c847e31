package leaveshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/employee"
	"koala/internal/domain/leave"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
	"koala/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleFile)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId")); employeeID != "" {
		leaves, err := h.Service.ListForEmployee(r.Context(), employeeID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "leaves_list_failed", "failed to list leaves", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, leaves, middleware.GetRequestID(r.Context()))
		return
	}

	leaves, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leaves_list_failed", "failed to list leaves", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, leaves, middleware.GetRequestID(r.Context()))
}

type filePayload struct {
	EmployeeID string `json:"employeeId"`
	LeaveDate  string `json:"leaveDate"`
	LeaveType  string `json:"leaveType"`
}

func (h *Handler) handleFile(w http.ResponseWriter, r *http.Request) {
	var payload filePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Enum("leaveType", payload.LeaveType, leave.Types, "leaveType must be one of Sick, Vacation, Emergency")
	leaveDate, _ := v.Date("leaveDate", payload.LeaveDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	filed, err := h.Service.File(r.Context(), leave.FileInput{
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		LeaveDate:  leaveDate,
		LeaveType:  payload.LeaveType,
	})
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrInvalidType):
			api.Fail(w, http.StatusBadRequest, "invalid_leave_type", "invalid leave type", middleware.GetRequestID(r.Context()))
		case errors.Is(err, employee.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_file_failed", "failed to file leave", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, filed, middleware.GetRequestID(r.Context()))
}
