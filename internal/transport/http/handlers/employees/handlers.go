package employeeshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/audit"
	"koala/internal/domain/employee"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
	"koala/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
	Audit   *audit.Service
}

func NewHandler(service *employee.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Put("/{employeeID}", h.handleUpdate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employees_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to fetch employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

type employeePayload struct {
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	StartDate   string  `json:"startDate"`
	Status      string  `json:"status"`
	DailyRate   float64 `json:"dailyRate"`
	HourlyRate  float64 `json:"hourlyRate"`
	OTRate      float64 `json:"otRate"`
	HolidayRate float64 `json:"holidayRate"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Enum("status", payload.Status, employee.Statuses, "status must be one of Probationary, Regular, Contractual")
	startDate, _ := v.Date("startDate", payload.StartDate)
	if payload.DailyRate < 0 || payload.HourlyRate < 0 {
		v.Add("dailyRate", "rates must not be negative")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp, err := h.Service.Create(r.Context(), employee.CreateInput{
		Name:        strings.TrimSpace(payload.Name),
		Position:    strings.TrimSpace(payload.Position),
		StartDate:   startDate,
		Status:      payload.Status,
		DailyRate:   payload.DailyRate,
		HourlyRate:  payload.HourlyRate,
		OTRate:      payload.OTRate,
		HolidayRate: payload.HolidayRate,
	})
	if err != nil {
		if errors.Is(err, employee.ErrInvalidStatus) {
			api.Fail(w, http.StatusBadRequest, "invalid_status", "invalid employee status", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "employee.create", "employee", emp.EmployeeID, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), payload); err != nil {
		slog.Warn("audit employee.create failed", "err", err)
	}
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Enum("status", payload.Status, employee.Statuses, "status must be one of Probationary, Regular, Contractual")
	startDate, _ := v.Date("startDate", payload.StartDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp := employee.Employee{
		EmployeeID:  employeeID,
		Name:        strings.TrimSpace(payload.Name),
		Position:    strings.TrimSpace(payload.Position),
		StartDate:   startDate,
		Status:      payload.Status,
		DailyRate:   payload.DailyRate,
		HourlyRate:  payload.HourlyRate,
		OTRate:      payload.OTRate,
		HolidayRate: payload.HolidayRate,
	}
	if err := h.Service.Update(r.Context(), emp); err != nil {
		switch {
		case errors.Is(err, employee.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, employee.ErrInvalidStatus):
			api.Fail(w, http.StatusBadRequest, "invalid_status", "invalid employee status", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		}
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "employee.update", "employee", employeeID, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), payload); err != nil {
		slog.Warn("audit employee.update failed", "err", err)
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}
