package dtrhandler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/audit"
	"koala/internal/domain/dtr"
	"koala/internal/domain/employee"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
	"koala/internal/transport/http/shared"
)

type Handler struct {
	Service *dtr.Service
	Audit   *audit.Service
}

func NewHandler(service *dtr.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dtr", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleLog)
		r.With(middleware.RequireAdmin).Put("/{entryID}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Delete("/{entryID}", h.handleDelete)
		r.With(middleware.RequireAdmin).Post("/import", h.handleImportCSV)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	entries, err := h.Service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dtr_list_failed", "failed to list time entries", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

type logPayload struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employeeId"`
	TimeIn     string `json:"timeIn"`
	TimeOut    string `json:"timeOut"`
	IsHoliday  bool   `json:"isHoliday"`
	Notes      string `json:"notes"`
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	var payload logPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("timeIn", payload.TimeIn, "timeIn is required")
	v.Required("timeOut", payload.TimeOut, "timeOut is required")
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	entry, err := h.Service.LogTime(r.Context(), dtr.LogInput{
		Date:       date,
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		TimeIn:     strings.TrimSpace(payload.TimeIn),
		TimeOut:    strings.TrimSpace(payload.TimeOut),
		IsHoliday:  payload.IsHoliday,
		Notes:      payload.Notes,
	})
	if err != nil {
		h.failLog(w, r, err)
		return
	}
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failLog(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, dtr.ErrDuplicateEntry):
		api.Fail(w, http.StatusConflict, "duplicate_entry", "an entry for that employee and date already exists", requestID)
	case errors.Is(err, dtr.ErrInvalidInterval):
		api.Fail(w, http.StatusBadRequest, "invalid_interval", "time out must be after time in", requestID)
	case errors.Is(err, dtr.ErrInvalidClock):
		api.Fail(w, http.StatusBadRequest, "invalid_clock", "times must be HH:MM wall-clock values", requestID)
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "dtr_log_failed", "failed to record time entry", requestID)
	}
}

type updatePayload struct {
	Date      string `json:"date"`
	TimeIn    string `json:"timeIn"`
	TimeOut   string `json:"timeOut"`
	IsHoliday bool   `json:"isHoliday"`
	Notes     string `json:"notes"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("timeIn", payload.TimeIn, "timeIn is required")
	v.Required("timeOut", payload.TimeOut, "timeOut is required")
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	entry, err := h.Service.Update(r.Context(), dtr.TimeEntry{
		ID:        entryID,
		Date:      date,
		TimeIn:    strings.TrimSpace(payload.TimeIn),
		TimeOut:   strings.TrimSpace(payload.TimeOut),
		IsHoliday: payload.IsHoliday,
		Notes:     payload.Notes,
	})
	if err != nil {
		if errors.Is(err, dtr.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "entry_not_found", "time entry not found", middleware.GetRequestID(r.Context()))
			return
		}
		h.failLog(w, r, err)
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "dtr.update", "time_entry", entryID, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), payload); err != nil {
		slog.Warn("audit dtr.update failed", "err", err)
	}
	api.Success(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if err := h.Service.Delete(r.Context(), entryID); err != nil {
		if errors.Is(err, dtr.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "entry_not_found", "time entry not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "dtr_delete_failed", "failed to delete time entry", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "dtr.delete", "time_entry", entryID, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), nil); err != nil {
		slog.Warn("audit dtr.delete failed", "err", err)
	}
	api.Success(w, map[string]string{"id": entryID}, middleware.GetRequestID(r.Context()))
}

type importRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type importReport struct {
	Inserted int              `json:"inserted"`
	Errors   []importRowError `json:"errors,omitempty"`
}

// handleImportCSV ingests a timesheet dump. Expected columns:
// Date,Employee_ID,Time_In,Time_Out,Is_Holiday,Notes. Each row passes
// through the same validation as a single log; bad rows are reported
// with their line numbers and good rows are still inserted.
func (h *Handler) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	reader := csv.NewReader(r.Body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_csv", "could not read CSV header", middleware.GetRequestID(r.Context()))
		return
	}
	if len(header) < 4 {
		api.Fail(w, http.StatusBadRequest, "invalid_csv", "expected Date,Employee_ID,Time_In,Time_Out[,Is_Holiday,Notes]", middleware.GetRequestID(r.Context()))
		return
	}

	report := importReport{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			report.Errors = append(report.Errors, importRowError{Line: line, Reason: "malformed row"})
			continue
		}
		if len(record) < 4 {
			report.Errors = append(report.Errors, importRowError{Line: line, Reason: "too few columns"})
			continue
		}

		date, err := shared.ParseDate(strings.TrimSpace(record[0]))
		if err != nil || date.IsZero() {
			report.Errors = append(report.Errors, importRowError{Line: line, Reason: "invalid date"})
			continue
		}

		in := dtr.LogInput{
			Date:       date,
			EmployeeID: strings.TrimSpace(record[1]),
			TimeIn:     strings.TrimSpace(record[2]),
			TimeOut:    strings.TrimSpace(record[3]),
		}
		if len(record) > 4 {
			in.IsHoliday = strings.EqualFold(strings.TrimSpace(record[4]), "true")
		}
		if len(record) > 5 {
			in.Notes = record[5]
		}

		if _, err := h.Service.LogTime(r.Context(), in); err != nil {
			report.Errors = append(report.Errors, importRowError{Line: line, Reason: importReason(err)})
			continue
		}
		report.Inserted++
	}

	if err := h.Audit.Record(r.Context(), "admin", "dtr.import", "time_entry", fmt.Sprintf("rows=%d", report.Inserted), middleware.GetRequestID(r.Context()), middleware.ClientIP(r), report.Errors); err != nil {
		slog.Warn("audit dtr.import failed", "err", err)
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func importReason(err error) string {
	switch {
	case errors.Is(err, dtr.ErrDuplicateEntry):
		return "duplicate entry for employee and date"
	case errors.Is(err, dtr.ErrInvalidInterval):
		return "time out not after time in"
	case errors.Is(err, dtr.ErrInvalidClock):
		return "invalid clock value"
	case errors.Is(err, employee.ErrNotFound):
		return "unknown employee"
	default:
		return "insert failed"
	}
}
