package payrollhandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/audit"
	"koala/internal/domain/payroll"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
	"koala/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Audit   *audit.Service
}

func NewHandler(service *payroll.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.With(middleware.RequireAdmin).Get("/summary.csv", h.handleSummaryCSV)
		r.With(middleware.RequireAdmin).Get("/summary.pdf", h.handleSummaryPDF)
	})
}

func (h *Handler) period(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	v := shared.NewValidator()
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	result, err := h.Service.Generate(r.Context(), start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "failed to generate payroll summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummaryCSV(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}
	full := r.URL.Query().Get("variant") == "full"

	result, err := h.Service.Generate(r.Context(), start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "failed to generate payroll summary", middleware.GetRequestID(r.Context()))
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.csv", start.Format("20060102"), end.Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := payroll.WriteSummaryCSV(w, result, full); err != nil {
		slog.Warn("payroll csv write failed", "err", err)
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "payroll.export.csv", "payroll_summary", filename, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), nil); err != nil {
		slog.Warn("audit payroll.export.csv failed", "err", err)
	}
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.period(w, r)
	if !ok {
		return
	}

	result, err := h.Service.Generate(r.Context(), start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "failed to generate payroll summary", middleware.GetRequestID(r.Context()))
		return
	}

	pdf, err := payroll.SummaryPDF(result)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_pdf_failed", "failed to render payroll PDF", middleware.GetRequestID(r.Context()))
		return
	}

	filename := fmt.Sprintf("payroll_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(pdf); err != nil {
		slog.Warn("payroll pdf write failed", "err", err)
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "payroll.export.pdf", "payroll_summary", filename, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), nil); err != nil {
		slog.Warn("audit payroll.export.pdf failed", "err", err)
	}
}
