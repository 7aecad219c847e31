package ordershandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"koala/internal/domain/audit"
	"koala/internal/domain/orders"
	"koala/internal/transport/http/api"
	"koala/internal/transport/http/middleware"
	"koala/internal/transport/http/shared"
)

type Handler struct {
	Service *orders.Service
	Audit   *audit.Service
}

func NewHandler(service *orders.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.handleSearch)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/{orderID}", h.handleGet)
		r.Post("/", h.handleCreate)
		r.Put("/{orderID}/status", h.handleUpdateStatus)
		r.With(middleware.RequireAdmin).Delete("/{orderID}", h.handleDelete)
	})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	results, err := h.Service.Search(r.Context(), r.URL.Query().Get("q"), r.URL.Query().Get("status"), page.Limit)
	if err != nil {
		if errors.Is(err, orders.ErrInvalidStatus) {
			api.Fail(w, http.StatusBadRequest, "invalid_status", "invalid work status filter", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "orders_search_failed", "failed to search orders", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, results, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.Dashboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to compute dashboard", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.Get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "order_get_failed", "failed to fetch order", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, order, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload orders.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("customer", payload.Customer, "customer is required")
	v.Required("tier", payload.Tier, "tier is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	order, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrUnknownTier):
			api.Fail(w, http.StatusBadRequest, "unknown_tier", "unknown service tier", middleware.GetRequestID(r.Context()))
		case errors.Is(err, orders.ErrInvalidLoads):
			api.Fail(w, http.StatusBadRequest, "invalid_loads", "loads must be at least 1", middleware.GetRequestID(r.Context()))
		case errors.Is(err, orders.ErrInvalidPayment):
			api.Fail(w, http.StatusBadRequest, "invalid_payment", "payment type must be Cash or GCash", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "order_create_failed", "failed to create order", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Created(w, order, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var payload orders.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	order, err := h.Service.UpdateStatus(r.Context(), orderID, payload)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, orders.ErrInvalidStatus):
			api.Fail(w, http.StatusBadRequest, "invalid_status", "invalid work status", middleware.GetRequestID(r.Context()))
		case errors.Is(err, orders.ErrInvalidPayment):
			api.Fail(w, http.StatusBadRequest, "invalid_payment", "invalid payment fields", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "order_update_failed", "failed to update order", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, order, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if err := h.Service.Delete(r.Context(), orderID); err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "order_not_found", "order not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "order_delete_failed", "failed to delete order", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), "admin", "order.delete", "order", orderID, middleware.GetRequestID(r.Context()), middleware.ClientIP(r), nil); err != nil {
		slog.Warn("audit order.delete failed", "err", err)
	}
	api.Success(w, map[string]string{"id": orderID}, middleware.GetRequestID(r.Context()))
}
