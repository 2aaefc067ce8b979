package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/domain/payroll"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store *payroll.Store
}

func NewHandler(store *payroll.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payrolls", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.With(middleware.Require(auth.ActionPayrollCreate)).Post("/", h.HandleCreate)
		r.With(middleware.Require(auth.ActionPayrollDelete)).Delete("/{entryID}", h.HandleDelete)
	})
}

type createRequest struct {
	EmployeeID string  `json:"employeeId"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	filter := strings.TrimSpace(r.URL.Query().Get("filter"))
	period := ""
	if filter != "" && !strings.EqualFold(filter, "all") {
		v := shared.NewValidator()
		v.OneOf("filter", filter, payroll.Periods, `must be "Monthly", "Quarterly" or "All"`)
		if v.Reject(w, middleware.GetRequestID(r.Context())) {
			return
		}
		period = filter
	}

	list, err := h.Store.List(r.Context(), period)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to list payrolls", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	if payload.Amount <= 0 {
		v.Add("amount", "must be a positive number")
	}
	v.OneOf("period", payload.Period, payroll.Periods, `must be exactly "Monthly" or "Quarterly"`)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	entry, err := h.Store.Create(r.Context(), strings.TrimSpace(payload.EmployeeID), payload.Amount, payload.Period)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to add payroll", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "payroll entry not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete payroll", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
