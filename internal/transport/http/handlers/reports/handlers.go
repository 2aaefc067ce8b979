package reportshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/domain/reports"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store *reports.Store
}

func NewHandler(store *reports.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.With(middleware.Require(auth.ActionReportCreate)).Post("/", h.HandleCreate)
		r.With(middleware.Require(auth.ActionReportExport)).Get("/{reportID}/export", h.HandleExport)
		r.With(middleware.Require(auth.ActionReportDelete)).Delete("/{reportID}", h.HandleDelete)
	})
}

type createRequest struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to list reports", middleware.GetRequestID(r.Context()))
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
	v.OneOf("type", payload.Type, reports.Types, `must be exactly "Employee", "Attendance" or "Payroll"`)
	v.Required("details", payload.Details, "details is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rep, err := h.Store.Create(r.Context(), payload.Type, strings.TrimSpace(payload.Details))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to add report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, rep, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Store.Get(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "report not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to export report", middleware.GetRequestID(r.Context()))
		return
	}

	pdfBytes, err := reports.RenderPDF(rep)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to export report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+rep.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "reportID")); err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "report not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
