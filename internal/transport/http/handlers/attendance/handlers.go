package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/attendance"
	"hrmdash/internal/domain/auth"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store *attendance.Store
}

func NewHandler(store *attendance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.With(middleware.Require(auth.ActionAttendanceCreate)).Post("/", h.HandleCreate)
		r.With(middleware.Require(auth.ActionAttendanceDelete)).Delete("/{recordID}", h.HandleDelete)
	})
}

type createRequest struct {
	EmployeeID string `json:"employeeId"`
	Action     string `json:"action"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	filter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter")))
	todayOnly := filter == "today"

	list, err := h.Store.List(r.Context(), todayOnly)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to list attendance", middleware.GetRequestID(r.Context()))
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
	v.OneOf("action", payload.Action, attendance.Actions, `must be exactly "check-in" or "check-out"`)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rec, err := h.Store.Create(r.Context(), strings.TrimSpace(payload.EmployeeID), payload.Action)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to record attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "attendance record not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete attendance record", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
