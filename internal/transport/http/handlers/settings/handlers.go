package settingshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/domain/settings"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
)

type Handler struct {
	Store *settings.Store
}

func NewHandler(store *settings.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.HandleGet)
	r.With(middleware.Require(auth.ActionSettingsUpdate)).Put("/settings", h.HandleUpdate)
	r.With(middleware.Require(auth.ActionSettingsDelete)).Delete("/settings", h.HandleDelete)
}

// updateRequest uses pointers so absent fields are distinguishable from
// zero values and leave the stored value untouched.
type updateRequest struct {
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
	Currency      *string `json:"currency"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Store.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to fetch settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload updateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Store.Upsert(r.Context(), payload.Theme, payload.Notifications, payload.Currency)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context()); err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "settings not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "reset"}, middleware.GetRequestID(r.Context()))
}
