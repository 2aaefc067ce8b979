package feedbackhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/domain/feedback"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store *feedback.Store
}

func NewHandler(store *feedback.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/feedback", h.HandleCreate)
	r.With(middleware.Require(auth.ActionFeedbackDelete)).Delete("/feedback/{itemID}", h.HandleDelete)
}

type createRequest struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("message", payload.Message, "message is required")
	v.Email("email", payload.Email)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	item, err := h.Store.Create(r.Context(), strings.TrimSpace(payload.Message), strings.TrimSpace(payload.Email))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to submit feedback", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, item, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "feedback not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete feedback", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
