package searchhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/search"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
)

type Handler struct {
	Service *search.Service
}

func NewHandler(service *search.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/search", h.HandleSearch)
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	results, err := h.Service.Query(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "search failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, results, middleware.GetRequestID(r.Context()))
}
