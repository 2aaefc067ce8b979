package accountshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/accounts"
	"hrmdash/internal/domain/auth"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store *accounts.Store
}

func NewHandler(store *accounts.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.Require(auth.ActionAccountList)).Get("/auth/users", h.HandleList)
	r.Post("/auth/register", h.HandleRegister)
	r.Put("/auth/users/{accountID}", h.HandleUpdateRole)
	r.Delete("/auth/users/{accountID}", h.HandleDelete)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to list accounts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	role := strings.TrimSpace(payload.Role)
	if role == "" {
		role = auth.DefaultRole
	}

	decision := auth.Decide(user.Subject(), auth.ActionAccountCreate, &auth.Target{Role: role, NewRole: role})
	if !decision.Allowed {
		middleware.Forbid(w, r, decision)
		return
	}

	v := shared.NewValidator()
	v.MinLength("username", payload.Username, 3, "must be at least 3 characters")
	v.Email("email", payload.Email)
	v.MinLength("password", payload.Password, 6, "must be at least 6 characters")
	v.OneOf("role", role, auth.AllRoles, "must be one of Admin, Manager, Office Staff, Support")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to create account", middleware.GetRequestID(r.Context()))
		return
	}

	acc, err := h.Store.Create(r.Context(), strings.TrimSpace(payload.Username), strings.TrimSpace(payload.Email), hash, role)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicate) {
			api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "username or email already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to create account", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, acc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	role := strings.TrimSpace(payload.Role)
	accountID := chi.URLParam(r, "accountID")
	target, err := h.Store.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "account not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update account", middleware.GetRequestID(r.Context()))
		return
	}

	decision := auth.Decide(user.Subject(), auth.ActionAccountUpdate, &auth.Target{
		AccountID: target.ID,
		Role:      target.Role,
		NewRole:   role,
	})
	if !decision.Allowed {
		middleware.Forbid(w, r, decision)
		return
	}

	v := shared.NewValidator()
	v.Required("role", role, "role is required")
	if role != "" {
		v.OneOf("role", role, auth.AllRoles, "must be one of Admin, Manager, Office Staff, Support")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Store.UpdateRole(r.Context(), target.ID, role)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "account not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update account", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	accountID := chi.URLParam(r, "accountID")
	target, err := h.Store.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "account not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete account", middleware.GetRequestID(r.Context()))
		return
	}

	decision := auth.Decide(user.Subject(), auth.ActionAccountDelete, &auth.Target{
		AccountID: target.ID,
		Role:      target.Role,
	})
	if !decision.Allowed {
		middleware.Forbid(w, r, decision)
		return
	}

	if err := h.Store.Delete(r.Context(), target.ID); err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "account not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete account", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
