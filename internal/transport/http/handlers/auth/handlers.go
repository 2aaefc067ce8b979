package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/accounts"
	"hrmdash/internal/domain/auth"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store    *accounts.Store
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store *accounts.Store, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/auth/me", h.HandleMe)
	r.Put("/auth/me", h.HandleUpdateOwn)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateOwnRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec, err := h.Store.FindByUsername(r.Context(), strings.TrimSpace(payload.Username))
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid credentials", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "login failed", middleware.GetRequestID(r.Context()))
		return
	}

	if err := auth.CheckPassword(rec.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		AccountID: rec.ID,
		Username:  rec.Username,
		Role:      rec.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  map[string]string{"id": rec.ID, "username": rec.Username, "role": rec.Role},
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	// Tokens are stateless; logout is an audit event, expiry does the rest.
	slog.Info("account logged out", "accountId", user.AccountID, "username", user.Username)
	api.Success(w, map[string]string{"status": "logged-out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	acc, err := h.Store.GetByID(r.Context(), user.AccountID)
	if err != nil {
		// The account may have been deleted since the token was issued.
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, acc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdateOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload updateOwnRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	decision := auth.Decide(user.Subject(), auth.ActionAccountUpdateSelf, &auth.Target{
		AccountID: user.AccountID,
		Role:      user.Role,
		NewRole:   strings.TrimSpace(payload.Role),
	})
	if !decision.Allowed {
		middleware.Forbid(w, r, decision)
		return
	}

	v := shared.NewValidator()
	if payload.Username != "" {
		v.MinLength("username", payload.Username, 3, "must be at least 3 characters")
	}
	v.Email("email", payload.Email)
	changingPassword := payload.NewPassword != "" || payload.Password != ""
	if changingPassword {
		v.Required("password", payload.Password, "current password is required to change password")
		v.MinLength("newPassword", payload.NewPassword, 6, "must be at least 6 characters")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if changingPassword {
		hash, err := h.Store.PasswordHash(r.Context(), user.AccountID)
		if err != nil {
			api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
			return
		}
		if err := auth.CheckPassword(hash, payload.Password); err != nil {
			api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid current password", middleware.GetRequestID(r.Context()))
			return
		}
		newHash, err := auth.HashPassword(payload.NewPassword)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update password", middleware.GetRequestID(r.Context()))
			return
		}
		if err := h.Store.UpdatePassword(r.Context(), user.AccountID, newHash); err != nil {
			api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update password", middleware.GetRequestID(r.Context()))
			return
		}
	}

	acc, err := h.Store.UpdateProfile(r.Context(), user.AccountID, strings.TrimSpace(payload.Username), strings.TrimSpace(payload.Email))
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrDuplicate):
			api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "username or email already exists", middleware.GetRequestID(r.Context()))
		case errors.Is(err, accounts.ErrNotFound):
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "account not found", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update account", middleware.GetRequestID(r.Context()))
		}
		return
	}

	api.Success(w, acc, middleware.GetRequestID(r.Context()))
}
