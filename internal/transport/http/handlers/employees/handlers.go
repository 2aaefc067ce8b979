package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/domain/employees"
	"hrmdash/internal/transport/http/api"
	"hrmdash/internal/transport/http/middleware"
	"hrmdash/internal/transport/http/shared"
)

type Handler struct {
	Store *employees.Store
}

func NewHandler(store *employees.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.With(middleware.Require(auth.ActionEmployeeCreate)).Post("/", h.HandleCreate)
		r.With(middleware.Require(auth.ActionEmployeeUpdate)).Put("/{employeeID}", h.HandleUpdate)
		r.With(middleware.Require(auth.ActionEmployeeDelete)).Delete("/{employeeID}", h.HandleDelete)
	})
}

type employeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func (p *employeeRequest) trim() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Role = strings.TrimSpace(p.Role)
	p.Department = strings.TrimSpace(p.Department)
}

func (p employeeRequest) validate() *shared.Validator {
	v := shared.NewValidator()
	v.Required("name", p.Name, "name is required")
	v.Required("email", p.Email, "email is required")
	if p.Email != "" {
		v.Email("email", p.Email)
	}
	v.Required("role", p.Role, "role is required")
	v.Required("department", p.Department, "department is required")
	return v
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.trim()
	if payload.validate().Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp, err := h.Store.Create(r.Context(), payload.Name, payload.Email, payload.Role, payload.Department)
	if err != nil {
		if errors.Is(err, employees.ErrDuplicateEmail) {
			api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "employee email already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to add employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.trim()
	if payload.validate().Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp, err := h.Store.Update(r.Context(), chi.URLParam(r, "employeeID"), payload.Name, payload.Email, payload.Role, payload.Department)
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrNotFound):
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "employee not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, employees.ErrDuplicateEmail):
			api.Fail(w, http.StatusBadRequest, api.CodeValidationFailed, "employee email already exists", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to update employee", middleware.GetRequestID(r.Context()))
		}
		return
	}

	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		if errors.Is(err, employees.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, api.CodeNotFound, "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}
