package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrmdash/internal/domain/auth"
)

func TestAuthAttachesUserFromValidToken(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{AccountID: "u1", Username: "pat", Role: auth.RoleManager}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	var user auth.UserContext
	var ok bool
	handler := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok = GetUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected user in context")
	}
	if user.AccountID != "u1" || user.Username != "pat" || user.Role != auth.RoleManager {
		t.Fatalf("unexpected user context: %+v", user)
	}
}

func TestAuthPassesThroughAnonymously(t *testing.T) {
	for _, header := range []string{"", "Bearer garbage", "Basic dXNlcjpwYXNz"} {
		var ok bool
		handler := Auth("test-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok = GetUser(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("header %q: request should pass through, got %d", header, rec.Code)
		}
		if ok {
			t.Fatalf("header %q: expected no user in context", header)
		}
	}
}

func TestAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	token, err := auth.GenerateToken("other-secret", auth.Claims{AccountID: "u1", Role: auth.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	var ok bool
	handler := Auth("test-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUser(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("token signed with a different secret should not authenticate")
	}
}
