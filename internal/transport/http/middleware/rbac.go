package middleware

import (
	"net/http"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/transport/http/api"
)

// Require gates a route on the access-control policy for actions that have
// no target record. Handlers with target-dependent rules (account
// management) call the policy themselves.
func Require(action auth.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, api.CodeUnauthorized, "authentication required", GetRequestID(r.Context()))
				return
			}

			decision := auth.Decide(user.Subject(), action, nil)
			if !decision.Allowed {
				Forbid(w, r, decision)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Forbid writes a policy denial, surfacing the reason code in the error
// details.
func Forbid(w http.ResponseWriter, r *http.Request, decision auth.Decision) {
	api.FailWithDetails(
		w,
		http.StatusForbidden,
		api.CodeForbidden,
		"insufficient permissions",
		map[string]any{"reason": decision.Reason},
		GetRequestID(r.Context()),
	)
}
