package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/userctx"
)

// Headers set by the upstream identity provider
const (
	HeaderUserID   = "X-User-ID"
	HeaderScope    = "X-Scope"
	HeaderTenantID = "X-Tenant-ID"
)

// RequireCaller builds the caller identity from identity provider headers.
// Requests without a user are rejected with 401; inconsistent identities with 400.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if actor == "" {
			writeError(w, http.StatusUnauthorized, "missing caller identity")
			return
		}

		scope, err := models.ParseScope(r.Header.Get(HeaderScope))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		caller := models.Caller{
			Actor:    actor,
			Scope:    scope,
			TenantID: strings.TrimSpace(r.Header.Get(HeaderTenantID)),
		}
		if errs := caller.Validate(); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, strings.Join(errs, ", "))
			return
		}

		next.ServeHTTP(w, r.WithContext(userctx.SetCaller(r.Context(), caller)))
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
