package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/config-store/models"
	"github.com/blogem/config-store/userctx"
)

func captureCaller(t *testing.T, got *models.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := userctx.GetCaller(r.Context())
		require.True(t, ok)
		*got = caller
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequireCaller(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{"tenant caller", map[string]string{HeaderUserID: "alice", HeaderScope: "tenant", HeaderTenantID: "acme"}, http.StatusNoContent},
		{"platform caller", map[string]string{HeaderUserID: "root", HeaderScope: "platform"}, http.StatusNoContent},
		{"missing user", map[string]string{HeaderScope: "platform"}, http.StatusUnauthorized},
		{"unknown scope", map[string]string{HeaderUserID: "alice", HeaderScope: "galaxy"}, http.StatusBadRequest},
		{"tenant without id", map[string]string{HeaderUserID: "alice", HeaderScope: "tenant"}, http.StatusBadRequest},
		{"platform with tenant id", map[string]string{HeaderUserID: "root", HeaderScope: "platform", HeaderTenantID: "acme"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var caller models.Caller
			handler := RequireCaller(captureCaller(t, &caller))

			req := httptest.NewRequest(http.MethodGet, "/settings", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, tt.headers[HeaderUserID], caller.Actor)
				assert.Equal(t, tt.headers[HeaderTenantID], caller.TenantID)
			} else {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestClientContextFeedsCaller(t *testing.T) {
	var caller models.Caller
	handler := ClientContext(RequireCaller(captureCaller(t, &caller)))

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.Header.Set(HeaderUserID, "alice")
	req.Header.Set(HeaderScope, "platform")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "form-renderer/2.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.9", caller.ClientIP)
	assert.Equal(t, "form-renderer/2.1", caller.ClientAgent)
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", getIPAddress(req))

	req.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", getIPAddress(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", getIPAddress(req))

	ipv6 := httptest.NewRequest(http.MethodGet, "/", nil)
	ipv6.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", getIPAddress(ipv6))
}
