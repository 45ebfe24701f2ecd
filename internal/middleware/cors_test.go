package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/pool-logbook/backend/internal/middleware"
)

const frontend = "http://localhost:5173"

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		origin    string
		preflight string // Access-Control-Request-Method, preflights only
		check     func(t *testing.T, h http.Header)
	}{
		{
			name: "allowed origin", method: http.MethodGet, target: "/pools", origin: frontend,
			check: func(t *testing.T, h http.Header) {
				assert.Equal(t, frontend, h.Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name: "disallowed origin", method: http.MethodGet, target: "/pools", origin: "http://evil.example.com",
			check: func(t *testing.T, h http.Header) {
				assert.Empty(t, h.Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name: "csv download headers exposed", method: http.MethodGet, target: "/export?format=csv", origin: frontend,
			check: func(t *testing.T, h http.Header) {
				assert.Contains(t, h.Get("Access-Control-Expose-Headers"), "Content-Disposition")
			},
		},
		{
			name: "preflight log append", method: http.MethodOptions, target: "/pools/abc/logs", origin: frontend,
			preflight: http.MethodPost,
			check: func(t *testing.T, h http.Header) {
				assert.Equal(t, frontend, h.Get("Access-Control-Allow-Origin"))
				assert.NotEmpty(t, h.Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "600", h.Get("Access-Control-Max-Age"))
			},
		},
		{
			name: "preflight partial pool update", method: http.MethodOptions, target: "/pools/abc", origin: frontend,
			preflight: http.MethodPatch,
			check: func(t *testing.T, h http.Header) {
				assert.Contains(t, h.Get("Access-Control-Allow-Methods"), http.MethodPatch)
			},
		},
	}

	h := middleware.NewCORSHandler([]string{frontend})(okHandler)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight != "" {
				req.Header.Set("Access-Control-Request-Method", tt.preflight)
				// Browsers send requested header names in lowercase.
				req.Header.Set("Access-Control-Request-Headers", "content-type")
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Less(t, rec.Code, 300)
			tt.check(t, rec.Header())
		})
	}
}
