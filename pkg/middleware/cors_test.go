package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantAllowed string
		wantBody    string
	}{
		{
			name:        "wildcard allows any origin",
			origins:     []string{"*"},
			method:      http.MethodGet,
			origin:      "http://example.com",
			wantAllowed: "*",
			wantBody:    "ok",
		},
		{
			name:        "wildcard without origin header",
			origins:     []string{"*"},
			method:      http.MethodGet,
			wantAllowed: "*",
			wantBody:    "ok",
		},
		{
			name:        "listed origin is echoed",
			origins:     []string{"http://localhost:3000", "https://dashboard.example.com"},
			method:      http.MethodGet,
			origin:      "https://dashboard.example.com",
			wantAllowed: "https://dashboard.example.com",
			wantBody:    "ok",
		},
		{
			name:     "unlisted origin gets no header",
			origins:  []string{"http://localhost:3000"},
			method:   http.MethodGet,
			origin:   "http://evil.example.com",
			wantBody: "ok",
		},
		{
			name:        "preflight short-circuits",
			origins:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "http://example.com",
			wantAllowed: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/brands/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			Cors(tt.origins)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
