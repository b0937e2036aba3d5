package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "database error",
			code:       ErrDatabaseOperation,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error": "Database error"}`,
		},
		{
			name:       "not found",
			code:       ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "Not found"}`,
		},
		{
			name:       "unknown code falls back to internal error",
			code:       "XYZ_999",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error": "Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, Status(tt.code))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
