package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-spend-api/pkg/log"
)

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		incoming := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/summary/", nil)
		req.Header.Set(RequestIDHeader, incoming)
		rec := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, incoming, seen)
		assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
	})

	t.Run("generates id for invalid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/summary/", nil)
		req.Header.Set(RequestIDHeader, "'; DROP TABLE brand_details;--")
		rec := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(rec, req)

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brands/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

func TestLoggingResponseWriter_CountsBytes(t *testing.T) {
	lrw := newLoggingResponseWriter(httptest.NewRecorder())

	_, _ = lrw.Write([]byte("hello"))
	_, _ = lrw.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, lrw.statusCode)
	assert.Equal(t, 11, lrw.bytes)
}

func TestLogPanicMiddleware_InsideLoggingKeepsCorrelationID(t *testing.T) {
	log.SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	chain := LoggingMiddleware()(LogPanicMiddleware()(panicking))

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/summary/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())

	var panicEntry, requestEntry *logrus.Entry
	for _, entry := range hook.AllEntries() {
		switch entry.Message {
		case "Erro não tratado na aplicação":
			panicEntry = entry
		case "Requisição finalizada com erro":
			requestEntry = entry
		}
	}

	require.NotNil(t, panicEntry)
	assert.Equal(t, incoming, panicEntry.Data["correlation_id"])
	assert.Equal(t, "boom", panicEntry.Data["panic_error"])

	require.NotNil(t, requestEntry)
	assert.Equal(t, logrus.ErrorLevel, requestEntry.Level)
	assert.Equal(t, incoming, requestEntry.Data["correlation_id"])
	assert.Equal(t, http.StatusInternalServerError, requestEntry.Data["status_code"])
}

func TestLoggingMiddleware_LevelFollowsStatus(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name      string
		status    int
		wantLevel logrus.Level
	}{
		{name: "success", status: http.StatusOK, wantLevel: logrus.InfoLevel},
		{name: "client error", status: http.StatusNotFound, wantLevel: logrus.WarnLevel},
		{name: "store error", status: http.StatusInternalServerError, wantLevel: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()
			defer hook.Reset()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			LoggingMiddleware()(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brands/", nil))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.status, entry.Data["status_code"])
		})
	}
}
