package handler

import (
	"net/http"

	"github.com/vfg2006/brand-spend-api/internal/scheduler"
	"github.com/vfg2006/brand-spend-api/pkg/apiErrors"
)

type StoreStatusReader interface {
	Status() scheduler.StoreStatus
}

type healthcheckResponse struct {
	Status string                 `json:"status"`
	Store  *scheduler.StoreStatus `json:"store,omitempty"`
}

// AliveHandler responde sempre, sem tocar no banco
func AliveHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, healthcheckResponse{Status: "alive"})
	})
}

func HealthcheckHandler(probe StoreStatusReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := probe.Status()
		writeJSON(r.Context(), w, http.StatusOK, healthcheckResponse{Status: "alive", Store: &status})
	})
}

// NotFoundHandler e MethodNotAllowedHandler mantêm o corpo de erro em JSON
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound)
	})
}

func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed)
	})
}
