package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/brand-spend-api/pkg/apiErrors"
	"github.com/vfg2006/brand-spend-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa o corpo inteiro antes de escrever o status. Valores que
// não cabem em JSON (NaN, Inf) viram 500 em vez de um 200 vazio.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.ForContext(ctx).WithField("error", err.Error()).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(append(payload, '\n')); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao escrever resposta")
	}
}
