package handler

import (
	"net/http"

	"github.com/vfg2006/brand-spend-api/internal/config"
	"github.com/vfg2006/brand-spend-api/internal/usecases/reporting"
	"github.com/vfg2006/brand-spend-api/pkg/apiErrors"
	"github.com/vfg2006/brand-spend-api/pkg/log"
)

// GetBrands lista as marcas, no máximo limit registros
func GetBrands(reporter reporting.Reporter, query config.Query) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit := ParseLimit(r.URL.Query(), query)

		result, err := reporter.Brands(ctx, limit)
		if err != nil {
			writeReportError(w, r, reporting.ReportBrands, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, result)
	}
}

// GetDailySpend lista as transações em ordem decrescente de gasto
func GetDailySpend(reporter reporting.Reporter, query config.Query) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		limit := ParseLimit(r.URL.Query(), query)

		result, err := reporter.DailySpend(ctx, limit)
		if err != nil {
			writeReportError(w, r, reporting.ReportDailySpend, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, result)
	}
}

func GetSummary(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := reporter.Summary(ctx)
		if err != nil {
			writeReportError(w, r, reporting.ReportSummary, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, report)
	}
}

// writeReportError registra a causa completa e devolve só a mensagem pública
func writeReportError(w http.ResponseWriter, r *http.Request, report string, err error) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"report": report,
		"path":   r.URL.Path,
		"error":  err.Error(),
	}).Error("Erro ao gerar relatório")

	apiErrors.WriteError(w, reporting.ErrorCode(err))
}
