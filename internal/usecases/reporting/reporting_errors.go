package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/brand-spend-api/pkg/apiErrors"
)

var ErrDatabaseOperation = errors.New("database operation error")

// ReportError é um erro com contexto adicional sobre o relatório que falhou
type ReportError struct {
	Err    error  // Erro base
	Code   string // Código de erro para API
	Report string // Relatório envolvido
	Cause  error  // Causa original, apenas para log
}

func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Report, e.Err.Error(), e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Report, e.Err.Error())
}

func (e *ReportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newDatabaseError(report string, cause error) *ReportError {
	return &ReportError{
		Err:    ErrDatabaseOperation,
		Code:   apiErrors.ErrDatabaseOperation,
		Report: report,
		Cause:  cause,
	}
}

// ErrorCode devolve o código de API associado a err
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code
	}
	return apiErrors.ErrInternalServer
}
