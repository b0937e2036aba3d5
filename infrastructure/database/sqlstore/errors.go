package sqlstore

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrConnection = errors.New("store connection failure")
	ErrQuery      = errors.New("store query failure")
)

// Failure carrega o tipo de falha (conexão ou consulta) e a causa original
type Failure struct {
	Kind      error  // ErrConnection ou ErrQuery
	Statement string // Nome da consulta, vazio em falhas de conexão
	Err       error
}

func (f *Failure) Error() string {
	if f.Statement != "" {
		return fmt.Sprintf("%s (%s): %s", f.Kind, f.Statement, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Err)
}

func (f *Failure) Unwrap() []error {
	return []error{f.Kind, f.Err}
}

func IsConnectionFailure(err error) bool {
	return errors.Is(err, ErrConnection)
}

func IsQueryFailure(err error) bool {
	return errors.Is(err, ErrQuery)
}
