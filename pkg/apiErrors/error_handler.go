package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro internos. O cliente só vê a mensagem pública associada.
const (
	ErrNotFound         = "REQ_001" // Rota inexistente
	ErrMethodNotAllowed = "REQ_002" // Método não suportado na rota

	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

type errorMapping struct {
	status  int
	message string
}

var errorMap = map[string]errorMapping{
	ErrNotFound:          {status: http.StatusNotFound, message: "Not found"},
	ErrMethodNotAllowed:  {status: http.StatusMethodNotAllowed, message: "Method not allowed"},
	ErrInternalServer:    {status: http.StatusInternalServerError, message: "Internal server error"},
	ErrDatabaseOperation: {status: http.StatusInternalServerError, message: "Database error"},
}

// APIError é o corpo padronizado de erro devolvido ao cliente
type APIError struct {
	Error string `json:"error"`
}

// Status devolve o status HTTP de um código; códigos desconhecidos viram 500
func Status(code string) int {
	mapping, exists := errorMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return mapping.status
}

// WriteError escreve o erro padronizado para a resposta HTTP. Nenhum detalhe
// interno é enviado ao cliente.
func WriteError(w http.ResponseWriter, code string) {
	mapping, exists := errorMap[code]
	if !exists {
		mapping = errorMap[ErrInternalServer]
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mapping.status)
	_ = json.NewEncoder(w).Encode(APIError{Error: mapping.message})
}
