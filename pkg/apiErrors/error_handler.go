package apiErrors

import (
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Recurso não encontrado na API

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro na API de escalas
	ErrCommunication   = "SRV_004" // API de escalas inacessível ou lenta demais
	ErrConflict        = "SRV_005" // Operação já em andamento
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
	ErrConflict:            http.StatusConflict,
}

// APIError representa um erro padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status retorna o status HTTP do código de erro
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado em JSON
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError classifica um erro do cliente da API
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	code := ErrInternalServer
	switch {
	case errors.Is(err, apiclient.ErrTimeout), errors.Is(err, apiclient.ErrCommunication):
		code = ErrCommunication
	case errors.Is(err, apiclient.ErrDecode):
		code = ErrExternalService
	default:
		switch status := apiclient.StatusCode(err); {
		case status == http.StatusNotFound:
			code = ErrNotFound
		case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
			code = ErrInvalidRequest
		case status != 0:
			code = ErrExternalService
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
