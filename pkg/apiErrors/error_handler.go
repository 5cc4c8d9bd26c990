package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API de analytics
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidPeriod       = "VAL_003" // Seletor de período inválido

	// Erros de previsão (4000-4999)
	ErrForecastCooldown    = "FCT_001" // Cooldown entre previsões ativo
	ErrForecastUnavailable = "FCT_002" // Modelo de previsão indisponível
	ErrForecastRateLimited = "FCT_003" // Modelo ocupado/limitado
	ErrForecastQuota       = "FCT_004" // Cota do modelo excedida
	ErrForecastUnknown     = "FCT_005" // Falha desconhecida na previsão

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrForecastCooldown:      http.StatusTooManyRequests,
	ErrForecastUnavailable:   http.StatusInternalServerError,
	ErrForecastRateLimited:   http.StatusInternalServerError,
	ErrForecastQuota:         http.StatusInternalServerError,
	ErrForecastUnknown:       http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
