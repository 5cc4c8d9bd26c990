package domain

import "fmt"

// FailureKind classifica as falhas do modelo externo para que a camada de
// API e o orquestrador saibam o que sugerir ao usuário
type FailureKind string

const (
	FailureUnavailable FailureKind = "unavailable"
	FailureRateLimited FailureKind = "rate_limited"
	FailureQuota       FailureKind = "quota"
	FailureUnknown     FailureKind = "unknown"
)

// ForecastError embrulha um erro do modelo externo com sua classificação
type ForecastError struct {
	Kind FailureKind
	Err  error
}

func (e *ForecastError) Error() string {
	return fmt.Sprintf("previsão falhou (%s): %v", e.Kind, e.Err)
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError cria um erro classificado de previsão
func NewForecastError(kind FailureKind, err error) *ForecastError {
	return &ForecastError{Kind: kind, Err: err}
}
