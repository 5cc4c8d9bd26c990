package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/internal/usecases/forecasting"
	"github.com/gestorpro/analytics-api/pkg/apiErrors"
)

// stubOrchestrator devolve respostas fixas para o handler
type stubOrchestrator struct {
	result  *domain.ForecastResult
	err     error
	request *domain.ForecastRequest
}

func (s *stubOrchestrator) Forecast(_ context.Context, request *domain.ForecastRequest) (*domain.ForecastResult, error) {
	s.request = request
	return s.result, s.err
}

func TestGenerateForecast_Success(t *testing.T) {
	service := &stubOrchestrator{
		result: &domain.ForecastResult{
			RequestID:   "abc123",
			GeneratedAt: time.Now().UTC(),
			Predictions: []*domain.MonthlyPrediction{
				{Period: "03-2025", MoMChange: 0},
			},
		},
	}

	body := strings.NewReader(`{"periods": 3, "historical_months": 6}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/analytics/forecast", body)
	req.Header.Set("X-Client-ID", "loja-42")
	rec := httptest.NewRecorder()

	GenerateForecast(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// O cabeçalho define a chave de cooldown e o corpo os parâmetros
	require.NotNil(t, service.request)
	assert.Equal(t, "loja-42", service.request.ClientID)
	assert.Equal(t, 3, service.request.PeriodCount)
	assert.Equal(t, 6, service.request.HistoricalMonths)

	var result domain.ForecastResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "abc123", result.RequestID)
}

func TestGenerateForecast_CooldownReturns429(t *testing.T) {
	service := &stubOrchestrator{
		err: &forecasting.CooldownError{Remaining: 7 * time.Second},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/analytics/forecast", nil)
	req.Header.Set("X-Client-ID", "loja-42")
	rec := httptest.NewRecorder()

	GenerateForecast(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "7", rec.Header().Get("Retry-After"))

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrForecastCooldown, apiErr.Code)
}

func TestGenerateForecast_ModelFailureReturnsSuggestedActions(t *testing.T) {
	service := &stubOrchestrator{
		err: forecastdomain.NewForecastError(forecastdomain.FailureRateLimited, assert.AnError),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/analytics/forecast", nil)
	rec := httptest.NewRecorder()

	GenerateForecast(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrForecastRateLimited, apiErr.Code)

	details, ok := apiErr.Details.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, details["suggested_actions"])
}

func TestGenerateForecast_InvalidBody(t *testing.T) {
	service := &stubOrchestrator{}

	req := httptest.NewRequest(http.MethodPost, "/v1/analytics/forecast", strings.NewReader("{invalid"))
	rec := httptest.NewRecorder()

	GenerateForecast(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.request)
}
