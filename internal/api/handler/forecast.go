package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/internal/usecases/forecasting"
	"github.com/gestorpro/analytics-api/pkg/apiErrors"
	"github.com/gestorpro/analytics-api/pkg/log"
	"github.com/gestorpro/analytics-api/pkg/middleware"
)

// GenerateForecast dispara uma previsão de receita para o cliente. A chave
// de cooldown vem do cabeçalho X-Client-ID; sem ele, do usuário autenticado.
func GenerateForecast(service forecasting.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &domain.ForecastRequest{}
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}
		}

		request.ClientID = r.Header.Get("X-Client-ID")
		if request.ClientID == "" {
			if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
				request.ClientID = strconv.FormatInt(claims.UserID, 10)
			}
		}

		logger.WithFields(log.Fields{
			"client_id":         request.ClientID,
			"periods":           request.PeriodCount,
			"historical_months": request.HistoricalMonths,
		}).Info("forecast: gerando previsão de receita")

		result, err := service.Forecast(r.Context(), request)
		if err != nil {
			writeForecastError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"request_id": result.RequestID,
			"periods":    len(result.Predictions),
		}).Info("forecast: previsão gerada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("forecast: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

func writeForecastError(w http.ResponseWriter, logger log.Logger, err error) {
	var cooldownErr *forecasting.CooldownError
	if errors.As(err, &cooldownErr) {
		w.Header().Set("Retry-After", strconv.Itoa(cooldownErr.RemainingSeconds()))
		apiErrors.WriteError(w, apiErrors.ErrForecastCooldown, cooldownErr.Error(), map[string]any{
			"retry_after_seconds": cooldownErr.RemainingSeconds(),
		})
		return
	}

	if errors.Is(err, forecasting.ErrInvalidPeriodCount) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	if errors.Is(err, forecasting.ErrNoHistory) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	var forecastErr *forecastdomain.ForecastError
	if errors.As(err, &forecastErr) {
		logger.WithError(err).WithField("kind", string(forecastErr.Kind)).Error("forecast: falha no modelo de previsão")

		code := apiErrors.ErrForecastUnknown
		switch forecastErr.Kind {
		case forecastdomain.FailureUnavailable:
			code = apiErrors.ErrForecastUnavailable
		case forecastdomain.FailureRateLimited:
			code = apiErrors.ErrForecastRateLimited
		case forecastdomain.FailureQuota:
			code = apiErrors.ErrForecastQuota
		}

		apiErrors.WriteError(w, code, "Não foi possível gerar a previsão", map[string]any{
			"suggested_actions": forecasting.SuggestedActions(forecastErr.Kind),
		})
		return
	}

	logger.WithError(err).Error("forecast: erro inesperado ao gerar previsão")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar previsão", nil)
}
