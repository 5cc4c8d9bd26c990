package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
	"github.com/gestorpro/analytics-api/pkg/apiErrors"
	"github.com/gestorpro/analytics-api/pkg/log"
)

// GetMetrics calcula as métricas de vendas do período selecionado.
// Parâmetros: year (obrigatório), month (nome canônico), week (1-5) e
// source (raw ou rollup) para forçar a origem da agregação.
func GetMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selector := aggregating.Selector{
			Year:   r.URL.Query().Get("year"),
			Month:  r.URL.Query().Get("month"),
			Week:   r.URL.Query().Get("week"),
			Source: r.URL.Query().Get("source"),
		}

		if selector.Year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o ano no parâmetro year", nil)
			return
		}

		logger.WithFields(log.Fields{
			"year":   selector.Year,
			"month":  selector.Month,
			"week":   selector.Week,
			"source": selector.Source,
		}).Info("metrics: calculando métricas do período")

		result, err := service.Aggregate(selector)
		if err != nil {
			writeAggregationError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"granularity":  result.Period.Granularity,
			"source":       result.Source,
			"total_orders": result.TotalOrders,
		}).Info("metrics: métricas calculadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("metrics: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

func writeAggregationError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrInvalidWeek):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

	case errors.Is(err, aggregating.ErrSourceUnsupported):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logger.WithError(err).Error("metrics: erro ao calcular métricas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas do período", nil)
	}
}
