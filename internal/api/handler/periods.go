package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
	"github.com/gestorpro/analytics-api/pkg/apiErrors"
	"github.com/gestorpro/analytics-api/pkg/log"
)

// GetAvailableYears retorna os anos com notas registradas
func GetAvailableYears(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		years, err := service.AvailableYears()
		if err != nil {
			logger.WithError(err).Error("periods: erro ao buscar anos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar anos disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]string{"years": years}); err != nil {
			logger.WithError(err).Error("periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetAvailableMonths retorna os nomes dos meses com notas no ano informado
func GetAvailableMonths(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year := r.URL.Query().Get("year")
		if year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o ano no parâmetro year", nil)
			return
		}

		months, err := service.AvailableMonths(year)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidYear) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
				return
			}

			logger.WithError(err).WithField("year", year).Error("periods: erro ao buscar meses disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar meses disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]string{"months": months}); err != nil {
			logger.WithError(err).Error("periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetAvailableWeeks retorna as semanas válidas do mês, derivadas do
// calendário
func GetAvailableWeeks(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year := r.URL.Query().Get("year")
		month := r.URL.Query().Get("month")
		if year == "" || month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar ano e mês nos parâmetros", nil)
			return
		}

		weeks, err := service.AvailableWeeks(year, month)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidYear) || errors.Is(err, domain.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"year":  year,
				"month": month,
			}).Error("periods: erro ao calcular semanas disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular semanas disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]int{"weeks": weeks}); err != nil {
			logger.WithError(err).Error("periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
