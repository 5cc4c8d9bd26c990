package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
	"github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/forecastclient"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/domain"
)

// Predictor é a interface do integrador de previsão consumida pelo
// orquestrador
type Predictor interface {
	PredictRevenue(ctx context.Context, history []*domain.MonthlySnapshot, periods int) (*forecastdomain.ModelForecast, error)
}

type ForecastIntegrator struct {
	cfg    *config.Config
	Client forecastclient.Client
}

func New(cfg *config.Config, client forecastclient.Client) *ForecastIntegrator {
	return &ForecastIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// PredictRevenue monta o prompt com o histórico mensal, consulta o modelo
// e valida o payload antes de devolvê-lo
func (s *ForecastIntegrator) PredictRevenue(ctx context.Context, history []*domain.MonthlySnapshot, periods int) (*forecastdomain.ModelForecast, error) {
	prompt, err := buildPrompt(history, periods)
	if err != nil {
		return nil, forecastdomain.NewForecastError(forecastdomain.FailureUnknown, err)
	}

	forecast, err := s.Client.Predict(ctx, prompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"periods": periods,
			"months":  len(history),
			"error":   err.Error(),
		}).Error("forecast: falha ao consultar o modelo de previsão")
		return nil, err
	}

	if err := validateForecast(forecast, periods); err != nil {
		logrus.WithField("error", err.Error()).Error("forecast: payload inválido devolvido pelo modelo")
		return nil, forecastdomain.NewForecastError(forecastdomain.FailureUnknown, err)
	}

	logrus.WithFields(logrus.Fields{
		"periods":    len(forecast.Predictions),
		"total_pct":  forecast.TotalGrowthPct,
		"insights":   len(forecast.Insights),
		"suggestion": len(forecast.Recommendations),
	}).Debug("forecast: previsão recebida do modelo")

	return forecast, nil
}

func buildPrompt(history []*domain.MonthlySnapshot, periods int) (string, error) {
	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar histórico: %w", err)
	}

	return fmt.Sprintf(`Você é um analista de vendas experiente de uma distribuidora.
Com base no histórico mensal abaixo, preveja a receita dos próximos %d meses.

Regras:
1. Devolva exatamente %d previsões, em ordem cronológica, começando no mês seguinte ao último do histórico.
2. O campo period usa o formato mm-yyyy.
3. predicted_revenue e predicted_bulk_amount nunca são negativos.
4. total_growth_pct é o crescimento percentual entre o primeiro e o último mês previsto.
5. Considere sazonalidade e tendência visíveis no histórico.
6. Escreva insights e recomendações em português, curtos e acionáveis.

Histórico mensal (ordem cronológica):
%s`, periods, periods, string(historyJSON)), nil
}

// validateForecast confere a estrutura mínima do payload: quantidade de
// previsões, formato dos períodos e valores não negativos e finitos
func validateForecast(forecast *forecastdomain.ModelForecast, periods int) error {
	if forecast == nil || len(forecast.Predictions) == 0 {
		return fmt.Errorf("modelo não devolveu previsões")
	}

	if len(forecast.Predictions) != periods {
		return fmt.Errorf("modelo devolveu %d previsões, esperadas %d", len(forecast.Predictions), periods)
	}

	for i, p := range forecast.Predictions {
		if _, err := time.Parse("01-2006", p.Period); err != nil {
			return fmt.Errorf("previsão %d com período inválido: %s", i+1, p.Period)
		}

		if p.PredictedRevenue < 0 || p.PredictedBulkAmount < 0 {
			return fmt.Errorf("previsão %d com valores negativos", i+1)
		}

		if math.IsNaN(p.PredictedRevenue) || math.IsInf(p.PredictedRevenue, 0) {
			return fmt.Errorf("previsão %d com receita não numérica", i+1)
		}
	}

	return nil
}
