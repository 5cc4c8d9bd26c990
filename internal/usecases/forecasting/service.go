package forecasting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/analytics-api/infrastructure/integrator/forecast"
	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
	"github.com/gestorpro/analytics-api/pkg/log"
	"github.com/gestorpro/analytics-api/pkg/utils"
)

const (
	defaultPeriodCount      = 3
	defaultHistoricalMonths = 12
)

// Orchestrator é a interface do orquestrador de previsões
type Orchestrator interface {
	Forecast(ctx context.Context, request *domain.ForecastRequest) (*domain.ForecastResult, error)
}

// Service coordena cooldown, coleta de histórico, chamada ao modelo e
// normalização do resultado
type Service struct {
	cfg        *config.Config
	aggregator aggregating.Aggregator
	predictor  forecast.Predictor
	cooldown   *CooldownGuard
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	aggregator aggregating.Aggregator,
	predictor forecast.Predictor,
) Orchestrator {
	return &Service{
		cfg:        cfg,
		aggregator: aggregator,
		predictor:  predictor,
		cooldown:   NewCooldownGuard(time.Duration(cfg.Forecast.CooldownSeconds) * time.Second),
		now:        time.Now,
	}
}

// Forecast gera uma previsão de receita para o cliente. O cooldown é
// verificado antes de qualquer chamada externa e só avança quando a
// previsão é concluída com sucesso.
func (s *Service) Forecast(ctx context.Context, request *domain.ForecastRequest) (*domain.ForecastResult, error) {
	periods, months, err := s.normalizeRequest(request)
	if err != nil {
		return nil, err
	}

	clientKey := request.ClientID
	if clientKey == "" {
		clientKey = "default"
	}

	if remaining, ok := s.cooldown.Check(clientKey); !ok {
		log.ForContext(ctx).WithFields(log.Fields{
			"client_id":         clientKey,
			"remaining_seconds": remaining.Seconds(),
		}).Info("Previsão bloqueada pelo cooldown")
		return nil, &CooldownError{Remaining: remaining}
	}

	history, err := s.aggregator.MonthlyHistory(months)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNoHistory
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Forecast.RequestTimeout)
	defer cancel()

	modelForecast, err := s.predictor.PredictRevenue(callCtx, history, periods)
	if err != nil {
		// Falha não consome o cooldown do cliente
		return nil, err
	}

	requestID, err := utils.NewRequestID()
	if err != nil {
		return nil, err
	}

	result := s.buildResult(requestID, modelForecast)
	s.cooldown.MarkSuccess(clientKey)

	log.ForContext(ctx).WithFields(log.Fields{
		"request_id": result.RequestID,
		"client_id":  clientKey,
		"periods":    len(result.Predictions),
	}).Info("Previsão gerada com sucesso")

	return result, nil
}

// normalizeRequest aplica os padrões e limites configurados ao pedido
func (s *Service) normalizeRequest(request *domain.ForecastRequest) (periods, months int, err error) {
	periods = request.PeriodCount
	if periods == 0 {
		periods = defaultPeriodCount
	}
	if periods < 1 || periods > s.cfg.Forecast.MaxPeriods {
		return 0, 0, ErrInvalidPeriodCount
	}

	months = request.HistoricalMonths
	if months <= 0 {
		months = defaultHistoricalMonths
	}
	if months > s.cfg.Forecast.MaxHistoricalMonths {
		months = s.cfg.Forecast.MaxHistoricalMonths
	}

	return periods, months, nil
}

// buildResult normaliza o payload do modelo: valores em decimal com duas
// casas, variação mês a mês recalculada no servidor (zero para o primeiro
// mês) e crescimento total do primeiro ao último mês previsto.
func (s *Service) buildResult(requestID string, modelForecast *forecastdomain.ModelForecast) *domain.ForecastResult {
	predictions := make([]*domain.MonthlyPrediction, 0, len(modelForecast.Predictions))

	var prev decimal.Decimal
	for i, p := range modelForecast.Predictions {
		revenue := decimal.NewFromFloat(p.PredictedRevenue)

		momChange := 0.0
		if i > 0 {
			momChange = utils.RoundWithTwoDecimalPlace(utils.PercentChange(prev, revenue))
		}

		predictions = append(predictions, &domain.MonthlyPrediction{
			Period:              p.Period,
			PredictedRevenue:    utils.RoundCurrency(revenue),
			PredictedBulkAmount: utils.RoundCurrency(decimal.NewFromFloat(p.PredictedBulkAmount)),
			MoMChange:           momChange,
		})

		prev = revenue
	}

	// Crescimento total recalculado no servidor para manter a coerência
	// com as previsões mensais, independentemente do valor do modelo
	totalGrowth := 0.0
	if len(predictions) > 1 {
		first := predictions[0].PredictedRevenue
		last := predictions[len(predictions)-1].PredictedRevenue
		totalGrowth = utils.RoundWithTwoDecimalPlace(utils.PercentChange(first, last))
	}

	return &domain.ForecastResult{
		RequestID:       requestID,
		GeneratedAt:     s.now().UTC(),
		Predictions:     predictions,
		TotalGrowth:     totalGrowth,
		Insights:        modelForecast.Insights,
		Recommendations: modelForecast.Recommendations,
	}
}
