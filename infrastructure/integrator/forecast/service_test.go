package forecast

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/domain"
)

// stubClient devolve um payload fixo sem tocar a API externa
type stubClient struct {
	forecast *forecastdomain.ModelForecast
	err      error
	prompt   string
}

func (c *stubClient) Predict(_ context.Context, prompt string) (*forecastdomain.ModelForecast, error) {
	c.prompt = prompt
	return c.forecast, c.err
}

func TestPredictRevenue_ValidPayload(t *testing.T) {
	client := &stubClient{
		forecast: &forecastdomain.ModelForecast{
			Predictions: []forecastdomain.ModelPrediction{
				{Period: "03-2025", PredictedRevenue: 1000, PredictedBulkAmount: 400},
				{Period: "04-2025", PredictedRevenue: 1100, PredictedBulkAmount: 420},
			},
		},
	}

	integrator := New(&config.Config{}, client)

	history := []*domain.MonthlySnapshot{
		{Period: "01-2025", TotalRevenue: decimal.NewFromInt(900)},
		{Period: "02-2025", TotalRevenue: decimal.NewFromInt(950)},
	}

	result, err := integrator.PredictRevenue(context.Background(), history, 2)
	require.NoError(t, err)
	assert.Len(t, result.Predictions, 2)

	// O prompt carrega o histórico e a quantidade de meses pedida
	assert.True(t, strings.Contains(client.prompt, "01-2025"))
	assert.True(t, strings.Contains(client.prompt, "próximos 2 meses"))
}

func TestPredictRevenue_RejectsWrongCount(t *testing.T) {
	client := &stubClient{
		forecast: &forecastdomain.ModelForecast{
			Predictions: []forecastdomain.ModelPrediction{
				{Period: "03-2025", PredictedRevenue: 1000},
			},
		},
	}

	integrator := New(&config.Config{}, client)

	_, err := integrator.PredictRevenue(context.Background(), []*domain.MonthlySnapshot{{Period: "01-2025"}}, 3)
	require.Error(t, err)

	var forecastErr *forecastdomain.ForecastError
	require.ErrorAs(t, err, &forecastErr)
	assert.Equal(t, forecastdomain.FailureUnknown, forecastErr.Kind)
}

func TestPredictRevenue_PropagatesClassifiedErrors(t *testing.T) {
	client := &stubClient{
		err: forecastdomain.NewForecastError(forecastdomain.FailureQuota, assert.AnError),
	}

	integrator := New(&config.Config{}, client)

	_, err := integrator.PredictRevenue(context.Background(), []*domain.MonthlySnapshot{{Period: "01-2025"}}, 1)
	require.Error(t, err)

	var forecastErr *forecastdomain.ForecastError
	require.ErrorAs(t, err, &forecastErr)
	assert.Equal(t, forecastdomain.FailureQuota, forecastErr.Kind)
}

func TestValidateForecast(t *testing.T) {
	tests := []struct {
		name     string
		forecast *forecastdomain.ModelForecast
		periods  int
		wantErr  bool
	}{
		{
			name:    "payload nulo",
			periods: 1,
			wantErr: true,
		},
		{
			name:     "sem previsões",
			forecast: &forecastdomain.ModelForecast{},
			periods:  1,
			wantErr:  true,
		},
		{
			name: "período fora do formato mm-yyyy",
			forecast: &forecastdomain.ModelForecast{
				Predictions: []forecastdomain.ModelPrediction{{Period: "2025-03", PredictedRevenue: 100}},
			},
			periods: 1,
			wantErr: true,
		},
		{
			name: "receita negativa",
			forecast: &forecastdomain.ModelForecast{
				Predictions: []forecastdomain.ModelPrediction{{Period: "03-2025", PredictedRevenue: -1}},
			},
			periods: 1,
			wantErr: true,
		},
		{
			name: "payload válido",
			forecast: &forecastdomain.ModelForecast{
				Predictions: []forecastdomain.ModelPrediction{{Period: "03-2025", PredictedRevenue: 100}},
			},
			periods: 1,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateForecast(tt.forecast, tt.periods)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
