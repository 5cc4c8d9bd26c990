package forecastclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"

	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
	"github.com/gestorpro/analytics-api/internal/config"
)

// Client é o cliente do modelo externo de previsão
type Client interface {
	Predict(ctx context.Context, prompt string) (*forecastdomain.ModelForecast, error)
}

type OpenAIClient struct {
	Cfg    *config.Config
	client *openai.Client
}

func NewClient(cfg *config.Config) Client {
	client := openai.NewClient(option.WithAPIKey(cfg.Forecast.APIKey))
	return &OpenAIClient{
		Cfg:    cfg,
		client: &client,
	}
}

// Predict envia o prompt com saída estruturada e devolve o payload do
// modelo. Erros da API são classificados antes de subir.
func (c *OpenAIClient) Predict(ctx context.Context, prompt string) (*forecastdomain.ModelForecast, error) {
	schemaMap, err := forecastSchema()
	if err != nil {
		return nil, forecastdomain.NewForecastError(forecastdomain.FailureUnknown, err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.Cfg.Forecast.Model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "revenue_forecast",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("Previsão de receita mensal com insights e recomendações"),
				},
			},
		},
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return nil, classifyError(err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, forecastdomain.NewForecastError(
			forecastdomain.FailureUnknown,
			fmt.Errorf("resposta vazia do modelo"),
		)
	}

	var forecast forecastdomain.ModelForecast
	if err := json.Unmarshal([]byte(content), &forecast); err != nil {
		return nil, forecastdomain.NewForecastError(
			forecastdomain.FailureUnknown,
			fmt.Errorf("erro ao interpretar resposta do modelo: %w", err),
		)
	}

	return &forecast, nil
}

// forecastSchema gera o JSON schema da saída estruturada a partir do
// struct Go
func forecastSchema() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var v forecastdomain.ModelForecast
	schemaJSON, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar schema: %w", err)
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("erro ao converter schema para mapa: %w", err)
	}

	return schemaMap, nil
}

// classifyError traduz erros da API do modelo para as classes de falha do
// domínio. Sem status HTTP (timeout, rede) a falha é de indisponibilidade.
func classifyError(err error) error {
	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		return forecastdomain.NewForecastError(forecastdomain.FailureUnavailable, err)
	}

	switch {
	case apierr.StatusCode == 429 && apierr.Code == "insufficient_quota":
		return forecastdomain.NewForecastError(forecastdomain.FailureQuota, err)
	case apierr.StatusCode == 429:
		return forecastdomain.NewForecastError(forecastdomain.FailureRateLimited, err)
	case apierr.StatusCode >= 500:
		return forecastdomain.NewForecastError(forecastdomain.FailureUnavailable, err)
	default:
		return forecastdomain.NewForecastError(forecastdomain.FailureUnknown, err)
	}
}
