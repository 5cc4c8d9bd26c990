package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastRequest é o pedido de previsão recebido do cliente. ClientID é a
// chave usada para o cooldown entre requisições do mesmo cliente.
type ForecastRequest struct {
	PeriodCount      int    `json:"periods"`
	HistoricalMonths int    `json:"historical_months"`
	ClientID         string `json:"-"`
}

// MonthlyPrediction é uma previsão mensal já normalizada, com a variação
// percentual em relação ao mês anterior da sequência.
type MonthlyPrediction struct {
	Period              string          `json:"period"` // mm-yyyy
	PredictedRevenue    decimal.Decimal `json:"predicted_revenue"`
	PredictedBulkAmount decimal.Decimal `json:"predicted_bulk_amount"`
	MoMChange           float64         `json:"mom_change"`
}

// ForecastResult é o resultado de uma previsão bem-sucedida
type ForecastResult struct {
	RequestID       string               `json:"request_id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	Predictions     []*MonthlyPrediction `json:"predictions"`
	TotalGrowth     float64              `json:"total_growth"`
	Insights        []string             `json:"insights"`
	Recommendations []string             `json:"recommendations"`
}

// MonthlySnapshot é o agregado histórico de um mês enviado como contexto
// para o modelo de previsão.
type MonthlySnapshot struct {
	Period           string          `json:"period"` // mm-yyyy
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalOrders      int             `json:"total_orders"`
	TotalUnits       int             `json:"total_units"`
	BulkOrdersAmount decimal.Decimal `json:"bulk_orders_amount"`
}
