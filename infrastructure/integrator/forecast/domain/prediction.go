package domain

// ModelPrediction é uma previsão mensal exatamente como devolvida pelo
// modelo, antes de qualquer normalização
type ModelPrediction struct {
	Period              string  `json:"period" jsonschema_description:"Mês previsto no formato mm-yyyy"`
	PredictedRevenue    float64 `json:"predicted_revenue" jsonschema_description:"Receita total prevista para o mês"`
	PredictedBulkAmount float64 `json:"predicted_bulk_amount" jsonschema_description:"Valor previsto em pedidos de atacado para o mês"`
}

// ModelForecast é o payload estruturado devolvido pelo modelo de previsão
type ModelForecast struct {
	Predictions     []ModelPrediction `json:"predictions" jsonschema_description:"Previsões mensais em ordem cronológica, uma por mês pedido"`
	TotalGrowthPct  float64           `json:"total_growth_pct" jsonschema_description:"Crescimento percentual da receita entre o primeiro e o último mês previsto"`
	Insights        []string          `json:"insights" jsonschema_description:"Observações sobre tendências identificadas no histórico"`
	Recommendations []string          `json:"recommendations" jsonschema_description:"Ações comerciais sugeridas a partir das previsões"`
}
