package aggregating

import (
	"time"

	"github.com/gestorpro/analytics-api/internal/domain"
)

// Selector é o seletor de período e origem recebido da API. Year é
// obrigatório; Month e Week estreitam a granularidade; Source força o
// caminho de agregação (raw ou rollup) quando informado.
type Selector struct {
	Year   string
	Month  string
	Week   string
	Source string
}

// Aggregator é a interface do serviço de métricas de vendas
type Aggregator interface {
	// Aggregate calcula todas as métricas do período selecionado
	Aggregate(selector Selector) (*domain.AggregationResult, error)

	// AvailableYears retorna os anos com dados, em ordem decrescente
	AvailableYears() ([]string, error)

	// AvailableMonths retorna os nomes dos meses com dados no ano
	AvailableMonths(year string) ([]string, error)

	// AvailableWeeks retorna as semanas válidas do mês, derivadas apenas
	// do calendário, independentemente de existirem dados
	AvailableWeeks(year, month string) ([]int, error)

	// MonthlyHistory retorna os agregados dos últimos meses, em ordem
	// cronológica, para servir de contexto às previsões
	MonthlyHistory(months int) ([]*domain.MonthlySnapshot, error)
}

// RollupBuilder recalcula linhas da tabela fato mensal a partir das
// linhas cruas. Usado pelo job de sincronização.
type RollupBuilder interface {
	ComputeMonthlyRollup(year int, month time.Month) (*domain.MonthlyRollup, error)
}

// SourceCapabilities descreve o que uma origem de métricas sabe calcular
type SourceCapabilities struct {
	SupportsRaw    bool
	SupportsRollup bool
}

// MetricsSource é uma estratégia de agregação para um período resolvido.
// As duas implementações (linhas cruas e tabela fato mensal) produzem o
// mesmo formato de resultado e são selecionadas por requisição.
type MetricsSource interface {
	Capabilities() SourceCapabilities
	Aggregate(period *domain.Period) (*domain.AggregationResult, error)
}
