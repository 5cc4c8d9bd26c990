package aggregating

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/analytics-api/infrastructure/repository"
	"github.com/gestorpro/analytics-api/internal/domain"
)

// ErrNoRollupData indica que a tabela fato não cobre o período pedido; o
// serviço usa esse sinal para recorrer ao caminho de linhas cruas.
var ErrNoRollupData = errors.New("sem dados consolidados para o período")

// rollupSource agrega a partir da tabela fato de consolidações mensais.
// Cobre apenas granularidade mensal e anual; semanas exigem linhas cruas.
type rollupSource struct {
	rollupRepo repository.MonthlyRollupRepository
}

func newRollupSource(rollupRepo repository.MonthlyRollupRepository) *rollupSource {
	return &rollupSource{rollupRepo: rollupRepo}
}

func (s *rollupSource) Capabilities() SourceCapabilities {
	return SourceCapabilities{SupportsRollup: true}
}

func (s *rollupSource) Aggregate(period *domain.Period) (*domain.AggregationResult, error) {
	switch period.Granularity {
	case domain.GranularityMonth:
		return s.aggregateMonth(period)
	case domain.GranularityYear:
		return s.aggregateYear(period)
	default:
		return nil, fmt.Errorf("granularidade %q não é suportada pela tabela fato", period.Granularity)
	}
}

func (s *rollupSource) aggregateMonth(period *domain.Period) (*domain.AggregationResult, error) {
	rollup, err := s.rollupRepo.GetByYearMonth(period.StartDate.Year(), int(period.StartDate.Month()))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar consolidação mensal: %w", err)
	}

	if rollup == nil {
		return nil, ErrNoRollupData
	}

	return s.resultFromRollups(period, []*domain.MonthlyRollup{rollup}), nil
}

func (s *rollupSource) aggregateYear(period *domain.Period) (*domain.AggregationResult, error) {
	rollups, err := s.rollupRepo.GetByYear(period.StartDate.Year())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar consolidações do ano: %w", err)
	}

	if len(rollups) == 0 {
		return nil, ErrNoRollupData
	}

	return s.resultFromRollups(period, rollups), nil
}

// resultFromRollups combina linhas da tabela fato: somas para receita,
// pedidos, unidades e atacado; média simples para o ticket médio mensal.
// Os rankings exigem linhas cruas e ficam vazios neste caminho — o formato
// do resultado é o mesmo do caminho cru.
func (s *rollupSource) resultFromRollups(period *domain.Period, rollups []*domain.MonthlyRollup) *domain.AggregationResult {
	result := &domain.AggregationResult{
		Period:           period,
		Source:           domain.SourceRollup,
		TotalRevenue:     decimal.Zero,
		AvgOrderValue:    decimal.Zero,
		BulkOrdersAmount: decimal.Zero,
		TopProducts:      make([]*domain.ProductRanking, 0),
		TopCustomers:     make([]*domain.CustomerRanking, 0),
	}

	avgSum := decimal.Zero

	for _, rollup := range rollups {
		result.TotalRevenue = result.TotalRevenue.Add(rollup.TotalRevenue)
		result.TotalOrders += rollup.TotalOrders
		result.TotalUnits += rollup.TotalUnits
		result.NewCustomers += rollup.NewCustomers
		result.BulkOrdersCount += rollup.BulkOrdersCount
		result.BulkOrdersAmount = result.BulkOrdersAmount.Add(rollup.BulkOrdersAmount)
		avgSum = avgSum.Add(rollup.AvgOrderValue)
	}

	if len(rollups) > 0 {
		result.AvgOrderValue = avgSum.Div(decimal.NewFromInt(int64(len(rollups))))
	}

	return result
}

// SnapshotsFromRollups converte linhas da tabela fato em agregados mensais
// usados como contexto histórico nas previsões.
func SnapshotsFromRollups(rollups []*domain.MonthlyRollup) []*domain.MonthlySnapshot {
	snapshots := make([]*domain.MonthlySnapshot, 0, len(rollups))
	for _, rollup := range rollups {
		snapshots = append(snapshots, &domain.MonthlySnapshot{
			Period:           rollup.PeriodLabel(),
			TotalRevenue:     rollup.TotalRevenue,
			TotalOrders:      rollup.TotalOrders,
			TotalUnits:       rollup.TotalUnits,
			BulkOrdersAmount: rollup.BulkOrdersAmount,
		})
	}
	return snapshots
}

// monthLabel formata (ano, mês) como mm-yyyy
func monthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("01-2006")
}
