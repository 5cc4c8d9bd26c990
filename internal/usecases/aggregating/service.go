package aggregating

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/gestorpro/analytics-api/infrastructure/repository"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/pkg/log"
	"github.com/gestorpro/analytics-api/pkg/utils"
)

// ErrSourceUnsupported indica que a origem pedida não cobre a granularidade
// do seletor (ex: rollup para uma semana)
var ErrSourceUnsupported = errors.New("origem de métricas não suporta a granularidade pedida")

// Service implementa Aggregator combinando as duas origens de métricas:
// linhas cruas e tabela fato mensal.
type Service struct {
	cfg         *config.Config
	invoiceRepo repository.InvoiceRepository
	rollupRepo  repository.MonthlyRollupRepository
	raw         MetricsSource
	rollup      MetricsSource
}

// NewService cria o serviço de agregação de métricas de vendas
func NewService(
	cfg *config.Config,
	invoiceRepo repository.InvoiceRepository,
	rollupRepo repository.MonthlyRollupRepository,
) *Service {
	return &Service{
		cfg:         cfg,
		invoiceRepo: invoiceRepo,
		rollupRepo:  rollupRepo,
		raw:         newRawSource(invoiceRepo),
		rollup:      newRollupSource(rollupRepo),
	}
}

// Aggregate resolve o período, escolhe a origem e calcula as métricas.
// A origem pode ser forçada pelo seletor; sem preferência explícita, meses
// e anos usam a tabela fato quando ela cobre o período e caem para as
// linhas cruas quando não cobre. Semanas sempre usam linhas cruas.
func (s *Service) Aggregate(selector Selector) (*domain.AggregationResult, error) {
	period, err := domain.ResolvePeriod(selector.Year, selector.Month, selector.Week)
	if err != nil {
		return nil, err
	}

	result, err := s.aggregateFromSource(period, selector.Source)
	if err != nil {
		return nil, err
	}

	// Ticket médio de atacado passa pelo filtro de sanidade antes de
	// qualquer arredondamento de exibição
	result.AvgBulkOrderValue = utils.RoundCurrency(
		SanitizeBulkAverage(result.BulkOrdersCount, result.BulkOrdersAmount, result.TotalOrders),
	)

	result.TotalRevenue = utils.RoundCurrency(result.TotalRevenue)
	result.AvgOrderValue = utils.RoundCurrency(result.AvgOrderValue)
	result.BulkOrdersAmount = utils.RoundCurrency(result.BulkOrdersAmount)

	return result, nil
}

func (s *Service) aggregateFromSource(period *domain.Period, source string) (*domain.AggregationResult, error) {
	// Sem preferência explícita: semanas usam linhas cruas, meses e anos
	// tentam a tabela fato primeiro
	if source == "" {
		if period.Granularity == domain.GranularityWeek {
			return s.raw.Aggregate(period)
		}
		result, err := s.rollup.Aggregate(period)
		if errors.Is(err, ErrNoRollupData) {
			return s.raw.Aggregate(period)
		}
		return result, err
	}

	src, err := s.sourceFor(source)
	if err != nil {
		return nil, err
	}

	if src.Capabilities().SupportsRollup {
		if period.Granularity == domain.GranularityWeek {
			return nil, ErrSourceUnsupported
		}
		result, err := src.Aggregate(period)
		if errors.Is(err, ErrNoRollupData) {
			log.L.WithFields(log.Fields{
				"granularity": period.Granularity,
				"start_date":  period.StartDate.Format(time.DateOnly),
			}).Warn("Tabela fato não cobre o período pedido, recalculando das linhas cruas")
			return s.raw.Aggregate(period)
		}
		return result, err
	}

	return src.Aggregate(period)
}

// sourceFor resolve o nome de origem pedido para a estratégia que declara
// cobrir esse caminho de agregação
func (s *Service) sourceFor(source string) (MetricsSource, error) {
	for _, src := range []MetricsSource{s.raw, s.rollup} {
		caps := src.Capabilities()
		if source == domain.SourceRaw && caps.SupportsRaw {
			return src, nil
		}
		if source == domain.SourceRollup && caps.SupportsRollup {
			return src, nil
		}
	}
	return nil, errors.Wrapf(ErrSourceUnsupported, "origem desconhecida: %s", source)
}

// AvailableYears retorna os anos com notas registradas, em ordem decrescente
func (s *Service) AvailableYears() ([]string, error) {
	years, err := s.invoiceRepo.ListYears()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anos disponíveis: %w", err)
	}
	return years, nil
}

// AvailableMonths retorna os nomes dos meses com notas no ano informado
func (s *Service) AvailableMonths(year string) ([]string, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y <= 0 {
		return nil, domain.ErrInvalidYear
	}

	months, err := s.invoiceRepo.ListMonths(y)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar meses disponíveis: %w", err)
	}

	names := make([]string, 0, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			names = append(names, domain.MonthNames[m-1])
		}
	}

	return names, nil
}

// AvailableWeeks retorna as semanas válidas do mês, puramente pelo
// calendário
func (s *Service) AvailableWeeks(year, month string) ([]int, error) {
	return domain.AvailableWeeks(year, month)
}

// MonthlyHistory monta os agregados mensais mais recentes em ordem
// cronológica. Usa a tabela fato quando populada; caso contrário recalcula
// cada mês das linhas cruas.
func (s *Service) MonthlyHistory(months int) ([]*domain.MonthlySnapshot, error) {
	if months <= 0 {
		return []*domain.MonthlySnapshot{}, nil
	}

	rollups, err := s.rollupRepo.GetLastMonths(months)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico consolidado: %w", err)
	}

	if len(rollups) > 0 {
		return SnapshotsFromRollups(rollups), nil
	}

	// Sem tabela fato: recalcular cada mês terminando no mês corrente
	snapshots := make([]*domain.MonthlySnapshot, 0, months)
	now := time.Now()

	for i := months - 1; i >= 0; i-- {
		ref := now.AddDate(0, -i, 0)
		period := &domain.Period{
			StartDate:   time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC),
			Granularity: domain.GranularityMonth,
		}

		result, err := s.raw.Aggregate(period)
		if err != nil {
			return nil, fmt.Errorf("erro ao agregar histórico de %s: %w", monthLabel(ref.Year(), ref.Month()), err)
		}

		snapshots = append(snapshots, &domain.MonthlySnapshot{
			Period:           monthLabel(ref.Year(), ref.Month()),
			TotalRevenue:     result.TotalRevenue,
			TotalOrders:      result.TotalOrders,
			TotalUnits:       result.TotalUnits,
			BulkOrdersAmount: result.BulkOrdersAmount,
		})
	}

	return snapshots, nil
}

// ComputeMonthlyRollup recalcula a consolidação de um mês a partir das
// linhas cruas. Usado pelo job de sincronização da tabela fato.
func (s *Service) ComputeMonthlyRollup(year int, month time.Month) (*domain.MonthlyRollup, error) {
	period := &domain.Period{
		StartDate:   time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC),
		Granularity: domain.GranularityMonth,
	}

	result, err := s.raw.Aggregate(period)
	if err != nil {
		return nil, fmt.Errorf("erro ao recalcular consolidação de %s: %w", monthLabel(year, month), err)
	}

	return &domain.MonthlyRollup{
		Year:             year,
		Month:            int(month),
		TotalRevenue:     utils.RoundCurrency(result.TotalRevenue),
		TotalOrders:      result.TotalOrders,
		TotalUnits:       result.TotalUnits,
		AvgOrderValue:    utils.RoundCurrency(result.AvgOrderValue),
		NewCustomers:     result.NewCustomers,
		BulkOrdersCount:  result.BulkOrdersCount,
		BulkOrdersAmount: utils.RoundCurrency(result.BulkOrdersAmount),
	}, nil
}
