package aggregating

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gestorpro/analytics-api/infrastructure/repository/mocks"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/domain"
)

func marchInvoices() []*domain.Invoice {
	customerNew := &domain.Customer{
		ID:        1,
		Name:      "Ótica Central",
		CreatedAt: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
	}
	customerOld := &domain.Customer{
		ID:        2,
		Name:      "Ótica do Bairro",
		CreatedAt: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
	}

	productA := &domain.Product{ID: 1, ModelNumber: "A100", Category: "Armações"}
	productB := &domain.Product{ID: 2, ModelNumber: "B200", Category: "Lentes"}

	return []*domain.Invoice{
		{
			ID:          1,
			CustomerID:  1,
			InvoiceDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(12000),
			Customer:    customerNew,
			Items: []*domain.InvoiceItem{
				{ID: 10, InvoiceID: 1, Quantity: 2, TotalPrice: decimal.NewFromInt(12000), Product: productA},
			},
		},
		{
			ID:          2,
			CustomerID:  2,
			InvoiceDate: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(500),
			Customer:    customerOld,
			Items: []*domain.InvoiceItem{
				{ID: 20, InvoiceID: 2, Quantity: 1, TotalPrice: decimal.NewFromInt(500), Product: productB},
			},
		},
		{
			ID:          3,
			CustomerID:  1,
			InvoiceDate: time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(15000),
			Customer:    customerNew,
			Items: []*domain.InvoiceItem{
				{ID: 30, InvoiceID: 3, Quantity: 1, TotalPrice: decimal.NewFromInt(15000), Product: productA},
			},
		},
	}
}

func TestService_Aggregate_RawMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	// Duas execuções com a mesma entrada devem produzir o mesmo resultado
	mockInvoiceRepo.EXPECT().ListByPeriod(start, end).Return(marchInvoices(), nil).Times(2)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)
	selector := Selector{Year: "2025", Month: "March", Source: domain.SourceRaw}

	first, err := service.Aggregate(selector)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceRaw, first.Source)
	assert.True(t, first.TotalRevenue.Equal(decimal.NewFromInt(27500)))
	assert.Equal(t, 3, first.TotalOrders)
	assert.Equal(t, 4, first.TotalUnits)
	assert.Equal(t, 1, first.NewCustomers)
	assert.Equal(t, 2, first.BulkOrdersCount)
	assert.True(t, first.BulkOrdersAmount.Equal(decimal.NewFromInt(27000)))
	assert.Equal(t, "9166.67", first.AvgOrderValue.String())
	assert.True(t, first.AvgBulkOrderValue.Equal(decimal.NewFromInt(13500)))

	// Ranking de produtos: A100 aparece em duas notas, B200 em uma
	require.Len(t, first.TopProducts, 2)
	assert.Equal(t, "A100", first.TopProducts[0].ModelNumber)
	assert.Equal(t, 2, first.TopProducts[0].OrdersCount)
	assert.True(t, first.TopProducts[0].RealizedRevenue.Equal(decimal.NewFromInt(27000)))
	assert.Equal(t, "B200", first.TopProducts[1].ModelNumber)

	// Ranking de clientes cobre só pedidos em atacado
	require.Len(t, first.TopCustomers, 1)
	assert.Equal(t, int64(1), first.TopCustomers[0].CustomerID)
	assert.Equal(t, 2, first.TopCustomers[0].BulkOrdersCount)
	assert.True(t, first.TopCustomers[0].BulkOrdersAmount.Equal(decimal.NewFromInt(27000)))
	assert.Equal(t, "A100", first.TopCustomers[0].ProductModels)

	second, err := service.Aggregate(selector)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_Aggregate_TieBreaksAreDeterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	// Dois produtos com o mesmo número de notas: desempate pelo modelo
	invoices := []*domain.Invoice{
		{
			ID:          1,
			CustomerID:  1,
			InvoiceDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(100),
			Items: []*domain.InvoiceItem{
				{ID: 10, Quantity: 1, TotalPrice: decimal.NewFromInt(50), Product: &domain.Product{ModelNumber: "Z900", Category: "Lentes"}},
				{ID: 11, Quantity: 1, TotalPrice: decimal.NewFromInt(50), Product: &domain.Product{ModelNumber: "A100", Category: "Armações"}},
			},
		},
	}

	mockInvoiceRepo.EXPECT().ListByPeriod(gomock.Any(), gomock.Any()).Return(invoices, nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	result, err := service.Aggregate(Selector{Year: "2025", Month: "March", Source: domain.SourceRaw})
	require.NoError(t, err)

	require.Len(t, result.TopProducts, 2)
	assert.Equal(t, "A100", result.TopProducts[0].ModelNumber)
	assert.Equal(t, "Z900", result.TopProducts[1].ModelNumber)
}

func TestService_Aggregate_RollupYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	rollups := []*domain.MonthlyRollup{
		{
			Year: 2025, Month: 1,
			TotalRevenue:     decimal.NewFromInt(10000),
			TotalOrders:      10,
			TotalUnits:       20,
			AvgOrderValue:    decimal.NewFromInt(1000),
			NewCustomers:     3,
			BulkOrdersCount:  1,
			BulkOrdersAmount: decimal.NewFromInt(12000),
		},
		{
			Year: 2025, Month: 2,
			TotalRevenue:     decimal.NewFromInt(30000),
			TotalOrders:      20,
			TotalUnits:       40,
			AvgOrderValue:    decimal.NewFromInt(1500),
			NewCustomers:     5,
			BulkOrdersCount:  1,
			BulkOrdersAmount: decimal.NewFromInt(15000),
		},
	}

	mockRollupRepo.EXPECT().GetByYear(2025).Return(rollups, nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	result, err := service.Aggregate(Selector{Year: "2025", Source: domain.SourceRollup})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceRollup, result.Source)
	assert.True(t, result.TotalRevenue.Equal(decimal.NewFromInt(40000)))
	assert.Equal(t, 30, result.TotalOrders)
	assert.Equal(t, 60, result.TotalUnits)
	assert.Equal(t, 8, result.NewCustomers)
	assert.Equal(t, 2, result.BulkOrdersCount)
	assert.True(t, result.BulkOrdersAmount.Equal(decimal.NewFromInt(27000)))

	// Ticket médio anual é a média dos tickets mensais
	assert.True(t, result.AvgOrderValue.Equal(decimal.NewFromInt(1250)))

	// O caminho consolidado não calcula rankings, mas o formato é o mesmo
	assert.Empty(t, result.TopProducts)
	assert.Empty(t, result.TopCustomers)
}

func TestService_Aggregate_RollupFallsBackToRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	// Tabela fato sem o mês pedido: recalcular das linhas cruas
	mockRollupRepo.EXPECT().GetByYearMonth(2025, 3).Return(nil, nil)
	mockInvoiceRepo.EXPECT().ListByPeriod(gomock.Any(), gomock.Any()).Return(marchInvoices(), nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	result, err := service.Aggregate(Selector{Year: "2025", Month: "March"})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceRaw, result.Source)
	assert.Equal(t, 3, result.TotalOrders)
}

func TestService_Aggregate_WeekAlwaysUsesRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	mockInvoiceRepo.EXPECT().ListByPeriod(start, end).Return([]*domain.Invoice{}, nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	result, err := service.Aggregate(Selector{Year: "2025", Month: "March", Week: "1"})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceRaw, result.Source)
	assert.Equal(t, 0, result.TotalOrders)
	assert.True(t, result.AvgBulkOrderValue.IsZero())
}

func TestService_Aggregate_RollupForWeekIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	_, err := service.Aggregate(Selector{Year: "2025", Month: "March", Week: "1", Source: domain.SourceRollup})
	assert.ErrorIs(t, err, ErrSourceUnsupported)
}

func TestService_Aggregate_InvalidSelector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	_, err := service.Aggregate(Selector{Year: "2025", Month: "marco"})
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestService_AvailableMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	mockInvoiceRepo.EXPECT().ListMonths(2025).Return([]int{1, 3, 11}, nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	months, err := service.AvailableMonths("2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"January", "March", "November"}, months)
}

func TestService_MonthlyHistory_FromRollups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	rollups := []*domain.MonthlyRollup{
		{Year: 2025, Month: 1, TotalRevenue: decimal.NewFromInt(10000), TotalOrders: 10, TotalUnits: 20, BulkOrdersAmount: decimal.NewFromInt(12000)},
		{Year: 2025, Month: 2, TotalRevenue: decimal.NewFromInt(15000), TotalOrders: 12, TotalUnits: 24, BulkOrdersAmount: decimal.NewFromInt(13000)},
	}
	mockRollupRepo.EXPECT().GetLastMonths(2).Return(rollups, nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	snapshots, err := service.MonthlyHistory(2)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, "01-2025", snapshots[0].Period)
	assert.Equal(t, "02-2025", snapshots[1].Period)
	assert.True(t, snapshots[1].TotalRevenue.Equal(decimal.NewFromInt(15000)))
}

func TestService_ComputeMonthlyRollup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInvoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	mockRollupRepo := mocks.NewMockMonthlyRollupRepository(ctrl)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	mockInvoiceRepo.EXPECT().ListByPeriod(start, end).Return(marchInvoices(), nil)

	service := NewService(&config.Config{}, mockInvoiceRepo, mockRollupRepo)

	rollup, err := service.ComputeMonthlyRollup(2025, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2025, rollup.Year)
	assert.Equal(t, 3, rollup.Month)
	assert.True(t, rollup.TotalRevenue.Equal(decimal.NewFromInt(27500)))
	assert.Equal(t, 3, rollup.TotalOrders)
	assert.Equal(t, 1, rollup.NewCustomers)
	assert.Equal(t, 2, rollup.BulkOrdersCount)
	assert.True(t, rollup.BulkOrdersAmount.Equal(decimal.NewFromInt(27000)))
}
