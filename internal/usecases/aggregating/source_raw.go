package aggregating

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gestorpro/analytics-api/infrastructure/repository"
	"github.com/gestorpro/analytics-api/internal/domain"
	"github.com/gestorpro/analytics-api/pkg/utils"
)

// rawSource agrega diretamente sobre as notas e linhas do período, usando
// o pipeline de duas fases: atribuição por nota e só depois o agrupamento.
type rawSource struct {
	invoiceRepo repository.InvoiceRepository
}

func newRawSource(invoiceRepo repository.InvoiceRepository) *rawSource {
	return &rawSource{invoiceRepo: invoiceRepo}
}

func (s *rawSource) Capabilities() SourceCapabilities {
	return SourceCapabilities{SupportsRaw: true}
}

func (s *rawSource) Aggregate(period *domain.Period) (*domain.AggregationResult, error) {
	invoices, err := s.invoiceRepo.ListByPeriod(period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar notas do período: %w", err)
	}

	result := &domain.AggregationResult{
		Period:           period,
		Source:           domain.SourceRaw,
		TotalRevenue:     decimal.Zero,
		AvgOrderValue:    decimal.Zero,
		BulkOrdersAmount: decimal.Zero,
		TopProducts:      make([]*domain.ProductRanking, 0),
		TopCustomers:     make([]*domain.CustomerRanking, 0),
	}

	if len(invoices) == 0 {
		return result, nil
	}

	newCustomerIDs := make(map[int64]struct{})

	for _, invoice := range invoices {
		result.TotalRevenue = result.TotalRevenue.Add(invoice.TotalAmount)
		result.TotalOrders++

		for _, item := range invoice.Items {
			result.TotalUnits += item.Quantity
		}

		// Cliente novo: created_at no mesmo mês da nota, não do início do
		// período. A definição é relativa ao mês de cada nota.
		if invoice.Customer != nil && utils.SameYearMonth(invoice.Customer.CreatedAt, invoice.InvoiceDate) {
			newCustomerIDs[invoice.CustomerID] = struct{}{}
		}

		if invoice.TotalAmount.GreaterThanOrEqual(domain.BulkOrderThreshold) {
			result.BulkOrdersCount++
			result.BulkOrdersAmount = result.BulkOrdersAmount.Add(invoice.TotalAmount)
		}
	}

	result.NewCustomers = len(newCustomerIDs)
	result.AvgOrderValue = result.TotalRevenue.Div(decimal.NewFromInt(int64(result.TotalOrders)))

	result.TopProducts = topProducts(invoices)
	result.TopCustomers = topCustomers(invoices)

	return result, nil
}

// productAccumulator acumula as métricas de um produto durante a fase de
// redução
type productAccumulator struct {
	modelNumber string
	category    string
	invoices    map[int64]struct{}
	units       int
	revenue     decimal.Decimal
}

// topProducts agrupa as tuplas atribuídas por modelo e categoria e monta o
// ranking por quantidade de notas distintas. Empates são resolvidos pelo
// número do modelo em ordem crescente, mantendo o resultado determinístico.
func topProducts(invoices []*domain.Invoice) []*domain.ProductRanking {
	attributed := AttributeInvoices(invoices)

	accumulators := make(map[string]*productAccumulator)
	keys := make([]string, 0)

	for _, entry := range attributed {
		if entry.Item.Product == nil {
			continue
		}

		key := entry.Item.Product.ModelNumber + "|" + entry.Item.Product.Category

		acc, exists := accumulators[key]
		if !exists {
			acc = &productAccumulator{
				modelNumber: entry.Item.Product.ModelNumber,
				category:    entry.Item.Product.Category,
				invoices:    make(map[int64]struct{}),
				revenue:     decimal.Zero,
			}
			accumulators[key] = acc
			keys = append(keys, key)
		}

		acc.invoices[entry.InvoiceID] = struct{}{}
		acc.units += entry.Item.Quantity
		acc.revenue = acc.revenue.Add(entry.RealizedRevenue)
	}

	rankings := make([]*domain.ProductRanking, 0, len(keys))
	for _, key := range keys {
		acc := accumulators[key]
		rankings = append(rankings, &domain.ProductRanking{
			ModelNumber:     acc.modelNumber,
			Category:        acc.category,
			OrdersCount:     len(acc.invoices),
			UnitsSold:       acc.units,
			RealizedRevenue: utils.RoundCurrency(acc.revenue),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].OrdersCount != rankings[j].OrdersCount {
			return rankings[i].OrdersCount > rankings[j].OrdersCount
		}
		return rankings[i].ModelNumber < rankings[j].ModelNumber
	})

	if len(rankings) > domain.TopRankingSize {
		rankings = rankings[:domain.TopRankingSize]
	}

	return rankings
}

// customerAccumulator acumula os pedidos em atacado de um cliente
type customerAccumulator struct {
	customerID int64
	name       string
	count      int
	amount     decimal.Decimal
	models     map[string]struct{}
}

// topCustomers monta o ranking de clientes restrito a pedidos em atacado,
// ordenado pelo montante em ordem decrescente. Empates são resolvidos pelo
// nome do cliente em ordem crescente.
func topCustomers(invoices []*domain.Invoice) []*domain.CustomerRanking {
	accumulators := make(map[int64]*customerAccumulator)
	ids := make([]int64, 0)

	for _, invoice := range invoices {
		if invoice.TotalAmount.LessThan(domain.BulkOrderThreshold) {
			continue
		}

		acc, exists := accumulators[invoice.CustomerID]
		if !exists {
			name := ""
			if invoice.Customer != nil {
				name = invoice.Customer.Name
			}
			acc = &customerAccumulator{
				customerID: invoice.CustomerID,
				name:       name,
				amount:     decimal.Zero,
				models:     make(map[string]struct{}),
			}
			accumulators[invoice.CustomerID] = acc
			ids = append(ids, invoice.CustomerID)
		}

		acc.count++
		acc.amount = acc.amount.Add(invoice.TotalAmount)

		for _, item := range invoice.Items {
			if item.Product != nil {
				acc.models[item.Product.ModelNumber] = struct{}{}
			}
		}
	}

	rankings := make([]*domain.CustomerRanking, 0, len(ids))
	for _, id := range ids {
		acc := accumulators[id]

		models := make([]string, 0, len(acc.models))
		for model := range acc.models {
			models = append(models, model)
		}
		sort.Strings(models)

		average := decimal.Zero
		if acc.count > 0 {
			average = acc.amount.Div(decimal.NewFromInt(int64(acc.count)))
		}

		rankings = append(rankings, &domain.CustomerRanking{
			CustomerID:            acc.customerID,
			CustomerName:          acc.name,
			BulkOrdersCount:       acc.count,
			BulkOrdersAmount:      acc.amount,
			AverageBulkOrderValue: utils.RoundCurrency(average),
			ProductModels:         strings.Join(models, ","),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		cmp := rankings[i].BulkOrdersAmount.Cmp(rankings[j].BulkOrdersAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return rankings[i].CustomerName < rankings[j].CustomerName
	})

	if len(rankings) > domain.TopRankingSize {
		rankings = rankings[:domain.TopRankingSize]
	}

	return rankings
}
