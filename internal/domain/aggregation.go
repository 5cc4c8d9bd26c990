package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BulkOrderThreshold é o valor mínimo de uma nota para que ela seja tratada
// como pedido em atacado (proxy para compras grandes).
var BulkOrderThreshold = decimal.NewFromInt(10000)

// TopRankingSize é o tamanho dos rankings de produtos e clientes
const TopRankingSize = 10

// Origem dos dados usados na agregação
const (
	SourceRaw    = "raw"
	SourceRollup = "rollup"
)

// AggregationResult reúne todas as métricas calculadas para um período.
// É derivado por requisição e nunca persistido pelo núcleo.
type AggregationResult struct {
	Period            *Period            `json:"period"`
	Source            string             `json:"source"`
	TotalRevenue      decimal.Decimal    `json:"total_revenue"`
	TotalOrders       int                `json:"total_orders"`
	TotalUnits        int                `json:"total_units"`
	AvgOrderValue     decimal.Decimal    `json:"avg_order_value"`
	NewCustomers      int                `json:"new_customers"`
	BulkOrdersCount   int                `json:"bulk_orders_count"`
	BulkOrdersAmount  decimal.Decimal    `json:"bulk_orders_amount"`
	AvgBulkOrderValue decimal.Decimal    `json:"avg_bulk_order_value"`
	TopProducts       []*ProductRanking  `json:"top_products"`
	TopCustomers      []*CustomerRanking `json:"top_customers"`
}

// ProductRanking é uma posição do ranking de produtos do período.
// RealizedRevenue vem da atribuição proporcional por nota, nunca da soma
// direta dos subtotais de linha.
type ProductRanking struct {
	ModelNumber     string          `json:"model_number"`
	Category        string          `json:"category"`
	OrdersCount     int             `json:"orders_count"`
	UnitsSold       int             `json:"units_sold"`
	RealizedRevenue decimal.Decimal `json:"realized_revenue"`
}

// CustomerRanking é uma posição do ranking de clientes, restrito a pedidos
// em atacado dentro do período.
type CustomerRanking struct {
	CustomerID            int64           `json:"customer_id"`
	CustomerName          string          `json:"customer_name"`
	BulkOrdersCount       int             `json:"bulk_orders_count"`
	BulkOrdersAmount      decimal.Decimal `json:"bulk_orders_amount"`
	AverageBulkOrderValue decimal.Decimal `json:"average_bulk_order_value"`
	ProductModels         string          `json:"product_models"`
}

// MonthlyRollup é uma linha da tabela fato de consolidação mensal, mantida
// pelo job de sincronização e lida pelo caminho de agregação pré-consolidado.
type MonthlyRollup struct {
	ID               int64           `json:"id"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalOrders      int             `json:"total_orders"`
	TotalUnits       int             `json:"total_units"`
	AvgOrderValue    decimal.Decimal `json:"avg_order_value"`
	NewCustomers     int             `json:"new_customers"`
	BulkOrdersCount  int             `json:"bulk_orders_count"`
	BulkOrdersAmount decimal.Decimal `json:"bulk_orders_amount"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PeriodLabel retorna o período da consolidação no formato mm-yyyy
func (r *MonthlyRollup) PeriodLabel() string {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("01-2006")
}
