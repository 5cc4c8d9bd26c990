package aggregating

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeBulkAverage(t *testing.T) {
	tests := []struct {
		name           string
		bulkCount      int
		bulkAmount     decimal.Decimal
		fallbackOrders int
		want           decimal.Decimal
	}{
		{
			name:           "contador saudável usa a média ingênua",
			bulkCount:      2,
			bulkAmount:     decimal.NewFromInt(150),
			fallbackOrders: 10,
			want:           decimal.NewFromInt(75),
		},
		{
			name:           "contador de linhas excede o total de notas",
			bulkCount:      50,
			bulkAmount:     decimal.NewFromInt(30000),
			fallbackOrders: 10,
			want:           decimal.NewFromInt(3000),
		},
		{
			name:           "sem pedidos em atacado",
			bulkCount:      0,
			bulkAmount:     decimal.Zero,
			fallbackOrders: 10,
			want:           decimal.Zero,
		},
		{
			name:           "contaminado sem divisor de reserva",
			bulkCount:      50,
			bulkAmount:     decimal.NewFromInt(30000),
			fallbackOrders: 0,
			want:           decimal.Zero,
		},
		{
			name:           "contador igual ao total de notas não é contaminação",
			bulkCount:      10,
			bulkAmount:     decimal.NewFromInt(100000),
			fallbackOrders: 10,
			want:           decimal.NewFromInt(10000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeBulkAverage(tt.bulkCount, tt.bulkAmount, tt.fallbackOrders)
			assert.True(t, got.Equal(tt.want), "esperado %s, obtido %s", tt.want, got)
		})
	}
}
