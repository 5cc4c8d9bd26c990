package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundCurrency arredonda um valor monetário para exibição (2 casas).
// A precisão completa deve ser mantida durante os cálculos intermediários.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentChange calcula a variação percentual entre dois valores.
// Retorna 0 quando a base é zero, evitando divisão por zero.
func PercentChange(from, to decimal.Decimal) float64 {
	if from.IsZero() {
		return 0
	}

	change, _ := to.Sub(from).Div(from).Mul(decimal.NewFromInt(100)).Float64()
	return RoundWithTwoDecimalPlace(change)
}
