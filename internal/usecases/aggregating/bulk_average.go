package aggregating

import (
	"github.com/shopspring/decimal"
)

// SanitizeBulkAverage calcula o ticket médio de pedidos em atacado
// corrigindo uma ambiguidade conhecida dos dados históricos: em algumas
// origens o contador de pedidos em atacado conta linhas de nota, não notas,
// o que inflaciona o divisor e produz médias sem sentido.
//
// A contaminação é detectada quando o contador de atacado excede o total de
// notas do período — um contador verdadeiro de notas nunca pode exceder o
// total. O teste aritmético original (média ingênua maior que o próprio
// montante) é mantido como gatilho adicional. Em qualquer um dos casos o
// divisor passa a ser o total de notas do período.
//
// Retorna o valor com precisão completa; o arredondamento para exibição é
// responsabilidade de quem monta a resposta.
func SanitizeBulkAverage(bulkCount int, bulkAmount decimal.Decimal, fallbackOrders int) decimal.Decimal {
	if bulkCount <= 0 {
		return decimal.Zero
	}

	naiveAvg := bulkAmount.Div(decimal.NewFromInt(int64(bulkCount)))

	contaminated := bulkCount > fallbackOrders || naiveAvg.GreaterThan(bulkAmount)
	if !contaminated {
		return naiveAvg
	}

	if fallbackOrders <= 0 {
		return decimal.Zero
	}

	return bulkAmount.Div(decimal.NewFromInt(int64(fallbackOrders)))
}
