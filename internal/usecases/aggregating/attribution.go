package aggregating

import (
	"github.com/shopspring/decimal"

	"github.com/gestorpro/analytics-api/internal/domain"
)

// AttributedItem é a tupla intermediária da fase de atribuição: a receita
// realizada de uma linha de nota, já escalada pelo desconto do cabeçalho.
type AttributedItem struct {
	InvoiceID       int64
	Item            *domain.InvoiceItem
	RealizedRevenue decimal.Decimal
}

// AttributeInvoice distribui o total pós-desconto de uma nota entre suas
// linhas, proporcionalmente ao subtotal pré-desconto de cada uma.
//
// Invariante: a soma das receitas atribuídas é igual ao total da nota
// (dentro da tolerância de arredondamento decimal) sempre que o subtotal é
// maior que zero. Com subtotal zero, todas as linhas recebem zero — nunca
// há divisão por zero.
func AttributeInvoice(invoice *domain.Invoice) map[int64]decimal.Decimal {
	attributed := make(map[int64]decimal.Decimal, len(invoice.Items))

	subtotal := invoice.Subtotal()
	if !subtotal.IsPositive() {
		for _, item := range invoice.Items {
			attributed[item.ID] = decimal.Zero
		}
		return attributed
	}

	for _, item := range invoice.Items {
		attributed[item.ID] = item.TotalPrice.Div(subtotal).Mul(invoice.TotalAmount)
	}

	return attributed
}

// AttributeInvoices executa a primeira fase do pipeline de agregação:
// atribuição nota a nota, antes de qualquer agrupamento entre notas.
// Misturar subtotais de notas diferentes corromperia a proporção, então o
// agrupamento só acontece sobre as tuplas resultantes.
func AttributeInvoices(invoices []*domain.Invoice) []*AttributedItem {
	attributed := make([]*AttributedItem, 0)

	for _, invoice := range invoices {
		byItem := AttributeInvoice(invoice)

		for _, item := range invoice.Items {
			attributed = append(attributed, &AttributedItem{
				InvoiceID:       invoice.ID,
				Item:            item,
				RealizedRevenue: byItem[item.ID],
			})
		}
	}

	return attributed
}
