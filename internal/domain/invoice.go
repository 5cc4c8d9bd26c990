package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice é a visão somente-leitura de uma nota fiscal do esquema
// transacional. TotalAmount já reflete o desconto aplicado no cabeçalho.
type Invoice struct {
	ID          int64           `json:"id"`
	CustomerID  int64           `json:"customer_id"`
	InvoiceDate time.Time       `json:"invoice_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Customer    *Customer       `json:"customer,omitempty"`
	Items       []*InvoiceItem  `json:"items,omitempty"`
}

// InvoiceItem é uma linha da nota. TotalPrice é o subtotal da linha antes
// do desconto do cabeçalho.
type InvoiceItem struct {
	ID         int64           `json:"id"`
	InvoiceID  int64           `json:"invoice_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Product    *Product        `json:"product,omitempty"`
}

// Product identifica um item do catálogo pelo número do modelo e categoria
type Product struct {
	ID          int64  `json:"id"`
	ModelNumber string `json:"model_number"`
	Category    string `json:"category"`
}

// Customer é a visão somente-leitura de um cliente. CreatedAt é usado para
// detectar clientes novos dentro de um período.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Subtotal soma os subtotais de linha da nota (valores pré-desconto)
func (i *Invoice) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range i.Items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	return subtotal
}
