package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/analytics-api/infrastructure/database/postgres"
	"github.com/gestorpro/analytics-api/internal/domain"
)

const (
	invoicesTable     = "invoices i"
	invoiceItemsTable = "invoice_items ii"
)

type InvoiceRepository interface {
	ListByPeriod(startDate, endDate time.Time) ([]*domain.Invoice, error)
	ListYears() ([]string, error)
	ListMonths(year int) ([]int, error)
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// ListByPeriod carrega as notas do período (datas inclusivas) com cliente e
// linhas já anexados. A ordenação por id garante resultados determinísticos
// para os rankings.
func (r *invoiceRepository) ListByPeriod(startDate, endDate time.Time) ([]*domain.Invoice, error) {
	query, args, err := squirrel.
		Select(
			"i.id", "i.customer_id", "i.invoice_date", "i.total_amount",
			"c.id", "c.name", "c.created_at",
		).
		From(invoicesTable).
		Join("customers c ON c.id = i.customer_id").
		Where(squirrel.GtOrEq{"i.invoice_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"i.invoice_date": endDate.Format(time.DateOnly)}).
		OrderBy("i.invoice_date ASC", "i.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	byID := make(map[int64]*domain.Invoice)

	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear nota fiscal: %w", err)
		}
		invoices = append(invoices, invoice)
		byID[invoice.ID] = invoice
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(invoices) == 0 {
		return invoices, nil
	}

	if err := r.attachItems(byID, startDate, endDate); err != nil {
		return nil, err
	}

	return invoices, nil
}

// attachItems busca as linhas das notas do período e as anexa às notas já
// carregadas. O filtro repete o intervalo de datas para evitar carregar o
// histórico inteiro de linhas.
func (r *invoiceRepository) attachItems(byID map[int64]*domain.Invoice, startDate, endDate time.Time) error {
	query, args, err := squirrel.
		Select(
			"ii.id", "ii.invoice_id", "ii.item_id", "ii.quantity", "ii.total_price",
			"it.id", "it.model_number", "it.category",
		).
		From(invoiceItemsTable).
		Join("invoices i ON i.id = ii.invoice_id").
		Join("items it ON it.id = ii.item_id").
		Where(squirrel.GtOrEq{"i.invoice_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"i.invoice_date": endDate.Format(time.DateOnly)}).
		OrderBy("ii.invoice_id ASC", "ii.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanInvoiceItem(rows)
		if err != nil {
			return fmt.Errorf("erro ao escanear linha de nota: %w", err)
		}

		invoice, ok := byID[item.InvoiceID]
		if !ok {
			continue
		}
		invoice.Items = append(invoice.Items, item)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}

// ListYears retorna os anos com notas registradas, em ordem decrescente
func (r *invoiceRepository) ListYears() ([]string, error) {
	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM invoice_date)::int AS year
		FROM invoices
		ORDER BY year DESC
	`

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	years := make([]string, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("erro ao escanear ano: %w", err)
		}
		years = append(years, fmt.Sprintf("%d", year))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return years, nil
}

// ListMonths retorna os números dos meses com notas no ano, em ordem
// crescente
func (r *invoiceRepository) ListMonths(year int) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(MONTH FROM invoice_date)::int AS month
		FROM invoices
		WHERE EXTRACT(YEAR FROM invoice_date)::int = $1
		ORDER BY month ASC
	`

	rows, err := r.conn.Query(query, year)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	months := make([]int, 0)
	for rows.Next() {
		var month int
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}
		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func scanInvoice(rows *sql.Rows) (*domain.Invoice, error) {
	invoice := &domain.Invoice{Customer: &domain.Customer{}}
	var totalAmount string

	err := rows.Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.InvoiceDate,
		&totalAmount,
		&invoice.Customer.ID,
		&invoice.Customer.Name,
		&invoice.Customer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(totalAmount)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter total_amount: %w", err)
	}
	invoice.TotalAmount = amount

	return invoice, nil
}

func scanInvoiceItem(rows *sql.Rows) (*domain.InvoiceItem, error) {
	item := &domain.InvoiceItem{Product: &domain.Product{}}
	var totalPrice string

	err := rows.Scan(
		&item.ID,
		&item.InvoiceID,
		&item.ProductID,
		&item.Quantity,
		&totalPrice,
		&item.Product.ID,
		&item.Product.ModelNumber,
		&item.Product.Category,
	)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(totalPrice)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter total_price: %w", err)
	}
	item.TotalPrice = price

	return item, nil
}
