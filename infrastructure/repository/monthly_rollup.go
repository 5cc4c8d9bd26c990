package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/analytics-api/infrastructure/database/postgres"
	"github.com/gestorpro/analytics-api/internal/domain"
)

const (
	monthlyRollupsTable = "monthly_sales_rollups mr"

	rollupColumns = "mr.id, mr.year, mr.month, mr.total_revenue, mr.total_orders, " +
		"mr.total_units, mr.avg_order_value, mr.new_customers, " +
		"mr.bulk_orders_count, mr.bulk_orders_amount, mr.created_at, mr.updated_at"
)

type MonthlyRollupRepository interface {
	GetByYear(year int) ([]*domain.MonthlyRollup, error)
	GetByYearMonth(year, month int) (*domain.MonthlyRollup, error)
	GetLastMonths(limit int) ([]*domain.MonthlyRollup, error)
	SaveOrUpdate(rollup *domain.MonthlyRollup) error
}

type monthlyRollupRepository struct {
	conn postgres.Queryer
}

func NewMonthlyRollupRepository(conn *postgres.Connection) MonthlyRollupRepository {
	return &monthlyRollupRepository{
		conn: conn,
	}
}

// GetByYear retorna as consolidações mensais do ano em ordem de calendário
func (r *monthlyRollupRepository) GetByYear(year int) ([]*domain.MonthlyRollup, error) {
	query, args, err := squirrel.
		Select(rollupColumns).
		From(monthlyRollupsTable).
		Where(squirrel.Eq{"mr.year": year}).
		OrderBy("mr.month ASC").
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

	return scanRollups(rows)
}

func (r *monthlyRollupRepository) GetByYearMonth(year, month int) (*domain.MonthlyRollup, error) {
	query, args, err := squirrel.
		Select(rollupColumns).
		From(monthlyRollupsTable).
		Where(squirrel.Eq{"mr.year": year, "mr.month": month}).
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

	rollups, err := scanRollups(rows)
	if err != nil {
		return nil, err
	}

	if len(rollups) == 0 {
		return nil, nil
	}

	return rollups[0], nil
}

// GetLastMonths retorna as últimas consolidações mensais em ordem
// cronológica crescente, limitadas aos meses mais recentes.
func (r *monthlyRollupRepository) GetLastMonths(limit int) ([]*domain.MonthlyRollup, error) {
	query, args, err := squirrel.
		Select(rollupColumns).
		From(monthlyRollupsTable).
		OrderBy("mr.year DESC", "mr.month DESC").
		Limit(uint64(limit)).
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

	rollups, err := scanRollups(rows)
	if err != nil {
		return nil, err
	}

	// Inverter para ordem cronológica crescente
	for i, j := 0, len(rollups)-1; i < j; i, j = i+1, j-1 {
		rollups[i], rollups[j] = rollups[j], rollups[i]
	}

	return rollups, nil
}

func (r *monthlyRollupRepository) SaveOrUpdate(rollup *domain.MonthlyRollup) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_sales_rollups").
		Columns(
			"year", "month", "total_revenue", "total_orders", "total_units",
			"avg_order_value", "new_customers", "bulk_orders_count", "bulk_orders_amount",
		).
		Values(
			rollup.Year,
			rollup.Month,
			rollup.TotalRevenue.String(),
			rollup.TotalOrders,
			rollup.TotalUnits,
			rollup.AvgOrderValue.String(),
			rollup.NewCustomers,
			rollup.BulkOrdersCount,
			rollup.BulkOrdersAmount.String(),
		).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				total_orders = EXCLUDED.total_orders,
				total_units = EXCLUDED.total_units,
				avg_order_value = EXCLUDED.avg_order_value,
				new_customers = EXCLUDED.new_customers,
				bulk_orders_count = EXCLUDED.bulk_orders_count,
				bulk_orders_amount = EXCLUDED.bulk_orders_amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanRollups(rows *sql.Rows) ([]*domain.MonthlyRollup, error) {
	rollups := make([]*domain.MonthlyRollup, 0)

	for rows.Next() {
		rollup := &domain.MonthlyRollup{}
		var totalRevenue, avgOrderValue, bulkOrdersAmount string

		err := rows.Scan(
			&rollup.ID,
			&rollup.Year,
			&rollup.Month,
			&totalRevenue,
			&rollup.TotalOrders,
			&rollup.TotalUnits,
			&avgOrderValue,
			&rollup.NewCustomers,
			&rollup.BulkOrdersCount,
			&bulkOrdersAmount,
			&rollup.CreatedAt,
			&rollup.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear consolidação mensal: %w", err)
		}

		if rollup.TotalRevenue, err = decimal.NewFromString(totalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao converter total_revenue: %w", err)
		}
		if rollup.AvgOrderValue, err = decimal.NewFromString(avgOrderValue); err != nil {
			return nil, fmt.Errorf("erro ao converter avg_order_value: %w", err)
		}
		if rollup.BulkOrdersAmount, err = decimal.NewFromString(bulkOrdersAmount); err != nil {
			return nil, fmt.Errorf("erro ao converter bulk_orders_amount: %w", err)
		}

		rollups = append(rollups, rollup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rollups, nil
}
