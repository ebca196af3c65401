package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. El bucketing
// por fecha usa el reloj de SQLite ('now'), que es UTC, igual que los
// timestamps escritos al insertar.
type AnalyticsRepo struct {
	db *sql.DB
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// SalesToday suma de totales de pedidos del día en curso.
func (r *AnalyticsRepo) SalesToday(ctx context.Context) (decimal.Decimal, error) {
	return r.sumTotals(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE DATE(created_at) = DATE('now')`)
}

// SalesMonth suma de totales de pedidos del mes calendario en curso.
func (r *AnalyticsRepo) SalesMonth(ctx context.Context) (decimal.Decimal, error) {
	return r.sumTotals(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders
		 WHERE strftime('%Y-%m', created_at) = strftime('%Y-%m', 'now')`)
}

// CriticalStock productos con stock_full en o bajo el umbral, ascendente.
func (r *AnalyticsRepo) CriticalStock(ctx context.Context, threshold int64) ([]*entity.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE stock_full <= ? ORDER BY stock_full ASC`,
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.CriticalStock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("analytics.CriticalStock scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// TopProducts más vendidos por cantidad en la ventana de `days` días.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit, days int) ([]repository.TopProductRow, error) {
	const query = `
	SELECT
	    oi.product_id,
	    p.name                           AS product_name,
	    SUM(oi.quantity)                 AS total_quantity,
	    SUM(oi.quantity * oi.unit_price) AS total_revenue
	FROM order_items oi
	JOIN products p ON oi.product_id = p.id
	JOIN orders   o ON oi.order_id   = o.id
	WHERE o.created_at >= datetime('now', '-' || ? || ' days')
	GROUP BY oi.product_id, p.name
	ORDER BY total_quantity DESC
	LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, days, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopProducts: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		var revenue float64
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantity, &revenue); err != nil {
			return nil, fmt.Errorf("analytics.TopProducts scan: %w", err)
		}
		row.TotalRevenue = decimal.NewFromFloat(revenue)
		results = append(results, row)
	}
	return results, rows.Err()
}

// ActiveCustomers clientes distintos con pedidos en el mes en curso.
func (r *AnalyticsRepo) ActiveCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT customer_id) FROM orders
		WHERE customer_id IS NOT NULL
		  AND strftime('%Y-%m', created_at) = strftime('%Y-%m', 'now')`).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.ActiveCustomers: %w", err)
	}
	return count, nil
}

// sumTotals ejecuta un SUM sobre la columna total (texto decimal, SQLite la
// coacciona a numérico) y lo devuelve como decimal.
func (r *AnalyticsRepo) sumTotals(ctx context.Context, query string) (decimal.Decimal, error) {
	var sum float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.sumTotals: %w", err)
	}
	return decimal.NewFromFloat(sum), nil
}
