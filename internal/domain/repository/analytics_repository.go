package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
)

// TopProductRow producto más vendido en la ventana consultada.
type TopProductRow struct {
	ProductID     int64
	ProductName   string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// SalesToday suma de totales de pedidos del día en curso (UTC).
	SalesToday(ctx context.Context) (decimal.Decimal, error)
	// SalesMonth suma de totales de pedidos del mes calendario en curso.
	SalesMonth(ctx context.Context) (decimal.Decimal, error)
	// CriticalStock productos con stock_full en o bajo el umbral, ascendente.
	CriticalStock(ctx context.Context, threshold int64) ([]*entity.Product, error)
	// TopProducts más vendidos por cantidad en los últimos `days` días.
	TopProducts(ctx context.Context, limit, days int) ([]TopProductRow, error)
	// ActiveCustomers clientes distintos con pedidos en el mes en curso.
	ActiveCustomers(ctx context.Context) (int64, error)
}
