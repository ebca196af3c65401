package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/analytics"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/orders"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/sqlite"
)

type fixture struct {
	uc        *analytics.DashboardUseCase
	orders    *orders.UseCase
	orderRepo *sqlite.OrderRepo
	products  *sqlite.ProductRepo
	customers *sqlite.CustomerRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	orderRepo := sqlite.NewOrderRepository(db)
	return &fixture{
		uc:        analytics.NewDashboardUseCase(sqlite.NewAnalyticsRepository(db)),
		orders:    orders.NewUseCase(orderRepo, sqlite.NewTxRunner(db)),
		orderRepo: orderRepo,
		products:  sqlite.NewProductRepository(db),
		customers: sqlite.NewCustomerRepository(db),
	}
}

func (f *fixture) createProduct(t *testing.T, name string, stockFull int64) int64 {
	t.Helper()
	id, err := f.products.Create(&entity.Product{
		Name:        name,
		Category:    entity.CategoryWater,
		PriceRefill: decimal.RequireFromString("10.0"),
		PriceFull:   decimal.RequireFromString("25.0"),
		StockFull:   stockFull,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) sell(t *testing.T, productID, qty int64, customerID *int64, price string) {
	t.Helper()
	_, err := f.orders.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemPayload{{
			ProductID: productID,
			Quantity:  qty,
			UnitPrice: decimal.RequireFromString(price),
		}},
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Stats
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Base vacía: totales en cero, listas vacías.
func TestStats_BaseVacia(t *testing.T) {
	f := newFixture(t)

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.SalesToday.IsZero())
	assert.True(t, stats.SalesMonth.IsZero())
	assert.Empty(t, stats.CriticalStock)
	assert.Empty(t, stats.TopProducts)
	assert.Zero(t, stats.ActiveCustomers)
}

// Caso 2: Una venta de hoy cuenta en el día y en el mes.
func TestStats_VentaDeHoy(t *testing.T) {
	f := newFixture(t)
	productID := f.createProduct(t, "Garrafa 20L", 100)

	f.sell(t, productID, 2, nil, "10.0")

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.SalesToday.Equal(decimal.RequireFromString("20")),
		"la venta de hoy debe sumar en el día")
	assert.True(t, stats.SalesMonth.Equal(decimal.RequireFromString("20")))
}

// Caso 3: El stock crítico incluye solo productos en o bajo el umbral de 10,
// ordenados de menor a mayor.
func TestStats_StockCritico(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "Abundante", 50)
	f.createProduct(t, "Justo", 10)
	f.createProduct(t, "Agotándose", 2)

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.CriticalStock, 2)
	assert.Equal(t, "Agotándose", stats.CriticalStock[0].Name)
	assert.Equal(t, "Justo", stats.CriticalStock[1].Name)
}

// Caso 4: Top de productos ordenado por cantidad vendida, máximo 5.
func TestStats_TopProductos(t *testing.T) {
	f := newFixture(t)
	winner := f.createProduct(t, "Ganador", 100)
	second := f.createProduct(t, "Segundo", 100)

	f.sell(t, winner, 5, nil, "10.0")
	f.sell(t, winner, 3, nil, "10.0")
	f.sell(t, second, 4, nil, "25.0")

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "Ganador", stats.TopProducts[0].ProductName)
	assert.Equal(t, int64(8), stats.TopProducts[0].TotalQuantity)
	assert.True(t, stats.TopProducts[0].TotalRevenue.Equal(decimal.RequireFromString("80")))
	assert.Equal(t, "Segundo", stats.TopProducts[1].ProductName)
	assert.True(t, stats.TopProducts[1].TotalRevenue.Equal(decimal.RequireFromString("100")))
}

// Caso 5: Clientes activos cuenta clientes distintos del mes; las ventas de
// mostrador (sin cliente) no suman.
func TestStats_ClientesActivos(t *testing.T) {
	f := newFixture(t)
	productID := f.createProduct(t, "Garrafa 20L", 100)

	c1, err := f.customers.Create(&entity.Customer{Name: "María"})
	require.NoError(t, err)
	c2, err := f.customers.Create(&entity.Customer{Name: "João"})
	require.NoError(t, err)

	f.sell(t, productID, 1, &c1, "10.0")
	f.sell(t, productID, 1, &c1, "10.0") // repetido: cuenta una vez
	f.sell(t, productID, 1, &c2, "10.0")
	f.sell(t, productID, 1, nil, "10.0") // mostrador: no cuenta

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.ActiveCustomers)
}
