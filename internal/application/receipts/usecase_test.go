package receipts_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/orders"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/receipts"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/pdf"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/sqlite"
)

type fixture struct {
	uc        *receipts.UseCase
	orders    *orders.UseCase
	customers *sqlite.CustomerRepo
	products  *sqlite.ProductRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	orderRepo := sqlite.NewOrderRepository(db)
	return &fixture{
		uc:        receipts.NewUseCase(orderRepo, pdf.NewMarotoReceiptGenerator()),
		orders:    orders.NewUseCase(orderRepo, sqlite.NewTxRunner(db)),
		customers: sqlite.NewCustomerRepository(db),
		products:  sqlite.NewProductRepository(db),
	}
}

// createOrder registra una venta de 2 garrafas a 10.0, una con casco.
func (f *fixture) createOrder(t *testing.T, customerID *int64) int64 {
	t.Helper()
	productID, err := f.products.Create(&entity.Product{
		Name:        "Garrafa 20L",
		Category:    entity.CategoryWater,
		PriceRefill: decimal.RequireFromString("10.0"),
		PriceFull:   decimal.RequireFromString("25.0"),
		StockFull:   100,
	})
	require.NoError(t, err)

	orderID, err := f.orders.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemPayload{
			{ProductID: productID, Quantity: 1, ReturnedBottle: true, UnitPrice: decimal.RequireFromString("10.0")},
			{ProductID: productID, Quantity: 1, ReturnedBottle: false, UnitPrice: decimal.RequireFromString("10.0")},
		},
	})
	require.NoError(t, err)
	return orderID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests recibo HTML
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El recibo de un pedido sin cliente sale a nombre del consumidor
// final, con título, sufijo de casco y total en formato brasileño.
func TestHTML_ConsumidorFinal(t *testing.T) {
	f := newFixture(t)
	orderID := f.createOrder(t, nil)

	html, err := f.uc.HTML(orderID)
	require.NoError(t, err)

	assert.Contains(t, html, "RECIBO DE VENDA")
	assert.Contains(t, html, "Consumidor Final")
	assert.Contains(t, html, "Garrafa 20L (com casco)")
	assert.Contains(t, html, "Obrigado pela preferência!")
	assert.Contains(t, html, "R$ 20,00", "el total usa coma decimal pt-BR")
}

// Caso 2: Con cliente asociado aparece su nombre, no el genérico.
func TestHTML_ConCliente(t *testing.T) {
	f := newFixture(t)

	customerID, err := f.customers.Create(&entity.Customer{Name: "María Souza"})
	require.NoError(t, err)
	orderID := f.createOrder(t, &customerID)

	html, err := f.uc.HTML(orderID)
	require.NoError(t, err)

	assert.Contains(t, html, "María Souza")
	assert.NotContains(t, html, "Consumidor Final")
}

// Caso 3: La línea sin casco no lleva el sufijo.
func TestHTML_SufijoSoloConCasco(t *testing.T) {
	f := newFixture(t)
	orderID := f.createOrder(t, nil)

	html, err := f.uc.HTML(orderID)
	require.NoError(t, err)

	// Una línea con sufijo y otra sin él
	assert.Contains(t, html, "Garrafa 20L (com casco)")
	assert.Contains(t, html, "<td>Garrafa 20L</td>")
}

// Caso 4: Pedido inexistente → ErrNotFound.
func TestHTML_PedidoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.HTML(424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: El render PDF produce un documento no vacío con cabecera %PDF.
func TestPDF_DocumentoValido(t *testing.T) {
	f := newFixture(t)
	orderID := f.createOrder(t, nil)

	out, err := f.uc.PDF(orderID)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests formato de moneda
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatBRL(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"20", "R$ 20,00"},
		{"20.5", "R$ 20,50"},
		{"1234.56", "R$ 1.234,56"},
		{"0", "R$ 0,00"},
	}
	for _, c := range casos {
		got := receipts.FormatBRL(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "formato de %s", c.in)
	}
}
