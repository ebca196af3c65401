package sqlite

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderRepo — integridad referencial
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Al borrar un cliente sus pedidos quedan con customer_id NULL y el
// nombre resuelto desaparece del listado.
func TestOrderRepo_BorrarCliente_DejaPedidoSinCliente(t *testing.T) {
	db := openTestDB(t)
	customers := NewCustomerRepository(db)
	ordersRepo := NewOrderRepository(db)

	customerID, err := customers.Create(&entity.Customer{Name: "María"})
	require.NoError(t, err)

	orderID, err := ordersRepo.Insert(&entity.Order{
		CustomerID: &customerID,
		Total:      decimal.RequireFromString("20.0"),
	})
	require.NoError(t, err)

	require.NoError(t, customers.Delete(customerID))

	got, err := ordersRepo.GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Order.CustomerID, "el pedido histórico conserva su fila sin cliente")
	assert.Nil(t, got.Order.CustomerName)
}

// Caso 2: Al borrar un pedido sus líneas caen en cascada.
func TestOrderRepo_Delete_CascadaDeLineas(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	ordersRepo := NewOrderRepository(db)

	productID, err := products.Create(testProduct())
	require.NoError(t, err)

	orderID, err := ordersRepo.Insert(&entity.Order{Total: decimal.RequireFromString("20.0")})
	require.NoError(t, err)
	require.NoError(t, ordersRepo.InsertItem(&entity.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("10.0"),
	}))

	require.NoError(t, ordersRepo.Delete(orderID))

	var count int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM order_items WHERE order_id = ?`, orderID).Scan(&count))
	assert.Zero(t, count, "las líneas deben borrarse con el pedido")
}

// Caso 3: Insert respeta un created_at provisto; sin él aplica el default.
func TestOrderRepo_Insert_CreatedAt(t *testing.T) {
	db := openTestDB(t)
	ordersRepo := NewOrderRepository(db)

	withDate, err := ordersRepo.Insert(&entity.Order{
		Total:     decimal.RequireFromString("5.0"),
		CreatedAt: "2025-12-31 23:59:59",
	})
	require.NoError(t, err)

	withoutDate, err := ordersRepo.Insert(&entity.Order{Total: decimal.RequireFromString("5.0")})
	require.NoError(t, err)

	a, err := ordersRepo.GetByID(withDate)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31 23:59:59", a.Order.CreatedAt)

	b, err := ordersRepo.GetByID(withoutDate)
	require.NoError(t, err)
	assert.NotEmpty(t, b.Order.CreatedAt)
	assert.NotEqual(t, a.Order.CreatedAt, b.Order.CreatedAt)
}
