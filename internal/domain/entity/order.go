package entity

import "github.com/shopspring/decimal"

// Order cabecera de un pedido. Total siempre se recalcula en el servidor
// como Σ(cantidad × precio unitario de la línea).
type Order struct {
	ID         int64
	CustomerID *int64
	Total      decimal.Decimal
	CreatedAt  string
}

// OrderWithCustomer cabecera con el nombre del cliente resuelto (LEFT JOIN).
type OrderWithCustomer struct {
	Order
	CustomerName *string
}

// OrderItem línea de un pedido. ReturnedBottle marca que el cliente
// devolvió el casco vacío.
type OrderItem struct {
	ID             int64
	OrderID        int64
	ProductID      int64
	Quantity       int64
	ReturnedBottle bool
	UnitPrice      decimal.Decimal
}

// OrderItemWithProduct línea con el nombre del producto resuelto.
type OrderItemWithProduct struct {
	OrderItem
	ProductName string
}

// OrderWithItems pedido completo tal como lo consume la GUI y el recibo.
type OrderWithItems struct {
	Order OrderWithCustomer
	Items []OrderItemWithProduct
}

// OrderPatch campos opcionales para la edición administrativa del pedido.
type OrderPatch struct {
	CreatedAt *string
}
