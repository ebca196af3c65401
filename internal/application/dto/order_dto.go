package dto

import "github.com/shopspring/decimal"

// OrderItemPayload línea de un pedido nuevo. El precio unitario lo fija el
// llamador (la GUI puede descontar en mostrador); el total siempre se
// recalcula en el servidor.
type OrderItemPayload struct {
	ProductID      int64           `json:"product_id"`
	Quantity       int64           `json:"quantity"`
	ReturnedBottle bool            `json:"returned_bottle"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	CustomerID *int64             `json:"customer_id"`
	Items      []OrderItemPayload `json:"items"`
}

// UpdateOrderRequest edición administrativa: solo la fecha de creación.
type UpdateOrderRequest struct {
	CreatedAt *string `json:"created_at"`
}

// OrderResponse cabecera de pedido con el nombre del cliente resuelto.
type OrderResponse struct {
	ID           int64           `json:"id"`
	CustomerID   *int64          `json:"customer_id"`
	CustomerName *string         `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    string          `json:"created_at"`
}

// OrderItemResponse línea con el nombre del producto resuelto.
type OrderItemResponse struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"order_id"`
	ProductID      int64           `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int64           `json:"quantity"`
	ReturnedBottle bool            `json:"returned_bottle"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// OrderWithItemsResponse pedido completo.
type OrderWithItemsResponse struct {
	Order OrderResponse       `json:"order"`
	Items []OrderItemResponse `json:"items"`
}
