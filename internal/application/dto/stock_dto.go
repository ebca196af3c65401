package dto

// StockOpRequest entrada para stock-in, stock-out y stock-adjust.
// Para in/out la cantidad debe ser positiva; adjust admite signo.
type StockOpRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// StockMovementResponse fila del libro de inventario.
type StockMovementResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"movement_type"`
	Quantity    int64  `json:"quantity"`
	CreatedAt   string `json:"created_at"`
}
