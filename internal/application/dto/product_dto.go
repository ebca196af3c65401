package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Los stocks ausentes
// inician en cero.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"` // water, gas, coal, other
	PriceRefill decimal.Decimal `json:"price_refill"`
	PriceFull   decimal.Decimal `json:"price_full"`
	StockFull   *int64          `json:"stock_full"`
	StockEmpty  *int64          `json:"stock_empty"`
	ExpiryMonth *int64          `json:"expiry_month"`
	ExpiryYear  *int64          `json:"expiry_year"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se validan y se escriben.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	PriceRefill *decimal.Decimal `json:"price_refill"`
	PriceFull   *decimal.Decimal `json:"price_full"`
	StockFull   *int64           `json:"stock_full"`
	StockEmpty  *int64           `json:"stock_empty"`
	ExpiryMonth *int64           `json:"expiry_month"`
	ExpiryYear  *int64           `json:"expiry_year"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	PriceRefill decimal.Decimal `json:"price_refill"`
	PriceFull   decimal.Decimal `json:"price_full"`
	StockFull   int64           `json:"stock_full"`
	StockEmpty  int64           `json:"stock_empty"`
	ExpiryMonth *int64          `json:"expiry_month"`
	ExpiryYear  *int64          `json:"expiry_year"`
}
