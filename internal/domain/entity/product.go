package entity

import "github.com/shopspring/decimal"

// Categorías válidas de producto.
const (
	CategoryWater = "water"
	CategoryGas   = "gas"
	CategoryCoal  = "coal"
	CategoryOther = "other"
)

// ValidCategory indica si la categoría pertenece a la enumeración fija.
func ValidCategory(c string) bool {
	switch c {
	case CategoryWater, CategoryGas, CategoryCoal, CategoryOther:
		return true
	}
	return false
}

// Product representa un producto del catálogo. El stock se divide en
// envases llenos (stock_full) y cascos vacíos devueltos (stock_empty).
type Product struct {
	ID          int64
	Name        string
	Description *string
	Category    string // water, gas, coal, other
	PriceRefill decimal.Decimal
	PriceFull   decimal.Decimal
	StockFull   int64
	StockEmpty  int64
	ExpiryMonth *int64
	ExpiryYear  *int64
}

// ProductPatch campos opcionales para actualización parcial: solo las
// columnas presentes (punteros no nil) se escriben.
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	PriceRefill *decimal.Decimal
	PriceFull   *decimal.Decimal
	StockFull   *int64
	StockEmpty  *int64
	ExpiryMonth *int64
	ExpiryYear  *int64
}
