package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto más vendido de la ventana consultada.
type TopProductDTO struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// DashboardStatsDTO resumen que alimenta la pantalla principal.
type DashboardStatsDTO struct {
	SalesToday      decimal.Decimal   `json:"sales_today"`
	SalesMonth      decimal.Decimal   `json:"sales_month"`
	CriticalStock   []ProductResponse `json:"critical_stock"`
	TopProducts     []TopProductDTO   `json:"top_products"`
	ActiveCustomers int64             `json:"active_customers"`
}
