package entity

// Customer representa un cliente del registro.
type Customer struct {
	ID      int64
	Name    string
	Phone   *string
	Address *string
	Notes   *string
}

// CustomerPatch campos opcionales para actualización parcial.
type CustomerPatch struct {
	Name    *string
	Phone   *string
	Address *string
	Notes   *string
}
