package entity

// Tipos de movimiento del libro de inventario.
const (
	MovementIn     = "IN"     // entrada manual, cantidad positiva
	MovementOut    = "OUT"    // salida (venta o manual), cantidad positiva
	MovementAdjust = "ADJUST" // ajuste, cantidad con signo
)

// StockMovement fila inmutable del libro de inventario. Toda mutación de
// stock (venta, entrada, salida, ajuste) produce exactamente una fila.
type StockMovement struct {
	ID        int64
	ProductID int64
	Type      string // IN, OUT, ADJUST
	Quantity  int64
	CreatedAt string
}

// StockMovementWithProduct fila del libro con el nombre del producto resuelto.
type StockMovementWithProduct struct {
	StockMovement
	ProductName string
}
