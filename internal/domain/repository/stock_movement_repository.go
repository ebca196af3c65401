package repository

import "github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"

// StockMovementRepository puerto del libro de inventario (append-only).
type StockMovementRepository interface {
	// Insert registra un movimiento; CreatedAt lo asigna la base.
	Insert(productID int64, movementType string, quantity int64) error
	List() ([]*entity.StockMovementWithProduct, error)
}
