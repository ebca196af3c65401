package sqlite

import (
	"context"
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de inventario (usable con db o tx).
// Las filas son inmutables: solo Insert y List.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar db o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Insert registra un movimiento; created_at lo asigna la base.
func (r *StockMovementRepo) Insert(productID int64, movementType string, quantity int64) error {
	_, err := r.q.ExecContext(context.Background(),
		`INSERT INTO stock_movements (product_id, movement_type, quantity) VALUES (?, ?, ?)`,
		productID, movementType, quantity,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista los movimientos con el nombre del producto, más recientes primero.
func (r *StockMovementRepo) List() ([]*entity.StockMovementWithProduct, error) {
	rows, err := r.q.QueryContext(context.Background(), `
		SELECT sm.id, sm.product_id, p.name AS product_name, sm.movement_type, sm.quantity, sm.created_at
		FROM stock_movements sm
		JOIN products p ON sm.product_id = p.id
		ORDER BY sm.created_at DESC, sm.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementWithProduct
	for rows.Next() {
		var m entity.StockMovementWithProduct
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
