package orders

import (
	"context"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Los repositorios que
// recibe fn están ligados a esa transacción; si fn devuelve error se hace
// rollback de todo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
