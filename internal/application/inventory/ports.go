package inventory

import (
	"context"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; misma forma que usa el
// módulo de pedidos para que una sola implementación sirva a ambos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
