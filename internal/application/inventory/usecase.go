package inventory

import (
	"context"
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// UseCase movimientos manuales de stock. Cada operación actualiza el
// contador del producto y anota la fila correspondiente en el libro, las
// dos cosas en la misma transacción.
type UseCase struct {
	movements repository.StockMovementRepository
	tx        TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(movements repository.StockMovementRepository, tx TxRunner) *UseCase {
	return &UseCase{movements: movements, tx: tx}
}

// StockIn entrada de mercancía: suma al stock lleno.
func (uc *UseCase) StockIn(ctx context.Context, in dto.StockOpRequest) error {
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	return uc.apply(ctx, in.ProductID, entity.MovementIn, in.Quantity, in.Quantity)
}

// StockOut salida manual (merma, rotura): resta del stock lleno sin pasar
// por un pedido. No permite dejar el stock en negativo.
func (uc *UseCase) StockOut(ctx context.Context, in dto.StockOpRequest) error {
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
	}
	return uc.apply(ctx, in.ProductID, entity.MovementOut, in.Quantity, -in.Quantity)
}

// StockAdjust corrección tras recuento físico: el delta admite signo y el
// libro conserva ese signo bajo el tipo ADJUST.
func (uc *UseCase) StockAdjust(ctx context.Context, in dto.StockOpRequest) error {
	if in.Quantity == 0 {
		return fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
	}
	return uc.apply(ctx, in.ProductID, entity.MovementAdjust, in.Quantity, in.Quantity)
}

// Movements devuelve el libro completo, más reciente primero.
func (uc *UseCase) Movements() ([]dto.StockMovementResponse, error) {
	list, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Type:        m.Type,
			Quantity:    m.Quantity,
			CreatedAt:   m.CreatedAt,
		})
	}
	return items, nil
}

// apply actualiza el contador y anota el libro en una misma transacción.
func (uc *UseCase) apply(ctx context.Context, productID int64, movementType string, ledgerQty, deltaFull int64) error {
	return uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.OrderRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, productID)
		}
		if product.StockFull+deltaFull < 0 {
			return fmt.Errorf("%w: %s (disponible %d, salida %d)",
				domain.ErrInsufficientStock, product.Name, product.StockFull, -deltaFull)
		}
		if err := productRepo.AdjustStock(productID, deltaFull, 0); err != nil {
			return err
		}
		return movementRepo.Insert(productID, movementType, ledgerQty)
	})
}
