package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// UseCase casos de uso de pedidos. La creación es la operación crítica del
// sistema: cabecera, líneas, descuento de stock y libro de movimientos se
// escriben en una sola transacción.
type UseCase struct {
	repo repository.OrderRepository
	tx   TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.OrderRepository, tx TxRunner) *UseCase {
	return &UseCase{repo: repo, tx: tx}
}

// Create registra un pedido completo de forma atómica. El total se
// recalcula en el servidor a partir de cantidad por precio unitario; por
// cada línea se descuenta stock lleno, se suma casco si fue devuelto y se
// anota la salida en el libro. Cualquier fallo revierte todo el pedido.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (int64, error) {
	if len(in.Items) == 0 {
		return 0, fmt.Errorf("%w: el pedido necesita al menos una línea", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: la cantidad debe ser positiva (producto %d)", domain.ErrInvalidInput, item.ProductID)
		}
		if item.UnitPrice.IsNegative() {
			return 0, fmt.Errorf("%w: el precio unitario no puede ser negativo (producto %d)", domain.ErrInvalidInput, item.ProductID)
		}
	}

	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}

	var orderID int64
	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		id, err := orderRepo.Insert(&entity.Order{
			CustomerID: in.CustomerID,
			Total:      total,
		})
		if err != nil {
			return err
		}

		for _, item := range in.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %d", domain.ErrNotFound, item.ProductID)
			}
			if product.StockFull < item.Quantity {
				return fmt.Errorf("%w: %s (disponible %d, pedido %d)",
					domain.ErrInsufficientStock, product.Name, product.StockFull, item.Quantity)
			}

			if err := orderRepo.InsertItem(&entity.OrderItem{
				OrderID:        id,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				ReturnedBottle: item.ReturnedBottle,
				UnitPrice:      item.UnitPrice,
			}); err != nil {
				return err
			}

			deltaEmpty := int64(0)
			if item.ReturnedBottle {
				deltaEmpty = item.Quantity
			}
			if err := productRepo.AdjustStock(item.ProductID, -item.Quantity, deltaEmpty); err != nil {
				return err
			}
			if err := movementRepo.Insert(item.ProductID, entity.MovementOut, item.Quantity); err != nil {
				return err
			}
		}

		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// List lista las cabeceras, más recientes primero.
func (uc *UseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByCustomer lista las cabeceras de un cliente.
func (uc *UseCase) ListByCustomer(customerID int64) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// GetByID devuelve el pedido completo con sus líneas.
func (uc *UseCase) GetByID(id int64) (*dto.OrderWithItemsResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	out := ToOrderWithItemsResponse(order)
	return &out, nil
}

// Update edición administrativa: solo permite corregir la fecha.
func (uc *UseCase) Update(id int64, in dto.UpdateOrderRequest) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	if in.CreatedAt != nil && *in.CreatedAt == "" {
		return fmt.Errorf("%w: la fecha no puede estar vacía", domain.ErrInvalidInput)
	}
	return uc.repo.Update(id, entity.OrderPatch{CreatedAt: in.CreatedAt})
}

// Delete borra el pedido y sus líneas en cascada. El stock y el libro de
// movimientos no se revierten: el borrado es corrección administrativa,
// no una devolución.
func (uc *UseCase) Delete(id int64) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: pedido %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toOrderResponses(list []*entity.OrderWithCustomer) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return items
}

func toOrderResponse(o *entity.OrderWithCustomer) dto.OrderResponse {
	return dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
	}
}

// ToOrderWithItemsResponse mapea el pedido completo al DTO de salida.
func ToOrderWithItemsResponse(o *entity.OrderWithItems) dto.OrderWithItemsResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:             it.ID,
			OrderID:        it.OrderID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			ReturnedBottle: it.ReturnedBottle,
			UnitPrice:      it.UnitPrice,
		})
	}
	return dto.OrderWithItemsResponse{
		Order: toOrderResponse(&o.Order),
		Items: items,
	}
}
