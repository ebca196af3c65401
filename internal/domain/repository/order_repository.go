package repository

import "github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	List() ([]*entity.OrderWithCustomer, error)
	ListByCustomer(customerID int64) ([]*entity.OrderWithCustomer, error)
	// GetByID devuelve el pedido con cliente y líneas resueltas, (nil, nil) si no existe.
	GetByID(id int64) (*entity.OrderWithItems, error)
	Insert(order *entity.Order) (int64, error)
	InsertItem(item *entity.OrderItem) error
	Update(id int64, patch entity.OrderPatch) error
	// Delete elimina el pedido; las líneas caen por ON DELETE CASCADE.
	Delete(id int64) error
}
