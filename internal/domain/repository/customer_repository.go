package repository

import "github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
	GetByID(id int64) (*entity.Customer, error)
	// SearchByPhone busca por subcadena del teléfono.
	SearchByPhone(phone string) ([]*entity.Customer, error)
	Create(customer *entity.Customer) (int64, error)
	Update(id int64, patch entity.CustomerPatch) error
	Delete(id int64) error
}
