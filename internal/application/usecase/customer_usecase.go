package usecase

import (
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes más la búsqueda por
// teléfono que usa el mostrador.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCustomerResponse(c))
	}
	return items, nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// SearchByPhone busca por subcadena del teléfono.
func (uc *CustomerUseCase) SearchByPhone(phone string) ([]dto.CustomerResponse, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: el teléfono a buscar no puede estar vacío", domain.ErrInvalidInput)
	}
	list, err := uc.repo.SearchByPhone(phone)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCustomerResponse(c))
	}
	return items, nil
}

// Create valida y persiste un cliente nuevo; devuelve su ID.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (int64, error) {
	if in.Name == "" {
		return 0, fmt.Errorf("%w: el nombre del cliente no puede estar vacío", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Notes:   in.Notes,
	}
	return uc.repo.Create(customer)
}

// Update escribe solo los campos presentes en el payload.
func (uc *CustomerUseCase) Update(id int64, in dto.UpdateCustomerRequest) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	if in.Name != nil && *in.Name == "" {
		return fmt.Errorf("%w: el nombre del cliente no puede estar vacío", domain.ErrInvalidInput)
	}
	return uc.repo.Update(id, entity.CustomerPatch{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Notes:   in.Notes,
	})
}

// Delete elimina un cliente. Los pedidos históricos conservan su fila con
// customer_id en NULL.
func (uc *CustomerUseCase) Delete(id int64) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: cliente %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Notes:   c.Notes,
	}
}
