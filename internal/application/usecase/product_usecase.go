package usecase

import (
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock no se edita
// por aquí en el flujo normal: se mueve vía pedidos y movimientos manuales.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	out := ToProductResponse(p)
	return &out, nil
}

// Create valida y persiste un producto nuevo; devuelve su ID.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (int64, error) {
	if in.Name == "" {
		return 0, fmt.Errorf("%w: el nombre del producto no puede estar vacío", domain.ErrInvalidInput)
	}
	if !entity.ValidCategory(in.Category) {
		return 0, fmt.Errorf("%w: categoría de producto inválida: %q", domain.ErrInvalidInput, in.Category)
	}
	if in.PriceRefill.IsNegative() || in.PriceFull.IsNegative() {
		return 0, fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}

	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		PriceRefill: in.PriceRefill,
		PriceFull:   in.PriceFull,
		StockFull:   orZero(in.StockFull),
		StockEmpty:  orZero(in.StockEmpty),
		ExpiryMonth: in.ExpiryMonth,
		ExpiryYear:  in.ExpiryYear,
	}
	return uc.repo.Create(product)
}

// Update valida solo los campos presentes y escribe exactamente esas
// columnas. Un payload sin campos reconocidos es un no-op exitoso.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}

	if in.Name != nil && *in.Name == "" {
		return fmt.Errorf("%w: el nombre del producto no puede estar vacío", domain.ErrInvalidInput)
	}
	if in.Category != nil && !entity.ValidCategory(*in.Category) {
		return fmt.Errorf("%w: categoría de producto inválida: %q", domain.ErrInvalidInput, *in.Category)
	}
	if (in.PriceRefill != nil && in.PriceRefill.IsNegative()) ||
		(in.PriceFull != nil && in.PriceFull.IsNegative()) {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}

	return uc.repo.Update(id, entity.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		PriceRefill: in.PriceRefill,
		PriceFull:   in.PriceFull,
		StockFull:   in.StockFull,
		StockEmpty:  in.StockEmpty,
		ExpiryMonth: in.ExpiryMonth,
		ExpiryYear:  in.ExpiryYear,
	})
}

// Delete elimina un producto tras verificar que existe.
func (uc *ProductUseCase) Delete(id int64) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		PriceRefill: p.PriceRefill,
		PriceFull:   p.PriceFull,
		StockFull:   p.StockFull,
		StockEmpty:  p.StockEmpty,
		ExpiryMonth: p.ExpiryMonth,
		ExpiryYear:  p.ExpiryYear,
	}
}

func orZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
