package repository

import "github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	Create(product *entity.Product) (int64, error)
	// Update escribe exactamente las columnas presentes en el patch;
	// un patch vacío es un no-op exitoso.
	Update(id int64, patch entity.ProductPatch) error
	Delete(id int64) error
	// AdjustStock suma los deltas a stock_full y stock_empty (pueden ser negativos).
	AdjustStock(id int64, deltaFull, deltaEmpty int64) error
}
