package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/usecase"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/sqlite"
)

func newProductFixture(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return usecase.NewProductUseCase(sqlite.NewProductRepository(db))
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Garrafa 20L",
		Category:    entity.CategoryWater,
		PriceRefill: decimal.RequireFromString("10.00"),
		PriceFull:   decimal.RequireFromString("25.50"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase — validación de catálogo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Crear un producto válido y leerlo de vuelta.
func TestProductCreate_Valido(t *testing.T) {
	uc := newProductFixture(t)

	id, err := uc.Create(validProductRequest())
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Garrafa 20L", got.Name)
	assert.Equal(t, entity.CategoryWater, got.Category)
	assert.Zero(t, got.StockFull, "stock ausente inicia en cero")
	assert.Zero(t, got.StockEmpty)
}

// Caso 2: Crear rechaza nombre vacío, categoría fuera de la enumeración y
// precios negativos; nada se persiste.
func TestProductCreate_Validaciones(t *testing.T) {
	uc := newProductFixture(t)

	in := validProductRequest()
	in.Name = ""
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	in = validProductRequest()
	in.Category = "cerveza"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría inválida")

	in = validProductRequest()
	in.PriceRefill = decimal.RequireFromString("-1")
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "price_refill negativo")

	in = validProductRequest()
	in.PriceFull = decimal.RequireFromString("-0.01")
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "price_full negativo")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list, "ninguna entrada rechazada debe llegar al catálogo")
}

// Caso 3: Update aplica las mismas reglas a los campos presentes y no
// escribe nada cuando una falla.
func TestProductUpdate_Validaciones(t *testing.T) {
	uc := newProductFixture(t)

	id, err := uc.Create(validProductRequest())
	require.NoError(t, err)

	err = uc.Update(id, dto.UpdateProductRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	err = uc.Update(id, dto.UpdateProductRequest{Category: strPtr("cerveza")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría inválida")

	err = uc.Update(id, dto.UpdateProductRequest{PriceFull: decPtr("-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Garrafa 20L", got.Name)
	assert.Equal(t, entity.CategoryWater, got.Category)
	assert.True(t, got.PriceFull.Equal(decimal.RequireFromString("25.50")))
}

// Caso 4: Update sin campos es un no-op exitoso; sobre un id inexistente
// es ErrNotFound.
func TestProductUpdate_VacioEInexistente(t *testing.T) {
	uc := newProductFixture(t)

	id, err := uc.Create(validProductRequest())
	require.NoError(t, err)

	assert.NoError(t, uc.Update(id, dto.UpdateProductRequest{}))
	assert.ErrorIs(t, uc.Update(9999, dto.UpdateProductRequest{}), domain.ErrNotFound)
}

// Caso 5: GetByID y Delete sobre ids inexistentes → ErrNotFound.
func TestProduct_Inexistente(t *testing.T) {
	uc := newProductFixture(t)

	_, err := uc.GetByID(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(9999), domain.ErrNotFound)
}
