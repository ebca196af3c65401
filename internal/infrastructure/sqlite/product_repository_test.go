package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
)

// openTestDB abre una base en memoria con el esquema aplicado.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenInMemory(context.Background())
	require.NoError(t, err, "debe abrirse la base en memoria con migraciones")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func testProduct() *entity.Product {
	return &entity.Product{
		Name:        "Garrafa 20L",
		Description: strPtr("Agua purificada retornable"),
		Category:    entity.CategoryWater,
		PriceRefill: decimal.RequireFromString("10.00"),
		PriceFull:   decimal.RequireFromString("25.50"),
		StockFull:   100,
		StockEmpty:  5,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductRepo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Create seguido de GetByID devuelve los mismos campos.
func TestProductRepo_CreateYGet_RoundTrip(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	id, err := repo.Create(testProduct())
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Garrafa 20L", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Agua purificada retornable", *got.Description)
	assert.Equal(t, entity.CategoryWater, got.Category)
	assert.True(t, got.PriceRefill.Equal(decimal.RequireFromString("10.00")),
		"price_refill debe sobrevivir el round-trip sin pérdida")
	assert.True(t, got.PriceFull.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, int64(100), got.StockFull)
	assert.Equal(t, int64(5), got.StockEmpty)
	assert.Nil(t, got.ExpiryMonth)
	assert.Nil(t, got.ExpiryYear)
}

// Caso 2: GetByID de un id inexistente devuelve (nil, nil).
func TestProductRepo_GetInexistente_NilNil(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	got, err := repo.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Caso 3: Update parcial toca solo las columnas presentes.
func TestProductRepo_UpdateParcial_SoloColumnasPresentes(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	id, err := repo.Create(testProduct())
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("27.00")
	err = repo.Update(id, entity.ProductPatch{
		Name:      strPtr("Garrafa 20L retornable"),
		PriceFull: &newPrice,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Garrafa 20L retornable", got.Name)
	assert.True(t, got.PriceFull.Equal(newPrice))
	// Lo no incluido en el patch queda intacto
	assert.True(t, got.PriceRefill.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, int64(100), got.StockFull)
}

// Caso 4: Patch vacío es un no-op exitoso, no un error.
func TestProductRepo_PatchVacio_NoOp(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	id, err := repo.Create(testProduct())
	require.NoError(t, err)

	require.NoError(t, repo.Update(id, entity.ProductPatch{}))

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Garrafa 20L", got.Name, "nada debe cambiar tras un patch vacío")
}

// Caso 5: Un patch puede poner un campo opcional en NULL vía puntero a nil.
func TestProductRepo_UpdateLimpiaOpcional(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	p := testProduct()
	p.ExpiryMonth = i64Ptr(6)
	p.ExpiryYear = i64Ptr(2027)
	id, err := repo.Create(p)
	require.NoError(t, err)

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryMonth)

	err = repo.Update(id, entity.ProductPatch{ExpiryMonth: i64Ptr(12)})
	require.NoError(t, err)

	got, err = repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(12), *got.ExpiryMonth)
	assert.Equal(t, int64(2027), *got.ExpiryYear)
}

// Caso 6: AdjustStock aplica deltas con signo a los dos contadores.
func TestProductRepo_AdjustStock_DeltasConSigno(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	id, err := repo.Create(testProduct())
	require.NoError(t, err)

	require.NoError(t, repo.AdjustStock(id, -3, 3))

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(97), got.StockFull)
	assert.Equal(t, int64(8), got.StockEmpty)
}

// Caso 7: Delete elimina la fila; la siguiente lectura es (nil, nil).
func TestProductRepo_Delete(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	id, err := repo.Create(testProduct())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Caso 8: Un producto con movimientos en el libro no puede borrarse; la
// violación de FK se traduce a ErrInUse y la fila sobrevive.
func TestProductRepo_Delete_Referenciado_ErrInUse(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	movements := NewStockMovementRepository(db)

	id, err := repo.Create(testProduct())
	require.NoError(t, err)
	require.NoError(t, movements.Insert(id, entity.MovementOut, 2))

	err = repo.Delete(id)
	assert.ErrorIs(t, err, domain.ErrInUse)

	got, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.NotNil(t, got, "el producto referenciado debe seguir existiendo")
}

// Caso 9: List ordena por nombre.
func TestProductRepo_List_OrdenaPorNombre(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	a := testProduct()
	a.Name = "Zanahoria" // fuera de orden a propósito
	b := testProduct()
	b.Name = "Agua 10L"
	_, err := repo.Create(a)
	require.NoError(t, err)
	_, err = repo.Create(b)
	require.NoError(t, err)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Agua 10L", list[0].Name)
	assert.Equal(t, "Zanahoria", list[1].Name)
}
