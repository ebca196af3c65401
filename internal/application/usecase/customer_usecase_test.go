package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/usecase"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/sqlite"
)

func newCustomerFixture(t *testing.T) *usecase.CustomerUseCase {
	t.Helper()
	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return usecase.NewCustomerUseCase(sqlite.NewCustomerRepository(db))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CustomerUseCase — validación de clientes
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Crear un cliente válido con campos opcionales ausentes.
func TestCustomerCreate_Valido(t *testing.T) {
	uc := newCustomerFixture(t)

	id, err := uc.Create(dto.CreateCustomerRequest{Name: "María"})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "María", got.Name)
	assert.Nil(t, got.Phone)
}

// Caso 2: Crear rechaza nombre vacío; nada se persiste.
func TestCustomerCreate_NombreVacio(t *testing.T) {
	uc := newCustomerFixture(t)

	_, err := uc.Create(dto.CreateCustomerRequest{Name: "", Phone: strPtr("555-1234")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Caso 3: Update rechaza vaciar el nombre; el valor original queda intacto.
func TestCustomerUpdate_NombreVacio(t *testing.T) {
	uc := newCustomerFixture(t)

	id, err := uc.Create(dto.CreateCustomerRequest{Name: "María"})
	require.NoError(t, err)

	err = uc.Update(id, dto.UpdateCustomerRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "María", got.Name)
}

// Caso 4: La búsqueda por teléfono exige una subcadena no vacía.
func TestCustomerSearch_TelefonoVacio(t *testing.T) {
	uc := newCustomerFixture(t)

	_, err := uc.SearchByPhone("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
