package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/auth"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/infrastructure/sqlite"
	"github.com/tu-usuario/distribuidora-pdv/pkg/config"
)

func newAuthUC(t *testing.T) *auth.UseCase {
	t.Helper()
	db, err := sqlite.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return auth.NewUseCase(sqlite.NewUserRepository(db), config.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "pdv-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SeedAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El sembrado crea la cuenta admin y el login con esa contraseña
// funciona.
func TestSeedAdmin_CreaCuenta(t *testing.T) {
	uc := newAuthUC(t)
	require.NoError(t, uc.SeedAdmin("inicial123"))

	out, err := uc.Login(dto.LoginRequest{Username: entity.AdminUsername, Password: "inicial123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.AdminUsername, out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// Caso 2: El sembrado es idempotente: una segunda llamada con otra
// contraseña no pisa la primera.
func TestSeedAdmin_Idempotente_NoPisaPassword(t *testing.T) {
	uc := newAuthUC(t)
	require.NoError(t, uc.SeedAdmin("primera"))
	require.NoError(t, uc.SeedAdmin("segunda"))

	_, err := uc.Login(dto.LoginRequest{Username: entity.AdminUsername, Password: "primera"})
	assert.NoError(t, err, "la contraseña original debe seguir vigente")

	_, err = uc.Login(dto.LoginRequest{Username: entity.AdminUsername, Password: "segunda"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"la segunda contraseña nunca debe haberse aplicado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: Usuario inexistente y contraseña incorrecta producen exactamente
// el mismo error: no se filtra qué cuentas existen.
func TestLogin_ErrorIndistinguible(t *testing.T) {
	uc := newAuthUC(t)
	require.NoError(t, uc.SeedAdmin("inicial123"))

	_, errWrongPass := uc.Login(dto.LoginRequest{Username: entity.AdminUsername, Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "incorrecta"})

	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error(),
		"el mensaje debe ser idéntico en ambos casos")
}

// Caso 4: Credenciales vacías se rechazan sin tocar la base.
func TestLogin_CredencialesVacias(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: CurrentUser resuelve la identidad y nunca incluye el hash.
func TestCurrentUser(t *testing.T) {
	uc := newAuthUC(t)
	require.NoError(t, uc.SeedAdmin("inicial123"))

	out, err := uc.Login(dto.LoginRequest{Username: entity.AdminUsername, Password: "inicial123"})
	require.NoError(t, err)

	me, err := uc.CurrentUser(out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AdminUsername, me.Username)

	_, err = uc.CurrentUser(9999)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario borrado tras emitir el token")
}
