package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/distribuidora-pdv/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Config — lectura de entorno y defaults
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin entorno se aplican los defaults locales.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 8090, cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1:8090", cfg.HTTP.Addr())
	assert.Equal(t, 12*60, cfg.JWT.Expiration)
}

// Caso 2: Las variables de entorno tienen prioridad sobre los defaults.
func TestLoad_EnvGanaAlDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "9001")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.HTTP.Port)
	assert.Equal(t, "production", cfg.App.Env)
}

// Caso 3: Un entero malformado no se convierte en cero; se conserva el
// default para no escuchar en un puerto arbitrario.
func TestLoad_EnteroMalformado_ConservaDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")
	t.Setenv("JWT_EXPIRATION_MINUTES", "un-rato")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.HTTP.Port)
	assert.Equal(t, 12*60, cfg.JWT.Expiration)
}
