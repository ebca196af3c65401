package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// StoreConfig configuración de la base embebida.
// DataDir vacío usa el directorio de datos del usuario (ver sqlite.Open).
type StoreConfig struct {
	DataDir string
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP local que consume la GUI.
type HTTPConfig struct {
	Host string
	Port int
}

// AdminConfig parámetros del usuario administrador sembrado al arranque.
type AdminConfig struct {
	SeedPassword string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, PDV_DATA_DIR, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env junto al binario
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "distribuidora-pdv"),
		},
		Store: StoreConfig{
			DataDir: getString(v, "PDV_DATA_DIR", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "distribuidora-pdv-local"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 12*60),
			Issuer:     getString(v, "JWT_ISSUER", "distribuidora-pdv"),
		},
		HTTP: HTTPConfig{
			// El backend solo atiende a la GUI local; no se expone a la red.
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8090),
		},
		Admin: AdminConfig{
			SeedPassword: getString(v, "ADMIN_SEED_PASSWORD", "admin"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			// Un valor malformado no debe convertirse en 0 (puerto
			// arbitrario, expiración nula); se conserva el default.
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
