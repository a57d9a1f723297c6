package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoreMemoria = "memoria" // variante mock en memoria
	StoreMongo   = "mongo"   // variante persistente (MongoDB)
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Store StoreConfig
	Mongo MongoConfig
	Pagos PagosConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT. La expiración del token es fija (2 h) y
// vive en el caso de uso de auth, no aquí.
type JWTConfig struct {
	Secret string
	Issuer string
}

// StoreConfig selecciona la variante de almacenamiento.
type StoreConfig struct {
	Driver string // "memoria" | "mongo"
}

// MongoConfig configuración de MongoDB (solo para STORE_DRIVER=mongo).
type MongoConfig struct {
	URI      string
	Database string
}

// PagosConfig configuración del proveedor de preferencias de pago.
// Con AccessToken vacío se usa el cliente simulado.
type PagosConfig struct {
	AccessToken string
	BaseURL     string // override para tests; vacío = API real
}

// AdminConfig cuenta admin sembrada al arrancar la variante en memoria. La
// variante Mongo se siembra fuera de banda con cmd/seed.
type AdminConfig struct {
	Email    string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env / config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "libreria-online"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "libreria-online"),
		},
		Store: StoreConfig{
			Driver: getString(v, "STORE_DRIVER", StoreMemoria),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DB", "libreria"),
		},
		Pagos: PagosConfig{
			AccessToken: getString(v, "PAGOS_ACCESS_TOKEN", ""),
			BaseURL:     getString(v, "PAGOS_BASE_URL", ""),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", ""),
			Password: getString(v, "ADMIN_PASSWORD", ""),
		},
	}

	if cfg.Store.Driver != StoreMemoria && cfg.Store.Driver != StoreMongo {
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
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
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
