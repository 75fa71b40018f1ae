package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	API   APIConfig
	Store StoreConfig
	Auth  AuthConfig
	HTTP  HTTPConfig
	Log   LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig apunta al backend REST de la biblioteca.
type APIConfig struct {
	// BaseURL es la única variable que selecciona el backend
	// (ej. http://localhost:8080/api). Sin barra final.
	BaseURL string
}

// StoreConfig ubicación del almacén local de credenciales.
type StoreConfig struct {
	Path string // archivo JSON; vacío = <user config dir>/biblioteca-admin/session.json
}

// AuthConfig política de autenticación del cliente.
type AuthConfig struct {
	// BootstrapAdminEmail es el principal distinguido que se autentica
	// localmente con rol admin (cuenta de arranque).
	BootstrapAdminEmail string
}

// HTTPConfig configuración del servidor stub de desarrollo.
type HTTPConfig struct {
	Host string
	Port int
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorePath devuelve la ruta efectiva del archivo de sesión, resolviendo el
// valor por defecto bajo el directorio de configuración del usuario.
func (c StoreConfig) StorePath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("directorio de configuración: %w", err)
	}
	return filepath.Join(dir, "biblioteca-admin", "session.json"), nil
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STORE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "biblioteca-admin"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:8080/api"), "/"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", ""),
		},
		Auth: AuthConfig{
			BootstrapAdminEmail: getString(v, "BOOTSTRAP_ADMIN_EMAIL", "admin@biblioteca.edu"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
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
