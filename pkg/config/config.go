package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del gateway (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Session SessionConfig
	Stripe  StripeConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP del gateway.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend REST remoto que el gateway consume.
// Origin es el origen completo (scheme://host[:port]) usado también para
// normalizar URLs de imágenes relativas que devuelve el backend.
type BackendConfig struct {
	Origin         string
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red para peticiones al backend.
// No hay reintentos: un backend colgado se reporta como error, no se
// reintenta en silencio.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BaseURL devuelve el origen validado; error si no es una URL absoluta.
func (c BackendConfig) BaseURL() (string, error) {
	u, err := url.Parse(c.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("backend origin inválido: %q", c.Origin)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// SessionConfig configuración de sesiones del gateway: almacenamiento local
// SQLite y cookie firmada que referencia la sesión.
type SessionConfig struct {
	StorePath  string // ruta del archivo SQLite (":memory:" en tests)
	CookieName string
	Secret     string // secreto HMAC de la cookie firmada
	ExpMinutes int
	Issuer     string
}

// StripeConfig URLs de retorno del flujo de pago alojado.
type StripeConfig struct {
	SuccessURL string
	CancelURL  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_ORIGIN, etc.
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
			Name: getString(v, "APP_NAME", "tienda-gateway"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			Origin:         getString(v, "BACKEND_ORIGIN", "http://localhost:5000"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			StorePath:  getString(v, "SESSION_STORE_PATH", "./data/sessions.db"),
			CookieName: getString(v, "SESSION_COOKIE_NAME", "tienda_session"),
			Secret:     getString(v, "SESSION_SECRET", ""),
			ExpMinutes: getInt(v, "SESSION_EXP_MINUTES", 1440),
			Issuer:     getString(v, "SESSION_ISSUER", "tienda-gateway"),
		},
		Stripe: StripeConfig{
			SuccessURL: getString(v, "STRIPE_SUCCESS_URL", "http://localhost:3000/success"),
			CancelURL:  getString(v, "STRIPE_CANCEL_URL", "http://localhost:3000/carrito"),
		},
	}

	if _, err := cfg.Backend.BaseURL(); err != nil {
		return nil, err
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
