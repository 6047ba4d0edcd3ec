package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Redis   RedisConfig
	Storage StorageConfig
	AI      AIConfig
	Catalog CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// RedisConfig conexión a Redis (carritos y caché de settings).
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	CartTTL     time.Duration
	SettingsTTL time.Duration
}

// StorageConfig almacenamiento de archivos (imágenes de producto y comprobantes).
type StorageConfig struct {
	BaseURL    string // API de subida
	Bucket     string
	Token      string
	PublicURL  string // prefijo de las URLs de descarga
	MaxRetries int
	RetryWait  time.Duration
}

// AIConfig asesor por chat (OpenRouter).
type AIConfig struct {
	OpenRouterAPIKey string
	Model            string
	BaseURL          string
	Timeout          time.Duration
}

// CatalogConfig parámetros de inventario y reportes.
type CatalogConfig struct {
	LowStockThreshold int
	LogoPath          string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, REDIS_ADDR, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "carpihogar-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "carpihogar"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "carpihogar-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:        getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:    getString(v, "REDIS_PASSWORD", ""),
			DB:          getInt(v, "REDIS_DB", 0),
			CartTTL:     getDuration(v, "CART_TTL", 30*24*time.Hour),
			SettingsTTL: getDuration(v, "SETTINGS_CACHE_TTL", 5*time.Minute),
		},
		Storage: StorageConfig{
			BaseURL:    getString(v, "STORAGE_BASE_URL", ""),
			Bucket:     getString(v, "STORAGE_BUCKET", "carpihogar"),
			Token:      getString(v, "STORAGE_TOKEN", ""),
			PublicURL:  getString(v, "STORAGE_PUBLIC_URL", ""),
			MaxRetries: getInt(v, "STORAGE_MAX_RETRIES", 3),
			RetryWait:  getDuration(v, "STORAGE_RETRY_WAIT", time.Second),
		},
		AI: AIConfig{
			OpenRouterAPIKey: getString(v, "OPENROUTER_API_KEY", ""),
			Model:            getString(v, "AI_MODEL", "openai/gpt-3.5-turbo"),
			BaseURL:          getString(v, "AI_BASE_URL", ""),
			Timeout:          getDuration(v, "AI_TIMEOUT", 20*time.Second),
		},
		Catalog: CatalogConfig{
			LowStockThreshold: getInt(v, "LOW_STOCK_THRESHOLD", 5),
			LogoPath:          getString(v, "REPORT_LOGO_PATH", "./assets/logo-carpihogar.jpg"),
		},
	}

	if cfg.Storage.MaxRetries <= 0 {
		cfg.Storage.MaxRetries = 1
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

// getDuration acepta "30s", "5m" o un número de segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
