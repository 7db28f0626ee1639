package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config groups the application settings (read through Viper from env and optional files).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
	Stock StockConfig
}

// AppConfig general settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selects the key-value backend.
type StoreConfig struct {
	Driver string // memory, postgres, redis
}

// DBConfig PostgreSQL settings. DatabaseURL wins over the individual fields when set.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DATABASE_URL if set, otherwise the DSN built from the fields.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL URL, escaping special characters in the credentials.
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

// RedisConfig Redis settings. Prefix namespaces every key written by the app.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// StockConfig engine settings.
type StockConfig struct {
	Policy string // strict, clamp
}

// Load reads .env / config.env when present, then the environment. Env vars win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-ledger"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			Prefix:   getString(v, "REDIS_PREFIX", "inventory:"),
		},
		Stock: StockConfig{
			Policy: getString(v, "STOCK_POLICY", "strict"),
		},
	}

	switch cfg.Store.Driver {
	case StoreMemory, StorePostgres, StoreRedis:
	default:
		return nil, fmt.Errorf("STORE_DRIVER %q: expected memory, postgres or redis", cfg.Store.Driver)
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
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}
