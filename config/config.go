package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage  StorageConfig
	Postgres PostgresConfig

	// Shop
	Catalog  CatalogConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	Admin    AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type CatalogConfig struct {
	// Seed loads the default assortment into an empty catalog on start.
	Seed bool
}

type CartConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

type CheckoutConfig struct {
	PaymentDelay    time.Duration
	ResetDelay      time.Duration
	RateLimitPerMin int
}

type AdminConfig struct {
	APIKey string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Postgres.DSN = expandEnvVar(v, v.GetString("postgres.dsn"))
	cfg.Postgres.MaxOpenConns = v.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = v.GetInt("postgres.max_idle_conns")

	// Shop
	cfg.Catalog.Seed = v.GetBool("catalog.seed")
	cfg.Cart.SessionTTL = v.GetDuration("cart.session_ttl")
	cfg.Cart.MaxSessions = v.GetInt("cart.max_sessions")
	cfg.Checkout.PaymentDelay = v.GetDuration("checkout.payment_delay")
	cfg.Checkout.ResetDelay = v.GetDuration("checkout.reset_delay")
	cfg.Checkout.RateLimitPerMin = v.GetInt("checkout.rate_limit_per_min")
	cfg.Admin.APIKey = expandEnvVar(v, v.GetString("admin.api_key"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)

	v.SetDefault("catalog.seed", true)
	v.SetDefault("cart.session_ttl", "24h")
	v.SetDefault("cart.max_sessions", 10000)
	v.SetDefault("checkout.payment_delay", "2s")
	v.SetDefault("checkout.reset_delay", "4s")
	v.SetDefault("checkout.rate_limit_per_min", 10)
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("storage.driver is postgres but postgres.dsn is empty")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (want %s or %s)", cfg.Storage.Driver, StorageMemory, StoragePostgres)
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Checkout.PaymentDelay < 0 {
		return fmt.Errorf("checkout.payment_delay must not be negative")
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
