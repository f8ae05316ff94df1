package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"sweet-shop/pkg/log"
	"sweet-shop/pkg/metrics"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	metrics     *metrics.Metrics

	// Storage
	storage    string
	postgresDB *sql.DB

	// Shop
	shop ShopConfig
}

// ShopConfig carries the domain settings wired into the catalog, cart and checkout.
type ShopConfig struct {
	SeedCatalog     bool
	CartSessionTTL  time.Duration
	MaxSessions     int
	PaymentDelay    time.Duration
	ResetDelay      time.Duration
	RateLimitPerMin int
	AdminKey        string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Metrics     *metrics.Metrics

	// Storage is "memory" or "postgres". PostgresDB is required for the latter.
	Storage    string
	PostgresDB *sql.DB

	Shop ShopConfig
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	storage := cfg.Storage
	if storage == "" {
		storage = StorageMemory
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		metrics:     cfg.Metrics,
		storage:     storage,
		postgresDB:  cfg.PostgresDB,
		shop:        cfg.Shop,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	switch srv.storage {
	case StorageMemory:
	case StoragePostgres:
		if srv.postgresDB == nil {
			return errors.New("postgres storage needs a database handle")
		}
	default:
		return errors.New("unknown storage driver: " + srv.storage)
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
