package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sweet-shop/config"
	_ "sweet-shop/docs" // Swagger docs
	"sweet-shop/internal/httpserver"
	"sweet-shop/pkg/log"
	"sweet-shop/pkg/metrics"
	"sweet-shop/pkg/postgre"
)

// @title       Sweet Shop API
// @description Catalog, session cart and checkout for a small sweet shop.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Sweet Shop...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Driver)

	// 3. Storage
	var db *sql.DB
	if cfg.Storage.Driver == config.StoragePostgres {
		db, err = postgre.Connect(ctx, postgre.Config{
			DSN:          cfg.Postgres.DSN,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer func() {
			if err := postgre.Disconnect(db); err != nil {
				logger.Warnf(ctx, "Failed to close PostgreSQL: %v", err)
			}
		}()
		logger.Info(ctx, "Connected to PostgreSQL")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Metrics:     metrics.New("api"),
		Storage:     cfg.Storage.Driver,
		PostgresDB:  db,
		Shop: httpserver.ShopConfig{
			SeedCatalog:     cfg.Catalog.Seed,
			CartSessionTTL:  cfg.Cart.SessionTTL,
			MaxSessions:     cfg.Cart.MaxSessions,
			PaymentDelay:    cfg.Checkout.PaymentDelay,
			ResetDelay:      cfg.Checkout.ResetDelay,
			RateLimitPerMin: cfg.Checkout.RateLimitPerMin,
			AdminKey:        cfg.Admin.APIKey,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
