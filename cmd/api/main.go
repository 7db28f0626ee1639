package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/export"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/inventario-ledger/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting application")

	ctx := context.Background()
	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("open store")
	}
	defer closeStore()

	policy, err := domaininv.ParseStockPolicy(cfg.Stock.Policy)
	if err != nil {
		log.Fatal().Err(err).Str("stock_policy", cfg.Stock.Policy).Msg("invalid STOCK_POLICY")
	}

	storage := inventory.NewStorage(kv, log.Named("storage"))
	svc, err := inventory.NewService(ctx, storage, domaininv.NewEngine(policy), log.Named("inventory"))
	if err != nil {
		log.Fatal().Err(err).Msg("load inventory")
	}

	// Committed transitions are written in the background.
	persister := inventory.NewPersister(storage, log.Named("persister"))
	svc.Subscribe(persister)

	exportUC := inventory.NewExportUseCase(svc, export.NewCSVExporter(), infrapdf.NewMarotoStockReport())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Service: svc,
		Export:  exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := persister.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("pending inventory writes lost")
	}

	log.Info().Msg("application stopped")
}

// openStore builds the key-value backend selected by STORE_DRIVER. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return kv, pool.Close, nil
	case config.StoreRedis:
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return infraredis.NewKVStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	case config.StoreMemory:
		return memory.NewKVStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
