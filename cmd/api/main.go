package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"shopflow/internal/cache"
	"shopflow/internal/config"
	"shopflow/internal/db"
	"shopflow/internal/httpserver"
	categoryrepo "shopflow/internal/repository/category"
	productrepo "shopflow/internal/repository/product"
	catalogsvc "shopflow/internal/service/catalog"
	checkoutsvc "shopflow/internal/service/checkout"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var productCache *cache.Products
	if cfg.RedisAddr != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer redisClient.Close()
		productCache = cache.NewProducts(redisClient, cfg.CacheTTL, logger)
		logger.Printf("product cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.CacheTTL)
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)

	var catalogService *catalogsvc.Service
	if productCache != nil {
		catalogService = catalogsvc.New(productRepo, categoryRepo, productCache)
	} else {
		catalogService = catalogsvc.New(productRepo, categoryRepo, nil)
	}
	checkoutService := checkoutsvc.New(checkoutsvc.NewLogPlacer(logger), logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CheckoutSvc: checkoutService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
