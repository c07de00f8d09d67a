package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"shopflow/internal/cache"
	"shopflow/internal/config"
	"shopflow/internal/db"
	"shopflow/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	invalidateProductCache(ctx, cfg, logger)

	logger.Println("seed applied")
}

// invalidateProductCache drops any cached product list so the API serves the
// freshly seeded catalog immediately instead of after the TTL.
func invalidateProductCache(ctx context.Context, cfg config.Config, logger *log.Logger) {
	if cfg.RedisAddr == "" {
		return
	}
	client, err := cache.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Printf("product cache: invalidate skipped: %v", err)
		return
	}
	defer client.Close()
	cache.NewProducts(client, cfg.CacheTTL, logger).Invalidate(ctx)
}
