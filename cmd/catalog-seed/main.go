package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	catalogmemory "github.com/Apurer/delish-express/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/Apurer/delish-express/internal/domains/catalog/adapters/persistence/postgres"
	"github.com/Apurer/delish-express/internal/platform/migrations"
	platformpostgres "github.com/Apurer/delish-express/internal/platform/postgres"
)

func main() {
	_ = godotenv.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot seed the catalog")
	}

	if err := migrations.Run(db); err != nil {
		log.Fatalf("failed to migrate catalog schema: %v", err)
	}
	listings := catalogmemory.SeedListings()
	if err := catalogpostgres.NewRepository(db).Seed(ctx, listings); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	logger.Info("catalog seeded", slog.Int("restaurants", len(listings)))
}
