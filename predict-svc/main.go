package main

import (
	"context"
	"os"

	"restaurant-recommender/config"
	"restaurant-recommender/logging"
	httpapi "restaurant-recommender/predict-svc/internal/api/http"
	"restaurant-recommender/predict-svc/internal/service"
	"restaurant-recommender/predict-svc/internal/storage"
)

func main() {
	cfg := config.LoadPredict()

	catalog := newCatalog()
	recommender := service.NewRecommender(catalog)

	logging.Info().Bool("model_available", recommender.Available(context.Background())).Msg("catalog ready")

	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(httpapi.NewHandler(recommender)))
}

// newCatalog uses Postgres when DB_HOST is set, seeding it on first start.
func newCatalog() service.CatalogRepository {
	if os.Getenv("DB_HOST") == "" {
		logging.Info().Msg("DB_HOST not set, serving the built-in catalog")
		return storage.NewSeedCatalog()
	}

	ctx := context.Background()
	catalog := storage.NewPostgresCatalog(config.MustInitPostgres())
	if err := catalog.EnsureSchema(ctx); err != nil {
		logging.Fatal().Err(err).Msg("failed to ensure catalog schema")
	}
	if err := catalog.Seed(ctx, storage.SeedLocalities(), storage.SeedCuisines(), storage.SeedEntries()); err != nil {
		logging.Fatal().Err(err).Msg("failed to seed catalog")
	}
	return catalog
}
