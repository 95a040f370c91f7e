package service

import (
	"context"

	"restaurant-recommender/predict-svc/internal/domain"
	"restaurant-recommender/predict-svc/internal/storage"
)

// CatalogRepository lists names in catalog order. Lookups by name are exact;
// callers resolve user input to a catalog name first.
type CatalogRepository interface {
	Localities(ctx context.Context) ([]string, error)
	Cuisines(ctx context.Context) ([]string, error)
	CuisinesFor(ctx context.Context, locality string) ([]string, error)
	Restaurants(ctx context.Context, locality, cuisine string) ([]domain.Restaurant, error)
}

type RecommenderInterface interface {
	Predict(ctx context.Context, locality, cuisine string) (domain.Prediction, error)
	Localities(ctx context.Context) ([]string, error)
	Cuisines(ctx context.Context) ([]string, error)
	CuisinesFor(ctx context.Context, locality string) ([]string, error)
	Available(ctx context.Context) bool
}

var (
	_ CatalogRepository    = (*storage.PostgresCatalog)(nil)
	_ CatalogRepository    = (*storage.MemoryCatalog)(nil)
	_ RecommenderInterface = (*Recommender)(nil)
)
